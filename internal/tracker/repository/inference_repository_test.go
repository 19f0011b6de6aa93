package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang-law-tracker/internal/tracker/config"
	"golang-law-tracker/internal/tracker/dto"
	"golang-law-tracker/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInferenceRepo(t *testing.T, endpointURL, apiKey string) InferenceRepository {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)

	return NewHTTPInferenceRepository(&config.Config{
		Inference: config.Inference{
			EndpointURL:         endpointURL,
			APIKey:              apiKey,
			Timeout:             5 * time.Second,
			MaxRequestPerMinute: 600,
		},
	}, log)
}

func TestInvokeEndpointSendsPayload(t *testing.T) {
	var gotAuth, gotContentType string
	var gotReq dto.InferenceRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`[{"generated_text": "{\"status\": \"Active\"}"}]`))
	}))
	defer srv.Close()

	repo := newInferenceRepo(t, srv.URL, "secret")

	raw, err := repo.InvokeEndpoint(context.Background(), &dto.InferenceRequest{
		Inputs:     "prompt text",
		Parameters: dto.GenerationParameters{MaxNewTokens: 150, Temperature: 0.1, TopP: 0.9},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "prompt text", gotReq.Inputs)
	assert.Equal(t, 150, gotReq.Parameters.MaxNewTokens)
	assert.JSONEq(t, `[{"generated_text": "{\"status\": \"Active\"}"}]`, string(raw))
}

func TestInvokeEndpointNoAuthHeaderWithoutKey(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	repo := newInferenceRepo(t, srv.URL, "")

	_, err := repo.InvokeEndpoint(context.Background(), &dto.InferenceRequest{Inputs: "x"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestInvokeEndpointNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	repo := newInferenceRepo(t, srv.URL, "")

	_, err := repo.InvokeEndpoint(context.Background(), &dto.InferenceRequest{Inputs: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "model loading")
}

func TestInvokeEndpointRequiresURL(t *testing.T) {
	repo := newInferenceRepo(t, "", "")

	_, err := repo.InvokeEndpoint(context.Background(), &dto.InferenceRequest{Inputs: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
