package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-law-tracker/internal/tracker/config"
	"golang-law-tracker/internal/tracker/dto"
	"golang-law-tracker/pkg/logger"

	"golang.org/x/time/rate"
)

// InferenceRepository abstracts the remote text-generation endpoint. The
// response is an opaque payload: the endpoint may return an array of
// generations, an object with generated_text/output/outputs, or a raw string.
type InferenceRepository interface {
	InvokeEndpoint(ctx context.Context, req *dto.InferenceRequest) (json.RawMessage, error)
}

// httpInferenceRepository calls a SageMaker-style HTTP inference endpoint.
type httpInferenceRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewHTTPInferenceRepository creates an inference repository backed by a raw
// HTTP client with a per-minute request throttle. An unconfigured endpoint URL
// is tolerated here; calls against it fail and the extraction pipeline falls
// back to its heuristics.
func NewHTTPInferenceRepository(cfg *config.Config, log *logger.Logger) InferenceRepository {
	rpm := cfg.Inference.MaxRequestPerMinute
	if rpm <= 0 {
		rpm = 30
	}
	secondsPerRequest := time.Minute / time.Duration(rpm)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &httpInferenceRepository{
		client: &http.Client{
			Timeout: cfg.Inference.Timeout,
		},
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

// InvokeEndpoint sends one prompt to the endpoint and returns the raw
// response body for the caller to parse.
func (r *httpInferenceRepository) InvokeEndpoint(ctx context.Context, req *dto.InferenceRequest) (json.RawMessage, error) {
	if r.cfg.Inference.EndpointURL == "" {
		return nil, fmt.Errorf("inference endpoint URL is not configured")
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	r.logger.Debug("Invoking inference endpoint",
		logger.IntField("prompt_chars", len(req.Inputs)),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Inference.EndpointURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if r.cfg.Inference.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.cfg.Inference.APIKey)
	}

	resp, err := r.client.Do(httpReq)
	if err != nil {
		r.logger.Error("Failed to send request to inference endpoint", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to send request to inference endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("Received non-OK response from inference endpoint",
			logger.IntField("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("received non-OK response from inference endpoint: %d - %s", resp.StatusCode, string(body))
	}

	return json.RawMessage(body), nil
}
