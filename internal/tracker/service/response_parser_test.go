package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawResponse(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestParseModelResponseGeneratedTextArray(t *testing.T) {
	raw := rawResponse(t, []map[string]string{
		{"generated_text": `{"jurisdiction": "European Union", "status": "Active"}`},
	})

	parsed := parseModelResponse(raw)
	assert.Equal(t, "European Union", parsed["jurisdiction"])
	assert.Equal(t, "Active", parsed["status"])
}

func TestParseModelResponseFencedJSON(t *testing.T) {
	raw := rawResponse(t, map[string]string{
		"generated_text": "Here is the answer:\n```json\n{\"sector\": \"Technology\", \"impact\": 8, \"confidence\": \"High\"}\n```",
	})

	parsed := parseModelResponse(raw)
	assert.Equal(t, "Technology", parsed["sector"])
	assert.Equal(t, float64(8), parsed["impact"])
	assert.Equal(t, "High", parsed["confidence"])
}

func TestParseModelResponseLeadingProse(t *testing.T) {
	raw := rawResponse(t, map[string]string{
		"output": `Sure, the JSON is {"published": "2024-03-20", "title": "Clean Energy Act"}`,
	})

	parsed := parseModelResponse(raw)
	assert.Equal(t, "2024-03-20", parsed["published"])
	assert.Equal(t, "Clean Energy Act", parsed["title"])
}

func TestParseModelResponseFieldRegexFallback(t *testing.T) {
	raw := rawResponse(t, map[string]string{
		"generated_text": "jurisdiction: United States\nstatus: Active\nimpact: 7",
	})

	parsed := parseModelResponse(raw)
	assert.Equal(t, "United States", parsed["jurisdiction"])
	assert.Equal(t, "Active", parsed["status"])
	assert.Equal(t, "7", parsed["impact"])
}

func TestParseModelResponseOutputsShapes(t *testing.T) {
	asString := rawResponse(t, map[string]interface{}{
		"outputs": `{"summary": "A law regulating data brokers and their disclosure obligations."}`,
	})
	parsed := parseModelResponse(asString)
	assert.Equal(t, "A law regulating data brokers and their disclosure obligations.", parsed["summary"])

	asArray := rawResponse(t, map[string]interface{}{
		"outputs": []string{`{"sector": "Finance"}`},
	})
	parsed = parseModelResponse(asArray)
	assert.Equal(t, "Finance", parsed["sector"])
}

func TestParseModelResponseBareString(t *testing.T) {
	raw := rawResponse(t, `{"confidence": "Low"}`)

	parsed := parseModelResponse(raw)
	assert.Equal(t, "Low", parsed["confidence"])
}

func TestParseModelResponseUnusableYieldsEmpty(t *testing.T) {
	raw := rawResponse(t, map[string]string{"generated_text": "I cannot help with that."})

	parsed := parseModelResponse(raw)
	assert.Empty(t, parsed)
}

func TestIntValueCoercions(t *testing.T) {
	v, ok := intValue(float64(7))
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = intValue(" 9 ")
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	_, ok = intValue("high")
	assert.False(t, ok)

	_, ok = intValue(nil)
	assert.False(t, ok)
}
