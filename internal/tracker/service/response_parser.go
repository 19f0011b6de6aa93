package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The inference endpoint promises best-effort structured text, not JSON.
// Parsing therefore runs in layers: normalize the payload shape to one text
// blob, try to parse an embedded JSON object, and fall back to per-field
// regex extraction. Parsing never fails; an unusable payload yields an empty
// map, which the orchestrator's validation treats as an insufficient call.

var (
	codeFenceRe  = regexp.MustCompile("```(?:json)?\n?")
	leadingRe    = regexp.MustCompile(`^[^{]*`)
	jsonObjectRe = regexp.MustCompile(`(?s)\{.*?\}`)

	fieldPatterns = map[string]*regexp.Regexp{
		"jurisdiction": regexp.MustCompile("(?i)jurisdiction[\"\\s:]+([^\",}\\n]+)"),
		"status":       regexp.MustCompile("(?i)status[\"\\s:]+([^\",}\\n]+)"),
		"published":    regexp.MustCompile("(?i)published[\"\\s:]+([^\",}\\n]+)"),
		"title":        regexp.MustCompile("(?i)title[\"\\s:]+([^\",}\\n]+)"),
		"sector":       regexp.MustCompile("(?i)sector[\"\\s:]+([^\",}\\n]+)"),
		"impact":       regexp.MustCompile("(?i)impact[\"\\s:]+(\\d+)"),
		"confidence":   regexp.MustCompile("(?i)confidence[\"\\s:]+([^\",}\\n]+)"),
		"summary":      regexp.MustCompile("(?i)summary[\"\\s:]+([^\"]+)"),
	}
)

// parseModelResponse extracts a best-effort structured object from an
// arbitrary inference response payload.
func parseModelResponse(raw json.RawMessage) map[string]interface{} {
	text := normalizeResponseText(raw)

	cleaned := strings.TrimSpace(codeFenceRe.ReplaceAllString(text, ""))
	jsonCandidate := leadingRe.ReplaceAllString(cleaned, "")

	// Strategy 1: find and strictly parse the first {...} span.
	if match := jsonObjectRe.FindString(jsonCandidate); match != "" {
		var parsed map[string]interface{}
		if err := json.Unmarshal([]byte(match), &parsed); err == nil && len(parsed) > 0 {
			return parsed
		}
	}

	// Strategy 2: per-field regex extraction over the un-stripped text.
	extracted := map[string]interface{}{}
	for field, pattern := range fieldPatterns {
		match := pattern.FindStringSubmatch(cleaned)
		if len(match) > 1 && match[1] != "" {
			value := strings.Trim(strings.TrimSpace(match[1]), `"'`)
			if value != "" {
				extracted[field] = value
			}
		}
	}
	return extracted
}

// normalizeResponseText reduces the known response shapes to one text blob:
// an array of generations, an object with generated_text/output/outputs, or
// a bare string. Anything else is stringified whole.
func normalizeResponseText(raw json.RawMessage) string {
	var asList []json.RawMessage
	if err := json.Unmarshal(raw, &asList); err == nil {
		if len(asList) == 0 {
			return ""
		}
		var first map[string]interface{}
		if err := json.Unmarshal(asList[0], &first); err == nil {
			if text, ok := first["generated_text"].(string); ok {
				return text
			}
		}
		return string(asList[0])
	}

	var asObject map[string]interface{}
	if err := json.Unmarshal(raw, &asObject); err == nil {
		if text, ok := asObject["generated_text"].(string); ok {
			return text
		}
		if text, ok := asObject["output"].(string); ok {
			return text
		}
		switch outputs := asObject["outputs"].(type) {
		case string:
			return outputs
		case []interface{}:
			if len(outputs) > 0 {
				if text, ok := outputs[0].(string); ok {
					return text
				}
			}
		}
		return string(raw)
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	return string(raw)
}

// stringValue coerces a parsed field to a trimmed string.
func stringValue(v interface{}) string {
	switch value := v.(type) {
	case string:
		return strings.TrimSpace(value)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}

// intValue coerces a parsed field to an int; JSON numbers arrive as float64
// and regex captures as strings.
func intValue(v interface{}) (int, bool) {
	switch value := v.(type) {
	case float64:
		return int(value), true
	case int:
		return value, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
