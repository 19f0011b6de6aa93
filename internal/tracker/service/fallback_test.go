package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFromRawTextKeywords(t *testing.T) {
	text := `California Consumer Privacy Act
This act is effective January 1, 2024 and regulates digital data collection
by technology companies operating in California.`

	extracted := extractFromRawText(text)
	assert.Equal(t, "California", extracted["jurisdiction"])
	assert.Equal(t, "Active", extracted["status"])
	assert.Equal(t, "Technology", extracted["sector"])
	assert.Equal(t, "January 1, 2024", extracted["published"])
}

func TestExtractFromRawTextISODate(t *testing.T) {
	extracted := extractFromRawText("Published 2023-07-15. Healthcare providers must comply.")
	assert.Equal(t, "2023-07-15", extracted["published"])
	assert.Equal(t, "Healthcare", extracted["sector"])
}

func TestExtractFromRawTextNoMatches(t *testing.T) {
	extracted := extractFromRawText("nothing relevant here")
	assert.NotContains(t, extracted, "jurisdiction")
	assert.NotContains(t, extracted, "status")
	assert.NotContains(t, extracted, "sector")
	assert.NotContains(t, extracted, "published")
}

func TestExtractTitleFromTextPatterns(t *testing.T) {
	assert.Equal(t, "Digital Markets Act",
		extractTitleFromText("Title: Digital Markets Act\nSome body text."))

	assert.Equal(t, "Clean Energy Act of 2024",
		extractTitleFromText("Clean Energy Act of 2024\nSection 1. Purpose."))
}

func TestExtractTitleFromTextFirstLineFallback(t *testing.T) {
	longLine := strings.Repeat("word ", 40)
	title := extractTitleFromText(longLine + "\nrest")
	assert.Len(t, title, 80)
}

func TestExtractTitleFromTextEmpty(t *testing.T) {
	assert.Equal(t, defaultTitle, extractTitleFromText(""))
}

func TestGenerateLawIDWithTitle(t *testing.T) {
	id := generateLawID("2024-03-20", "Clean Energy Act")

	parts := strings.Split(id, "_")
	require.Len(t, parts, 5)
	assert.Equal(t, "Law", parts[0])
	assert.Equal(t, "2024", parts[1])
	assert.Equal(t, "CLEA", parts[2])
	assert.Equal(t, "ENER", parts[3])
	assert.Len(t, parts[4], 3)
}

func TestGenerateLawIDWithoutTitle(t *testing.T) {
	id := generateLawID("2023-01-01", "")

	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	assert.Equal(t, "Law", parts[0])
	assert.Equal(t, "2023", parts[1])
	assert.Len(t, parts[2], 6)
}

func TestGenerateLawIDUntitledUsesRandomSuffix(t *testing.T) {
	id := generateLawID("2024-06-01", defaultTitle)
	assert.True(t, strings.HasPrefix(id, "Law_2024_"))
	assert.Len(t, id, len("Law_2024_")+6)
}
