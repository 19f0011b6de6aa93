package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang-law-tracker/pkg/utils"
)

// defaultTitle is the placeholder used when no title could be derived.
const defaultTitle = "Untitled Law"

// Deterministic keyword/regex extraction, used when model output is
// degenerate. The keyword tables are fixed; downstream behavior depends on
// their exact contents.

var (
	dateRe = regexp.MustCompile(`(?i)\d{4}-\d{2}-\d{2}|(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4}`)

	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:title|act|law|regulation):\s*(.+)`),
		regexp.MustCompile(`(?m)^([A-Z][A-Za-z\s]+Act\s+(?:of\s+)?\d{4})`),
		regexp.MustCompile(`(?m)^([A-Z][A-Za-z\s]+Act)`),
		regexp.MustCompile(`(?m)^([A-Z][A-Za-z\s]+Law)`),
		regexp.MustCompile(`(?m)^([A-Z][A-Za-z\s]+Regulation)`),
	}
)

// extractFromRawText scans the lowercased document for fixed keyword sets to
// infer jurisdiction, status, and sector, plus a date regex scan and a
// heading-derived title.
func extractFromRawText(documentText string) map[string]interface{} {
	text := strings.ToLower(documentText)
	extracted := map[string]interface{}{}

	switch {
	case strings.Contains(text, "united states") || strings.Contains(text, "u.s.") || strings.Contains(text, "usa"):
		extracted["jurisdiction"] = "United States"
	case strings.Contains(text, "european union") || strings.Contains(text, "eu "):
		extracted["jurisdiction"] = "European Union"
	case strings.Contains(text, "california"):
		extracted["jurisdiction"] = "California"
	case strings.Contains(text, "new york"):
		extracted["jurisdiction"] = "New York"
	}

	switch {
	case strings.Contains(text, "active") || strings.Contains(text, "enacted") || strings.Contains(text, "effective"):
		extracted["status"] = "Active"
	case strings.Contains(text, "expired") || strings.Contains(text, "repealed"):
		extracted["status"] = "Expired"
	}

	switch {
	case strings.Contains(text, "technology") || strings.Contains(text, "tech ") || strings.Contains(text, "digital") || strings.Contains(text, "data"):
		extracted["sector"] = "Technology"
	case strings.Contains(text, "healthcare") || strings.Contains(text, "health") || strings.Contains(text, "medical"):
		extracted["sector"] = "Healthcare"
	case strings.Contains(text, "finance") || strings.Contains(text, "financial") || strings.Contains(text, "bank"):
		extracted["sector"] = "Finance"
	case strings.Contains(text, "energy") || strings.Contains(text, "power"):
		extracted["sector"] = "Energy"
	}

	if match := dateRe.FindString(documentText); match != "" {
		extracted["published"] = match
	}

	extracted["title"] = extractTitleFromText(documentText)
	return extracted
}

// extractTitleFromText derives a title from heading-like patterns over the
// first 500 characters, falling back to the first line capped at 80 chars.
func extractTitleFromText(documentText string) string {
	beginning := firstChars(documentText, 500)

	for _, pattern := range titlePatterns {
		match := pattern.FindStringSubmatch(beginning)
		if len(match) > 1 && match[1] != "" {
			return firstChars(strings.TrimSpace(match[1]), 100)
		}
	}

	firstLine := strings.TrimSpace(strings.SplitN(beginning, "\n", 2)[0])
	if title := firstChars(firstLine, 80); title != "" {
		return title
	}
	return defaultTitle
}

// generateLawID derives an identifier from the published year and title,
// with a random alphanumeric suffix. Uniqueness against existing records is
// the persistence layer's concern.
func generateLawID(published, title string) string {
	year := fmt.Sprint(time.Now().Year())
	if len(published) >= 4 {
		year = published[:4]
	}
	suffix := utils.RandomAlphanumeric(6)

	if title != "" && title != defaultTitle {
		var fragments []string
		for _, word := range strings.Fields(title) {
			if len(word) > 3 {
				fragments = append(fragments, strings.ToUpper(firstChars(word, 4)))
			}
			if len(fragments) == 2 {
				break
			}
		}
		if len(fragments) > 0 {
			return fmt.Sprintf("Law_%s_%s_%s", year, strings.Join(fragments, "_"), suffix[:3])
		}
	}

	return fmt.Sprintf("Law_%s_%s", year, suffix)
}

// firstChars bounds s to n characters at a rune boundary.
func firstChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
