// Package docparse converts uploaded document bytes into plain text for the
// extraction pipeline. Format is chosen by filename extension; unknown
// extensions are treated as plain text.
package docparse

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// TruncationMarker is appended to text cut off by Truncate.
const TruncationMarker = "\n\n[... text truncated due to length ...]"

// DefaultMaxChars is the default character budget for model calls.
const DefaultMaxChars = 15000

var whitespaceRe = regexp.MustCompile(`\s+`)

// Result holds the extracted text and, for PDFs, the page count.
type Result struct {
	Text  string
	Pages int
}

// Parse extracts plain text from a document buffer. Any underlying parse
// failure is wrapped with the file extension and the cause.
func Parse(data []byte, filename string) (*Result, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	var (
		res *Result
		err error
	)
	switch ext {
	case "txt", "text":
		res = parseText(data)
	case "html", "htm":
		res, err = parseHTML(data)
	case "xml":
		res, err = parseXML(data)
	case "pdf":
		res, err = parsePDF(data)
	default:
		res = parseText(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s file: %w", ext, err)
	}
	return res, nil
}

func parseText(data []byte) *Result {
	return &Result{Text: strings.TrimSpace(string(data))}
}

func parseHTML(data []byte) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	doc.Find("script, style").Remove()

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}

	return &Result{Text: collapseWhitespace(text)}, nil
}

// parseXML extracts the text nodes of an XML document. goquery's lenient
// parser handles arbitrary tag names, matching the HTML path's behavior.
func parseXML(data []byte) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return &Result{Text: collapseWhitespace(doc.Text())}, nil
}

func parsePDF(data []byte) (res *Result, err error) {
	// The pdf library panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return nil, err
	}

	text, err := io.ReadAll(plain)
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:  strings.TrimSpace(string(text)),
		Pages: reader.NumPage(),
	}, nil
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Truncate bounds text to maxChars characters, appending TruncationMarker
// when anything was cut. maxChars <= 0 falls back to DefaultMaxChars.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars]) + TruncationMarker
}
