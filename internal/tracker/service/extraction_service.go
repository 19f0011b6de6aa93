package service

import (
	"context"
	"sync"
	"time"

	"golang-law-tracker/internal/tracker/dto"
	"golang-law-tracker/internal/tracker/repository"
	"golang-law-tracker/pkg/logger"
	"golang-law-tracker/pkg/utils"
)

// ExtractionService turns document text into a best-effort structured law
// record. It never fails outright: it degrades from model output to keyword
// heuristics to fixed defaults, so a record is always produced. Callers must
// treat fields as low-confidence guesses when the model calls were
// insufficient.
type ExtractionService interface {
	ExtractLawInfo(ctx context.Context, documentText string) *dto.ExtractedLawData
}

// extractionCall is one narrowly-scoped prompt against the inference
// endpoint, targeting a disjoint subset of fields.
type extractionCall struct {
	name        string
	windowChars int
	buildPrompt func(string) string
	params      dto.GenerationParameters
}

type extractionService struct {
	inferenceRepo repository.InferenceRepository
	logger        *logger.Logger
	calls         []extractionCall
}

// NewExtractionService creates the multi-call extraction orchestrator.
func NewExtractionService(inferenceRepo repository.InferenceRepository, log *logger.Logger) ExtractionService {
	return &extractionService{
		inferenceRepo: inferenceRepo,
		logger:        log,
		calls: []extractionCall{
			{
				name:        "jurisdiction-status",
				windowChars: 12000,
				buildPrompt: repository.BuildJurisdictionStatusPrompt,
				params:      dto.GenerationParameters{MaxNewTokens: 150, Temperature: 0.1, TopP: 0.9, DoSample: false},
			},
			{
				name:        "date-title",
				windowChars: 12000,
				buildPrompt: repository.BuildDateTitlePrompt,
				params:      dto.GenerationParameters{MaxNewTokens: 200, Temperature: 0.1, TopP: 0.9, DoSample: false},
			},
			{
				name:        "sector-impact",
				windowChars: 15000,
				buildPrompt: repository.BuildSectorImpactPrompt,
				params:      dto.GenerationParameters{MaxNewTokens: 150, Temperature: 0.3, TopP: 0.9, DoSample: true},
			},
			{
				name:        "summary",
				windowChars: 15000,
				buildPrompt: repository.BuildSummaryPrompt,
				params:      dto.GenerationParameters{MaxNewTokens: 400, Temperature: 0.4, TopP: 0.9, DoSample: true},
			},
		},
	}
}

// ExtractLawInfo issues the four extraction calls concurrently, merges
// whichever succeed, and layers fallback heuristics and defaults over the
// result.
func (s *extractionService) ExtractLawInfo(ctx context.Context, documentText string) *dto.ExtractedLawData {
	results := make([]map[string]interface{}, len(s.calls))
	callErrs := make([]error, len(s.calls))

	var wg sync.WaitGroup
	for i, call := range s.calls {
		wg.Add(1)
		i, call := i, call
		utils.GoSafe(func() {
			defer wg.Done()

			window := firstChars(documentText, call.windowChars)
			raw, err := s.inferenceRepo.InvokeEndpoint(ctx, &dto.InferenceRequest{
				Inputs:     call.buildPrompt(window),
				Parameters: call.params,
			})
			if err != nil {
				callErrs[i] = err
				return
			}
			results[i] = parseModelResponse(raw)
		})
	}
	wg.Wait()

	// Merge in call order; first-set wins. Field sets are disjoint by
	// design, so overlap only happens on degenerate responses.
	merged := map[string]interface{}{}
	for i := range s.calls {
		if callErrs[i] != nil {
			s.logger.Warn("Extraction call failed",
				logger.StringField("call", s.calls[i].name),
				logger.ErrorField(callErrs[i]),
			)
			continue
		}
		for field, value := range results[i] {
			if _, exists := merged[field]; !exists && stringValue(value) != "" {
				merged[field] = value
			}
		}
	}

	if !hasRealData(merged) {
		s.logger.Warn("Model extraction returned mostly default values, using text-based fallback")
		for field, value := range extractFromRawText(documentText) {
			if _, exists := merged[field]; !exists {
				merged[field] = value
			}
		}
		if !hasRealData(merged) {
			s.logger.Warn("Text-based extraction was also insufficient, filling with defaults")
		}
	}

	data := s.applyDefaults(merged, documentText)
	data.LawID = generateLawID(data.Published, data.Title)
	return data
}

// applyDefaults fills any field still missing with its fixed default.
func (s *extractionService) applyDefaults(merged map[string]interface{}, documentText string) *dto.ExtractedLawData {
	data := &dto.ExtractedLawData{
		Jurisdiction: "Unknown",
		Status:       "Pending",
		Published:    time.Now().Format("2006-01-02"),
		Sector:       "General",
		Impact:       5,
		Confidence:   "Medium",
	}

	if v := stringValue(merged["jurisdiction"]); v != "" {
		data.Jurisdiction = v
	}
	if v := stringValue(merged["status"]); v != "" {
		data.Status = v
	}
	if v := stringValue(merged["published"]); v != "" {
		data.Published = v
	}
	if v := stringValue(merged["title"]); v != "" {
		data.Title = v
	} else {
		data.Title = extractTitleFromText(documentText)
	}
	if v := stringValue(merged["sector"]); v != "" {
		data.Sector = v
	}
	if v, ok := intValue(merged["impact"]); ok {
		data.Impact = v
	}
	if v := stringValue(merged["confidence"]); v != "" {
		data.Confidence = v
	}
	if v := stringValue(merged["summary"]); v != "" {
		data.Summary = v
	} else {
		data.Summary = firstChars(documentText, 300)
	}
	return data
}

// hasRealData checks whether at least 3 of the 6 target fields hold a
// non-default, non-trivial value.
func hasRealData(merged map[string]interface{}) bool {
	realFields := 0

	if v := stringValue(merged["jurisdiction"]); v != "" && v != "Unknown" {
		realFields++
	}
	if v := stringValue(merged["status"]); v != "" && v != "Pending" {
		realFields++
	}
	if v := stringValue(merged["title"]); len(v) > 5 && v != defaultTitle {
		realFields++
	}
	if v := stringValue(merged["sector"]); v != "" && v != "General" {
		realFields++
	}
	if v, ok := intValue(merged["impact"]); ok && v != 0 && v != 5 {
		realFields++
	}
	if v := stringValue(merged["summary"]); len(v) > 50 {
		realFields++
	}

	return realFields >= 3
}
