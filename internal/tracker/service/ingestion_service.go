package service

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"golang-law-tracker/internal/entity"
	"golang-law-tracker/internal/tracker/dto"
	"golang-law-tracker/internal/tracker/repository"
	"golang-law-tracker/pkg/docparse"
	"golang-law-tracker/pkg/logger"
)

// createRetries bounds identifier regeneration when a generated law ID
// collides with an existing record.
const createRetries = 3

// IngestionService runs the document-to-law pipeline: parse the uploaded
// file, truncate its text, extract structured fields, and persist the result.
type IngestionService interface {
	IngestDocument(ctx context.Context, data []byte, filename string) (*dto.UploadDocumentResponse, error)
}

type ingestionService struct {
	lawRepo           repository.LawRepository
	extractionService ExtractionService
	logger            *logger.Logger
}

// NewIngestionService creates a new document ingestion service.
func NewIngestionService(lawRepo repository.LawRepository, extractionService ExtractionService, log *logger.Logger) IngestionService {
	return &ingestionService{
		lawRepo:           lawRepo,
		extractionService: extractionService,
		logger:            log,
	}
}

func (s *ingestionService) IngestDocument(ctx context.Context, data []byte, filename string) (*dto.UploadDocumentResponse, error) {
	parsed, err := docparse.Parse(data, filename)
	if err != nil {
		return nil, &repository.ValidationError{Message: err.Error()}
	}
	if strings.TrimSpace(parsed.Text) == "" {
		return nil, &repository.ValidationError{Message: "document contains no extractable text"}
	}

	text := docparse.Truncate(parsed.Text, docparse.DefaultMaxChars)

	s.logger.Info("Extracting law information from document",
		logger.StringField("filename", filename),
		logger.IntField("text_chars", len(text)),
	)
	extracted := s.extractionService.ExtractLawInfo(ctx, text)

	extracted.Status = coerceStatus(extracted.Status)
	extracted.Confidence = coerceConfidence(extracted.Confidence)
	extracted.Impact = clampImpact(extracted.Impact)

	law := s.buildLaw(extracted, text, filename)

	lawID := extracted.LawID
	var created *entity.Law
	for attempt := 0; ; attempt++ {
		created, err = s.lawRepo.CreateLaw(ctx, lawID, law)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrLawAlreadyExists) || attempt >= createRetries-1 {
			return nil, err
		}
		lawID = generateLawID(extracted.Published, extracted.Title)
		s.logger.Warn("Law ID collision, regenerating",
			logger.StringField("law_id", lawID),
		)
	}

	s.logger.Info("Ingested document as law",
		logger.StringField("law_id", lawID),
		logger.StringField("sector", created.Sector),
		logger.IntField("pages", parsed.Pages),
	)

	return &dto.UploadDocumentResponse{
		Success: true,
		LawID:   lawID,
		Law:     mapLawResponse(lawID, created),
		Pages:   parsed.Pages,
		Fields:  extracted,
	}, nil
}

func (s *ingestionService) buildLaw(extracted *dto.ExtractedLawData, text, filename string) *entity.Law {
	metadata, err := json.Marshal(extracted)
	if err != nil {
		metadata = nil
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &entity.Law{
		Jurisdiction: extracted.Jurisdiction,
		Status:       extracted.Status,
		Sector:       extracted.Sector,
		Impact:       extracted.Impact,
		Confidence:   extracted.Confidence,
		Published:    parseExtractedDate(extracted.Published),
		Document: &entity.LawDocument{
			Filename:    filename,
			Content:     text,
			ContentType: contentType,
			UploadedAt:  time.Now(),
		},
		LLMSummary:  extracted.Summary,
		LLMMetadata: metadata,
	}
}

// parseExtractedDate accepts the date shapes the extraction pipeline can
// produce, falling back to today when none match.
func parseExtractedDate(value string) time.Time {
	layouts := []string{"2006-01-02", "January 2, 2006", "January 2 2006"}
	for _, layout := range layouts {
		if published, err := time.Parse(layout, value); err == nil {
			return published
		}
	}
	return time.Now().Truncate(24 * time.Hour)
}

func coerceStatus(status string) string {
	switch status {
	case entity.StatusActive, entity.StatusPending, entity.StatusExpired:
		return status
	}
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active":
		return entity.StatusActive
	case "expired":
		return entity.StatusExpired
	default:
		return entity.StatusPending
	}
}

func coerceConfidence(confidence string) string {
	switch confidence {
	case entity.ConfidenceHigh, entity.ConfidenceMedium, entity.ConfidenceLow:
		return confidence
	}
	switch strings.ToLower(strings.TrimSpace(confidence)) {
	case "high":
		return entity.ConfidenceHigh
	case "low":
		return entity.ConfidenceLow
	default:
		return entity.ConfidenceMedium
	}
}

func clampImpact(impact int) int {
	if impact < 0 {
		return 0
	}
	if impact > 10 {
		return 10
	}
	return impact
}
