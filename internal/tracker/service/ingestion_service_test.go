package service

import (
	"context"
	"testing"

	"golang-law-tracker/internal/entity"
	"golang-law-tracker/internal/tracker/dto"
	"golang-law-tracker/internal/tracker/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedExtractionService returns a canned extraction result.
type fixedExtractionService struct {
	data dto.ExtractedLawData
}

func (f *fixedExtractionService) ExtractLawInfo(ctx context.Context, documentText string) *dto.ExtractedLawData {
	data := f.data
	return &data
}

func newTestFileRepo(t *testing.T) repository.LawRepository {
	t.Helper()
	repo, err := repository.NewFileLawRepository(t.TempDir(), testLogger(t))
	require.NoError(t, err)
	return repo
}

func TestIngestDocumentCreatesLaw(t *testing.T) {
	repo := newTestFileRepo(t)
	extraction := &fixedExtractionService{data: dto.ExtractedLawData{
		LawID:        "Law_2024_DATA_001",
		Jurisdiction: "European Union",
		Status:       "Active",
		Published:    "2024-03-20",
		Title:        "Data Act",
		Sector:       "Technology",
		Impact:       8,
		Confidence:   "High",
		Summary:      "Regulates access to and sharing of data generated by connected products.",
	}}
	svc := NewIngestionService(repo, extraction, testLogger(t))

	resp, err := svc.IngestDocument(context.Background(), []byte("The Data Act full text."), "data-act.txt")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Law_2024_DATA_001", resp.LawID)
	require.NotNil(t, resp.Law)
	assert.Equal(t, "European Union", resp.Law.Jurisdiction)
	assert.Equal(t, "2024-03-20", resp.Law.Published)
	assert.Equal(t, 8, resp.Law.Impact)
	assert.Equal(t, 0, resp.Law.Affected)

	stored, err := repo.GetLawByID(context.Background(), "Law_2024_DATA_001")
	require.NoError(t, err)
	require.NotNil(t, stored.Document)
	assert.Equal(t, "data-act.txt", stored.Document.Filename)
	assert.Equal(t, "The Data Act full text.", stored.Document.Content)
	assert.Equal(t, "Regulates access to and sharing of data generated by connected products.", stored.LLMSummary)
	assert.NotEmpty(t, stored.LLMMetadata)
}

func TestIngestDocumentCoercesModelOutput(t *testing.T) {
	repo := newTestFileRepo(t)
	extraction := &fixedExtractionService{data: dto.ExtractedLawData{
		LawID:        "Law_2024_COER_001",
		Jurisdiction: "Unknown",
		Status:       "in force",
		Published:    "March 5, 2024",
		Title:        "Some Act",
		Sector:       "General",
		Impact:       42,
		Confidence:   "very high",
		Summary:      "s",
	}}
	svc := NewIngestionService(repo, extraction, testLogger(t))

	resp, err := svc.IngestDocument(context.Background(), []byte("text"), "law.txt")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, resp.Law.Status)
	assert.Equal(t, entity.ConfidenceMedium, resp.Law.Confidence)
	assert.Equal(t, 10, resp.Law.Impact)
	assert.Equal(t, "2024-03-05", resp.Law.Published)
}

func TestIngestDocumentRetriesOnIDCollision(t *testing.T) {
	repo := newTestFileRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLaw(ctx, "Law_2024_DUPL_001", &entity.Law{
		Jurisdiction: "United States",
		Status:       entity.StatusActive,
		Sector:       "Finance",
		Impact:       5,
		Confidence:   entity.ConfidenceMedium,
	})
	require.NoError(t, err)

	extraction := &fixedExtractionService{data: dto.ExtractedLawData{
		LawID:        "Law_2024_DUPL_001",
		Jurisdiction: "United States",
		Status:       "Active",
		Published:    "2024-01-01",
		Title:        "Duplicate Act",
		Sector:       "Finance",
		Impact:       6,
		Confidence:   "Medium",
		Summary:      "A law whose generated identifier collides with an existing record.",
	}}
	svc := NewIngestionService(repo, extraction, testLogger(t))

	resp, err := svc.IngestDocument(ctx, []byte("Duplicate Act text."), "dup.txt")
	require.NoError(t, err)
	assert.NotEqual(t, "Law_2024_DUPL_001", resp.LawID)

	_, err = repo.GetLawByID(ctx, resp.LawID)
	require.NoError(t, err)
}

func TestIngestDocumentRejectsEmptyText(t *testing.T) {
	svc := NewIngestionService(newTestFileRepo(t), &fixedExtractionService{}, testLogger(t))

	var validationErr *repository.ValidationError
	_, err := svc.IngestDocument(context.Background(), []byte("   \n"), "empty.txt")
	require.ErrorAs(t, err, &validationErr)
}

func TestCoerceHelpers(t *testing.T) {
	assert.Equal(t, entity.StatusActive, coerceStatus("active"))
	assert.Equal(t, entity.StatusExpired, coerceStatus("Expired"))
	assert.Equal(t, entity.StatusPending, coerceStatus("proposed"))

	assert.Equal(t, entity.ConfidenceHigh, coerceConfidence("HIGH"))
	assert.Equal(t, entity.ConfidenceLow, coerceConfidence("low"))
	assert.Equal(t, entity.ConfidenceMedium, coerceConfidence("whatever"))

	assert.Equal(t, 0, clampImpact(-3))
	assert.Equal(t, 10, clampImpact(99))
	assert.Equal(t, 7, clampImpact(7))
}
