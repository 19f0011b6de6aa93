package repository

import (
	"context"
	"testing"
	"time"

	"golang-law-tracker/internal/entity"
	"golang-law-tracker/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) LawRepository {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)

	repo, err := NewFileLawRepository(t.TempDir(), log)
	require.NoError(t, err)
	return repo
}

func makeLaw(sector string, impact int, confidence string, stocks ...entity.StockImpacted) *entity.Law {
	return &entity.Law{
		Jurisdiction:   "United States",
		Status:         entity.StatusActive,
		Sector:         sector,
		Impact:         impact,
		Confidence:     confidence,
		Published:      time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		StocksImpacted: stocks,
	}
}

func TestCreateAndGetLaw(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateLaw(ctx, "Law_2024_TEST_001", makeLaw("Technology", 7, entity.ConfidenceHigh))
	require.NoError(t, err)
	assert.Equal(t, "Law_2024_TEST_001", created.ID)
	assert.Equal(t, 0, created.Affected)

	got, err := repo.GetLawByID(ctx, "Law_2024_TEST_001")
	require.NoError(t, err)
	assert.Equal(t, "Technology", got.Sector)
	assert.Equal(t, 7, got.Impact)

	_, err = repo.GetLawByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrLawNotFound)
}

func TestCreateLawDuplicateRejected(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLaw(ctx, "Law_A", makeLaw("Finance", 5, entity.ConfidenceMedium))
	require.NoError(t, err)

	_, err = repo.CreateLaw(ctx, "Law_A", makeLaw("Finance", 5, entity.ConfidenceMedium))
	assert.ErrorIs(t, err, ErrLawAlreadyExists)
}

func TestCreateLawValidation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	var validationErr *ValidationError

	_, err := repo.CreateLaw(ctx, "Law_B", makeLaw("Finance", 11, entity.ConfidenceMedium))
	require.ErrorAs(t, err, &validationErr)

	_, err = repo.CreateLaw(ctx, "Law_C", makeLaw("Finance", 5, entity.ConfidenceMedium,
		entity.StockImpacted{Ticker: "JPM", ImpactScore: 12}))
	require.ErrorAs(t, err, &validationErr)
}

func TestCreateLawForcesStockSector(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateLaw(ctx, "Law_D", makeLaw("Technology", 5, entity.ConfidenceMedium,
		entity.StockImpacted{Ticker: "AAPL", CompanyName: "Apple Inc.", Sector: "Consumer", ImpactScore: 6}))
	require.NoError(t, err)

	require.Len(t, created.StocksImpacted, 1)
	assert.Equal(t, "Technology", created.StocksImpacted[0].Sector)
	assert.Equal(t, 1, created.Affected)
}

func TestAddStockRecomputesDerivedFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLaw(ctx, "Law_E", makeLaw("Technology", 5, entity.ConfidenceHigh))
	require.NoError(t, err)

	law, err := repo.AddStockToLaw(ctx, "Law_E", &entity.StockImpacted{
		Ticker: "MSFT", CompanyName: "Microsoft", Sector: "Software", ImpactScore: 9,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, law.Affected)
	assert.Equal(t, 9, law.Impact)
	assert.Equal(t, "Technology", law.StocksImpacted[0].Sector)

	law, err = repo.AddStockToLaw(ctx, "Law_E", &entity.StockImpacted{
		Ticker: "AAPL", CompanyName: "Apple Inc.", ImpactScore: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, law.Affected)
	assert.Equal(t, 6, law.Impact) // round((9+4)/2)
}

func TestAddStockReplacesExistingTicker(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLaw(ctx, "Law_F", makeLaw("Energy", 5, entity.ConfidenceMedium,
		entity.StockImpacted{Ticker: "XOM", ImpactScore: 3}))
	require.NoError(t, err)

	law, err := repo.AddStockToLaw(ctx, "Law_F", &entity.StockImpacted{Ticker: "XOM", ImpactScore: 8})
	require.NoError(t, err)
	require.Len(t, law.StocksImpacted, 1)
	assert.Equal(t, float64(8), law.StocksImpacted[0].ImpactScore)
	assert.Equal(t, 8, law.Impact)
}

func TestRemoveStockFromLaw(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLaw(ctx, "Law_G", makeLaw("Finance", 5, entity.ConfidenceMedium,
		entity.StockImpacted{Ticker: "JPM", ImpactScore: 7}))
	require.NoError(t, err)

	law, err := repo.RemoveStockFromLaw(ctx, "Law_G", "JPM")
	require.NoError(t, err)
	assert.Equal(t, 0, law.Affected)
	assert.Equal(t, 0, law.Impact)

	// Removing an absent ticker is a no-op.
	law, err = repo.RemoveStockFromLaw(ctx, "Law_G", "JPM")
	require.NoError(t, err)
	assert.Equal(t, 0, law.Affected)
}

func TestUpdateStockInLaw(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLaw(ctx, "Law_H", makeLaw("Finance", 5, entity.ConfidenceMedium,
		entity.StockImpacted{Ticker: "GS", CompanyName: "Goldman Sachs", ImpactScore: 4}))
	require.NoError(t, err)

	score := 6.0
	law, err := repo.UpdateStockInLaw(ctx, "Law_H", "GS", &StockUpdates{ImpactScore: &score})
	require.NoError(t, err)
	assert.Equal(t, 6.0, law.StocksImpacted[0].ImpactScore)
	assert.Equal(t, "Goldman Sachs", law.StocksImpacted[0].CompanyName)
	assert.Equal(t, 6, law.Impact)

	_, err = repo.UpdateStockInLaw(ctx, "Law_H", "MISSING", &StockUpdates{ImpactScore: &score})
	assert.ErrorIs(t, err, ErrStockNotFound)

	bad := 15.0
	var validationErr *ValidationError
	_, err = repo.UpdateStockInLaw(ctx, "Law_H", "GS", &StockUpdates{ImpactScore: &bad})
	assert.ErrorAs(t, err, &validationErr)
}

func TestUpdateLawPartialFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLaw(ctx, "Law_I", makeLaw("Technology", 5, entity.ConfidenceMedium))
	require.NoError(t, err)

	status := entity.StatusExpired
	law, err := repo.UpdateLaw(ctx, "Law_I", &LawUpdates{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusExpired, law.Status)
	assert.Equal(t, "Technology", law.Sector)

	_, err = repo.UpdateLaw(ctx, "missing", &LawUpdates{Status: &status})
	assert.ErrorIs(t, err, ErrLawNotFound)
}

func TestDeleteLaw(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLaw(ctx, "Law_J", makeLaw("Energy", 5, entity.ConfidenceLow))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteLaw(ctx, "Law_J"))

	_, err = repo.GetLawByID(ctx, "Law_J")
	assert.ErrorIs(t, err, ErrLawNotFound)

	assert.ErrorIs(t, repo.DeleteLaw(ctx, "Law_J"), ErrLawNotFound)
}

func TestGetStocksBySectorDeduplicates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLaw(ctx, "Law_K", makeLaw("Technology", 5, entity.ConfidenceHigh,
		entity.StockImpacted{Ticker: "AAPL", ImpactScore: 4},
		entity.StockImpacted{Ticker: "MSFT", ImpactScore: 5}))
	require.NoError(t, err)

	_, err = repo.CreateLaw(ctx, "Law_L", makeLaw("Technology", 6, entity.ConfidenceHigh,
		entity.StockImpacted{Ticker: "AAPL", ImpactScore: 9}))
	require.NoError(t, err)

	stocks, err := repo.GetStocksBySector(ctx, "Technology")
	require.NoError(t, err)
	require.Len(t, stocks, 2)
	assert.Equal(t, "AAPL", stocks[0].Ticker)
	assert.Equal(t, float64(9), stocks[0].ImpactScore)
	assert.Equal(t, "MSFT", stocks[1].Ticker)

	none, err := repo.GetStocksBySector(ctx, "Agriculture")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetAllSectors(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLaw(ctx, "Law_M", makeLaw("Technology", 5, entity.ConfidenceHigh))
	require.NoError(t, err)
	_, err = repo.CreateLaw(ctx, "Law_N", makeLaw("Energy", 5, entity.ConfidenceLow))
	require.NoError(t, err)
	_, err = repo.CreateLaw(ctx, "Law_O", makeLaw("Energy", 7, entity.ConfidenceLow))
	require.NoError(t, err)

	sectors, err := repo.GetAllSectors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Energy", "Technology"}, sectors)
}

func TestCalculateAnalytics(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLaw(ctx, "Law_P", makeLaw("Technology", 4, entity.ConfidenceHigh,
		entity.StockImpacted{Ticker: "AAPL", ImpactScore: 5}))
	require.NoError(t, err)

	_, err = repo.CreateLaw(ctx, "Law_Q", makeLaw("Technology", 8, entity.ConfidenceLow,
		entity.StockImpacted{Ticker: "AAPL", ImpactScore: 6},
		entity.StockImpacted{Ticker: "MSFT", ImpactScore: 7}))
	require.NoError(t, err)

	analytics, err := repo.CalculateAnalytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, analytics.TotalLaws)
	assert.Equal(t, 2, analytics.TotalStocksImpacted)
	assert.InDelta(t, 6.0, analytics.AverageImpactBySector["Technology"], 1e-9)
	assert.InDelta(t, 0.4, analytics.SP500AffectedPercentage, 1e-9)
	// (4*1.0 + 8*0.4) / (1.0 + 0.4)
	assert.InDelta(t, 7.2/1.4, analytics.ConfidenceWeightedImpact, 1e-9)
}

func TestCalculateAnalyticsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	analytics, err := repo.CalculateAnalytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, analytics.TotalLaws)
	assert.Zero(t, analytics.ConfidenceWeightedImpact)
	assert.Zero(t, analytics.SP500AffectedPercentage)
}

func TestGetHistoryRecordsOperations(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateLaw(ctx, "Law_R", makeLaw("Finance", 5, entity.ConfidenceMedium))
	require.NoError(t, err)

	_, err = repo.AddStockToLaw(ctx, "Law_R", &entity.StockImpacted{
		Ticker: "JPM", CompanyName: "JPMorgan Chase", ImpactScore: 6,
	})
	require.NoError(t, err)

	history, err := repo.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first.
	assert.Equal(t, "Added JPMorgan Chase to law Law_R", history[0].Notes)
	assert.Equal(t, []string{"Added stock JPM"}, []string(history[0].Changes))
	assert.Equal(t, "Created law Law_R in Finance sector", history[1].Notes)
}
