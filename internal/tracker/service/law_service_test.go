package service

import (
	"context"
	"testing"

	"golang-law-tracker/internal/tracker/dto"
	"golang-law-tracker/internal/tracker/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLawService(t *testing.T) LawService {
	t.Helper()
	return NewLawService(newTestFileRepo(t), testLogger(t))
}

func TestLawServiceCreateAndGet(t *testing.T) {
	svc := newLawService(t)
	ctx := context.Background()

	created, err := svc.CreateLaw(ctx, &dto.CreateLawRequest{
		LawID:        "Law_2024_PRIV_001",
		Jurisdiction: "California",
		Status:       "Active",
		Sector:       "Technology",
		Impact:       6,
		Confidence:   "High",
		Published:    "2024-01-15",
		StocksImpacted: []dto.StockImpactedDTO{
			{Ticker: "GOOG", CompanyName: "Alphabet", Sector: "Internet", ImpactScore: 7},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Law_2024_PRIV_001", created.LawID)
	assert.Equal(t, "2024-01-15", created.Published)
	assert.Equal(t, 1, created.Affected)
	// The stock's sector follows the law's sector.
	require.Len(t, created.StocksImpacted, 1)
	assert.Equal(t, "Technology", created.StocksImpacted[0].Sector)

	got, err := svc.GetLawByID(ctx, "Law_2024_PRIV_001")
	require.NoError(t, err)
	assert.Equal(t, "California", got.Jurisdiction)

	all, err := svc.GetAllLaws(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLawServiceCreateValidation(t *testing.T) {
	svc := newLawService(t)
	ctx := context.Background()

	var validationErr *repository.ValidationError

	_, err := svc.CreateLaw(ctx, &dto.CreateLawRequest{Published: "2024-01-15"})
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateLaw(ctx, &dto.CreateLawRequest{LawID: "Law_X", Published: "15/01/2024"})
	require.ErrorAs(t, err, &validationErr)
}

func TestLawServiceUpdateAndStocks(t *testing.T) {
	svc := newLawService(t)
	ctx := context.Background()

	_, err := svc.CreateLaw(ctx, &dto.CreateLawRequest{
		LawID:        "Law_2024_BANK_001",
		Jurisdiction: "United States",
		Status:       "Pending",
		Sector:       "Finance",
		Impact:       4,
		Confidence:   "Medium",
		Published:    "2024-02-01",
	})
	require.NoError(t, err)

	status := "Active"
	updated, err := svc.UpdateLaw(ctx, "Law_2024_BANK_001", &dto.UpdateLawRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Active", updated.Status)

	withStock, err := svc.AddStockToLaw(ctx, "Law_2024_BANK_001", &dto.StockImpactedDTO{
		Ticker: "JPM", CompanyName: "JPMorgan Chase", ImpactScore: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, withStock.Impact)

	_, err = svc.AddStockToLaw(ctx, "Law_2024_BANK_001", &dto.StockImpactedDTO{})
	var validationErr *repository.ValidationError
	require.ErrorAs(t, err, &validationErr)

	afterRemove, err := svc.RemoveStockFromLaw(ctx, "Law_2024_BANK_001", "JPM")
	require.NoError(t, err)
	assert.Equal(t, 0, afterRemove.Affected)

	require.NoError(t, svc.DeleteLaw(ctx, "Law_2024_BANK_001"))
	_, err = svc.GetLawByID(ctx, "Law_2024_BANK_001")
	assert.ErrorIs(t, err, repository.ErrLawNotFound)
}
