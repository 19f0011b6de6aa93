package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"golang-law-tracker/internal/entity"
	"golang-law-tracker/internal/tracker/dto"
)

// Typed results callers are expected to branch on explicitly.
var (
	ErrLawNotFound      = errors.New("law not found")
	ErrStockNotFound    = errors.New("stock relationship not found")
	ErrLawAlreadyExists = errors.New("law already exists")
)

// historyLimit caps audit reads to the most recent entries.
const historyLimit = 100

// Fixed weights for confidence-weighted impact. Unrecognized labels weigh 0.5.
var confidenceWeights = map[string]float64{
	entity.ConfidenceHigh:   1.0,
	entity.ConfidenceMedium: 0.7,
	entity.ConfidenceLow:    0.4,
}

// ValidationError reports a rejected write, distinguishable from not-found.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// LawUpdates holds a partial law update; only non-nil fields are applied.
type LawUpdates struct {
	Jurisdiction *string
	Status       *string
	Sector       *string
	Impact       *int
	Confidence   *string
	Published    *time.Time
	Document     *entity.LawDocument
}

// Fields names the fields carried by the update, for audit entries.
func (u *LawUpdates) Fields() []string {
	var fields []string
	if u.Jurisdiction != nil {
		fields = append(fields, "jurisdiction")
	}
	if u.Status != nil {
		fields = append(fields, "status")
	}
	if u.Sector != nil {
		fields = append(fields, "sector")
	}
	if u.Impact != nil {
		fields = append(fields, "impact")
	}
	if u.Confidence != nil {
		fields = append(fields, "confidence")
	}
	if u.Published != nil {
		fields = append(fields, "published")
	}
	if u.Document != nil {
		fields = append(fields, "document")
	}
	return fields
}

// StockUpdates holds a partial stock-relationship update.
type StockUpdates struct {
	CompanyName           *string
	ImpactScore           *float64
	CorrelationConfidence *string
	Notes                 *string
}

// LawRepository is the persistence contract for laws, their stock
// relationships, derived analytics, and the audit log. Two interchangeable
// backends implement it; callers must not depend on which is active.
type LawRepository interface {
	GetAllLaws(ctx context.Context) (map[string]*entity.Law, error)
	GetLawByID(ctx context.Context, id string) (*entity.Law, error)
	CreateLaw(ctx context.Context, id string, law *entity.Law) (*entity.Law, error)
	UpdateLaw(ctx context.Context, id string, updates *LawUpdates) (*entity.Law, error)
	DeleteLaw(ctx context.Context, id string) error

	AddStockToLaw(ctx context.Context, lawID string, stock *entity.StockImpacted) (*entity.Law, error)
	UpdateStockInLaw(ctx context.Context, lawID, ticker string, updates *StockUpdates) (*entity.Law, error)
	RemoveStockFromLaw(ctx context.Context, lawID, ticker string) (*entity.Law, error)

	GetStocksBySector(ctx context.Context, sector string) ([]entity.StockImpacted, error)
	GetAllSectors(ctx context.Context) ([]string, error)
	CalculateAnalytics(ctx context.Context) (*dto.Analytics, error)
	GetHistory(ctx context.Context) ([]entity.UpdateHistory, error)
}

// validateLaw enforces the write invariants: every relationship's sector is
// forced to the law's sector, affected equals the relationship count, and all
// impact values are within 0-10.
func validateLaw(law *entity.Law) error {
	for i := range law.StocksImpacted {
		if law.StocksImpacted[i].Sector != law.Sector {
			law.StocksImpacted[i].Sector = law.Sector
		}
	}

	law.Affected = len(law.StocksImpacted)

	if law.Impact < 0 || law.Impact > 10 {
		return &ValidationError{Message: "impact score must be between 0 and 10"}
	}

	for _, stock := range law.StocksImpacted {
		if stock.ImpactScore < 0 || stock.ImpactScore > 10 {
			return &ValidationError{
				Message: fmt.Sprintf("stock %s impact score must be between 0 and 10", stock.Ticker),
			}
		}
	}
	return nil
}

// recalculateDerived recomputes affected and impact from the relationship
// set: impact is the rounded mean of relationship impact scores, 0 when the
// set is empty.
func recalculateDerived(law *entity.Law) {
	law.Affected = len(law.StocksImpacted)

	if len(law.StocksImpacted) == 0 {
		law.Impact = 0
		return
	}

	var sum float64
	for _, stock := range law.StocksImpacted {
		sum += stock.ImpactScore
	}
	law.Impact = int(math.Round(sum / float64(len(law.StocksImpacted))))
}

// dedupByTicker keeps one relationship per ticker: the highest impact score
// wins, first seen on ties. Output is sorted by ticker for determinism.
func dedupByTicker(stocks []entity.StockImpacted) []entity.StockImpacted {
	best := make(map[string]entity.StockImpacted)
	for _, stock := range stocks {
		current, ok := best[stock.Ticker]
		if !ok || stock.ImpactScore > current.ImpactScore {
			best[stock.Ticker] = stock
		}
	}

	result := make([]entity.StockImpacted, 0, len(best))
	for _, stock := range best {
		result = append(result, stock)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Ticker < result[j].Ticker })
	return result
}

// computeAnalytics derives the aggregate metrics from a full law snapshot.
func computeAnalytics(laws map[string]*entity.Law) *dto.Analytics {
	analytics := &dto.Analytics{
		TotalLaws:             len(laws),
		AverageImpactBySector: make(map[string]float64),
	}

	sectorSums := make(map[string]float64)
	sectorCounts := make(map[string]int)
	uniqueStocks := make(map[string]struct{})
	var totalWeightedImpact, totalWeight float64

	for _, law := range laws {
		sectorSums[law.Sector] += float64(law.Impact)
		sectorCounts[law.Sector]++

		for _, stock := range law.StocksImpacted {
			uniqueStocks[stock.Ticker] = struct{}{}
		}

		weight, ok := confidenceWeights[law.Confidence]
		if !ok {
			weight = 0.5
		}
		totalWeightedImpact += float64(law.Impact) * weight
		totalWeight += weight
	}

	for sector, sum := range sectorSums {
		analytics.AverageImpactBySector[sector] = sum / float64(sectorCounts[sector])
	}

	analytics.TotalStocksImpacted = len(uniqueStocks)
	analytics.SP500AffectedPercentage = float64(len(uniqueStocks)) / 500 * 100

	if totalWeight > 0 {
		analytics.ConfidenceWeightedImpact = totalWeightedImpact / totalWeight
	}
	return analytics
}
