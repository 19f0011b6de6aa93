package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"golang-law-tracker/internal/entity"
	"golang-law-tracker/internal/tracker/dto"
	"golang-law-tracker/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postgresLawRepository is the relational backend. Stock identity lives in a
// shared stocks table; per-(law, ticker) impact data lives in
// law_stock_relationships. Every relationship mutation recomputes the owning
// law's derived fields inside the same transaction.
type postgresLawRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewPostgresLawRepository creates a GORM-based law repository.
func NewPostgresLawRepository(db *gorm.DB, log *logger.Logger) LawRepository {
	return &postgresLawRepository{db: db, logger: log}
}

// loadStocks fetches the denormalized relationship view for one law.
func (r *postgresLawRepository) loadStocks(tx *gorm.DB, lawID string) ([]entity.StockImpacted, error) {
	var stocks []entity.StockImpacted
	err := tx.Table("law_stock_relationships AS lsr").
		Select("lsr.stock_ticker AS ticker, s.company_name, s.sector, lsr.impact_score, lsr.correlation_confidence, lsr.notes").
		Joins("JOIN stocks s ON s.ticker = lsr.stock_ticker").
		Where("lsr.law_id = ?", lawID).
		Order("lsr.stock_ticker").
		Scan(&stocks).Error
	if err != nil {
		return nil, err
	}
	return stocks, nil
}

func (r *postgresLawRepository) loadLaw(tx *gorm.DB, id string) (*entity.Law, error) {
	var law entity.Law
	if err := tx.First(&law, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLawNotFound
		}
		return nil, err
	}

	stocks, err := r.loadStocks(tx, id)
	if err != nil {
		return nil, err
	}
	law.StocksImpacted = stocks
	if law.Document != nil && law.Document.Filename == "" {
		law.Document = nil
	}
	return &law, nil
}

func (r *postgresLawRepository) appendHistory(tx *gorm.DB, lawID string, changes []string, notes string) error {
	return tx.Create(&entity.UpdateHistory{
		LawID:     lawID,
		Changes:   changes,
		Notes:     notes,
		Timestamp: time.Now().UTC(),
	}).Error
}

// recomputeDerived refreshes affected and impact on the law row from its
// relationship set.
func (r *postgresLawRepository) recomputeDerived(tx *gorm.DB, lawID string) error {
	var stats struct {
		Count int64
		Avg   sql.NullFloat64
	}
	err := tx.Table("law_stock_relationships").
		Select("COUNT(*) AS count, AVG(impact_score) AS avg").
		Where("law_id = ?", lawID).
		Scan(&stats).Error
	if err != nil {
		return err
	}

	impact := 0
	if stats.Count > 0 {
		impact = int(math.Round(stats.Avg.Float64))
	}
	return tx.Model(&entity.Law{}).Where("id = ?", lawID).
		Updates(map[string]interface{}{"affected": stats.Count, "impact": impact}).Error
}

// GetAllLaws returns the full law collection keyed by identifier.
func (r *postgresLawRepository) GetAllLaws(ctx context.Context) (map[string]*entity.Law, error) {
	tx := r.db.WithContext(ctx)

	var laws []entity.Law
	if err := tx.Order("created_at DESC").Find(&laws).Error; err != nil {
		return nil, err
	}

	result := make(map[string]*entity.Law, len(laws))
	for i := range laws {
		law := &laws[i]
		stocks, err := r.loadStocks(tx, law.ID)
		if err != nil {
			return nil, err
		}
		law.StocksImpacted = stocks
		if law.Document != nil && law.Document.Filename == "" {
			law.Document = nil
		}
		result[law.ID] = law
	}
	return result, nil
}

// GetLawByID returns a law or ErrLawNotFound.
func (r *postgresLawRepository) GetLawByID(ctx context.Context, id string) (*entity.Law, error) {
	return r.loadLaw(r.db.WithContext(ctx), id)
}

// CreateLaw validates and stores a new law with any embedded relationships.
// The write is transactional; duplicates are rejected with
// ErrLawAlreadyExists.
func (r *postgresLawRepository) CreateLaw(ctx context.Context, id string, law *entity.Law) (*entity.Law, error) {
	if err := validateLaw(law); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Law{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrLawAlreadyExists
		}

		law.ID = id
		if err := tx.Create(law).Error; err != nil {
			return err
		}

		for _, stock := range law.StocksImpacted {
			if err := r.upsertStock(tx, id, law.Sector, &stock); err != nil {
				return err
			}
		}

		return r.appendHistory(tx, id, []string{"Created new law"},
			fmt.Sprintf("Created law %s in %s sector", id, law.Sector))
	})
	if err != nil {
		return nil, err
	}
	return r.loadLaw(r.db.WithContext(ctx), id)
}

func (r *postgresLawRepository) upsertStock(tx *gorm.DB, lawID, lawSector string, stock *entity.StockImpacted) error {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}},
		DoUpdates: clause.AssignmentColumns([]string{"company_name", "sector", "updated_at"}),
	}).Create(&entity.Stock{
		Ticker:      stock.Ticker,
		CompanyName: stock.CompanyName,
		Sector:      lawSector,
	}).Error
	if err != nil {
		return err
	}

	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "law_id"}, {Name: "stock_ticker"}},
		DoUpdates: clause.AssignmentColumns([]string{"impact_score", "correlation_confidence", "notes"}),
	}).Create(&entity.LawStockRelationship{
		LawID:                 lawID,
		StockTicker:           stock.Ticker,
		ImpactScore:           stock.ImpactScore,
		CorrelationConfidence: stock.CorrelationConfidence,
		Notes:                 stock.Notes,
	}).Error
}

// UpdateLaw applies only the provided fields, re-validating invariants. A
// sector change propagates to the linked stocks' catalog rows.
func (r *postgresLawRepository) UpdateLaw(ctx context.Context, id string, updates *LawUpdates) (*entity.Law, error) {
	if updates.Impact != nil && (*updates.Impact < 0 || *updates.Impact > 10) {
		return nil, &ValidationError{Message: "impact score must be between 0 and 10"}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Law{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrLawNotFound
		}

		values := map[string]interface{}{}
		if updates.Jurisdiction != nil {
			values["jurisdiction"] = *updates.Jurisdiction
		}
		if updates.Status != nil {
			values["status"] = *updates.Status
		}
		if updates.Sector != nil {
			values["sector"] = *updates.Sector
		}
		if updates.Impact != nil {
			values["impact"] = *updates.Impact
		}
		if updates.Confidence != nil {
			values["confidence"] = *updates.Confidence
		}
		if updates.Published != nil {
			values["published"] = *updates.Published
		}
		if updates.Document != nil {
			values["document_filename"] = updates.Document.Filename
			values["document_content"] = updates.Document.Content
			values["document_content_type"] = updates.Document.ContentType
			values["document_uploaded_at"] = updates.Document.UploadedAt
		}

		if len(values) > 0 {
			if err := tx.Model(&entity.Law{}).Where("id = ?", id).Updates(values).Error; err != nil {
				return err
			}
		}

		// Keep linked stocks' sector consistent with the law's sector.
		if updates.Sector != nil {
			err := tx.Exec(`
				UPDATE stocks SET sector = ?
				WHERE ticker IN (SELECT stock_ticker FROM law_stock_relationships WHERE law_id = ?)`,
				*updates.Sector, id).Error
			if err != nil {
				return err
			}
		}

		return r.appendHistory(tx, id, updates.Fields(), fmt.Sprintf("Updated law %s", id))
	})
	if err != nil {
		return nil, err
	}
	return r.loadLaw(r.db.WithContext(ctx), id)
}

// DeleteLaw removes a law and cascades to its stock relationships.
func (r *postgresLawRepository) DeleteLaw(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("law_id = ?", id).Delete(&entity.LawStockRelationship{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&entity.Law{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLawNotFound
		}

		return r.appendHistory(tx, id, []string{"Deleted law"}, fmt.Sprintf("Deleted law %s", id))
	})
}

// AddStockToLaw upserts the stock's global identity and the (law, ticker)
// relationship, then recomputes the law's derived fields.
func (r *postgresLawRepository) AddStockToLaw(ctx context.Context, lawID string, stock *entity.StockImpacted) (*entity.Law, error) {
	if stock.ImpactScore < 0 || stock.ImpactScore > 10 {
		return nil, &ValidationError{
			Message: fmt.Sprintf("stock %s impact score must be between 0 and 10", stock.Ticker),
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var law entity.Law
		if err := tx.First(&law, "id = ?", lawID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLawNotFound
			}
			return err
		}

		stock.Sector = law.Sector
		if err := r.upsertStock(tx, lawID, law.Sector, stock); err != nil {
			return err
		}

		if err := r.recomputeDerived(tx, lawID); err != nil {
			return err
		}

		return r.appendHistory(tx, lawID,
			[]string{fmt.Sprintf("Added stock %s", stock.Ticker)},
			fmt.Sprintf("Added %s to law %s", stock.CompanyName, lawID))
	})
	if err != nil {
		return nil, err
	}
	return r.loadLaw(r.db.WithContext(ctx), lawID)
}

// UpdateStockInLaw applies only the provided fields to an existing
// relationship and recomputes the law's derived fields.
func (r *postgresLawRepository) UpdateStockInLaw(ctx context.Context, lawID, ticker string, updates *StockUpdates) (*entity.Law, error) {
	if updates.ImpactScore != nil && (*updates.ImpactScore < 0 || *updates.ImpactScore > 10) {
		return nil, &ValidationError{
			Message: fmt.Sprintf("stock %s impact score must be between 0 and 10", ticker),
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Law{}).Where("id = ?", lawID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrLawNotFound
		}

		var rel entity.LawStockRelationship
		err := tx.First(&rel, "law_id = ? AND stock_ticker = ?", lawID, ticker).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStockNotFound
			}
			return err
		}

		values := map[string]interface{}{}
		if updates.ImpactScore != nil {
			values["impact_score"] = *updates.ImpactScore
		}
		if updates.CorrelationConfidence != nil {
			values["correlation_confidence"] = *updates.CorrelationConfidence
		}
		if updates.Notes != nil {
			values["notes"] = *updates.Notes
		}
		if len(values) > 0 {
			err := tx.Model(&entity.LawStockRelationship{}).
				Where("law_id = ? AND stock_ticker = ?", lawID, ticker).
				Updates(values).Error
			if err != nil {
				return err
			}
		}

		if updates.CompanyName != nil {
			err := tx.Model(&entity.Stock{}).Where("ticker = ?", ticker).
				Update("company_name", *updates.CompanyName).Error
			if err != nil {
				return err
			}
		}

		if err := r.recomputeDerived(tx, lawID); err != nil {
			return err
		}

		return r.appendHistory(tx, lawID,
			[]string{fmt.Sprintf("Updated stock %s", ticker)},
			fmt.Sprintf("Updated stock %s in law %s", ticker, lawID))
	})
	if err != nil {
		return nil, err
	}
	return r.loadLaw(r.db.WithContext(ctx), lawID)
}

// RemoveStockFromLaw removes a relationship and recomputes derived fields.
// Removing an absent ticker is a no-op, not an error.
func (r *postgresLawRepository) RemoveStockFromLaw(ctx context.Context, lawID, ticker string) (*entity.Law, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Law{}).Where("id = ?", lawID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrLawNotFound
		}

		err := tx.Where("law_id = ? AND stock_ticker = ?", lawID, ticker).
			Delete(&entity.LawStockRelationship{}).Error
		if err != nil {
			return err
		}

		if err := r.recomputeDerived(tx, lawID); err != nil {
			return err
		}

		return r.appendHistory(tx, lawID,
			[]string{fmt.Sprintf("Removed stock %s", ticker)},
			fmt.Sprintf("Removed stock %s from law %s", ticker, lawID))
	})
	if err != nil {
		return nil, err
	}
	return r.loadLaw(r.db.WithContext(ctx), lawID)
}

// GetStocksBySector returns the distinct stocks whose catalog sector matches,
// one entry per ticker.
func (r *postgresLawRepository) GetStocksBySector(ctx context.Context, sector string) ([]entity.StockImpacted, error) {
	var stocks []entity.StockImpacted
	err := r.db.WithContext(ctx).
		Table("law_stock_relationships AS lsr").
		Select("lsr.stock_ticker AS ticker, s.company_name, s.sector, lsr.impact_score, lsr.correlation_confidence, lsr.notes").
		Joins("JOIN stocks s ON s.ticker = lsr.stock_ticker").
		Where("s.sector = ?", sector).
		Scan(&stocks).Error
	if err != nil {
		return nil, err
	}
	return dedupByTicker(stocks), nil
}

// GetAllSectors returns the distinct sectors observed across laws and the
// stock catalog.
func (r *postgresLawRepository) GetAllSectors(ctx context.Context) ([]string, error) {
	var sectors []string
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT sector FROM laws UNION SELECT DISTINCT sector FROM stocks ORDER BY sector`).
		Scan(&sectors).Error
	if err != nil {
		return nil, err
	}
	return sectors, nil
}

// CalculateAnalytics recomputes aggregate metrics from the full law set.
func (r *postgresLawRepository) CalculateAnalytics(ctx context.Context) (*dto.Analytics, error) {
	laws, err := r.GetAllLaws(ctx)
	if err != nil {
		return nil, err
	}
	return computeAnalytics(laws), nil
}

// GetHistory returns the most recent audit entries, newest first.
func (r *postgresLawRepository) GetHistory(ctx context.Context) ([]entity.UpdateHistory, error) {
	var entries []entity.UpdateHistory
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(historyLimit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
