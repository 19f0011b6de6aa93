package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang-law-tracker/internal/entity"
	"golang-law-tracker/internal/tracker/dto"
	"golang-law-tracker/pkg/logger"
)

// lawSnapshot is the on-disk layout of the law collection.
type lawSnapshot struct {
	Data map[string]*entity.Law `json:"DATA"`
}

// historySnapshot is the on-disk layout of the audit log.
type historySnapshot struct {
	History []entity.UpdateHistory `json:"history"`
}

// fileLawRepository is the local document-store backend: one JSON snapshot
// for the law collection and one for the history log, each read-modify-
// written whole per operation. A mutex serializes writers within the process;
// there is no cross-process write protocol.
type fileLawRepository struct {
	dbPath      string
	historyPath string
	mu          sync.Mutex
	logger      *logger.Logger
}

// NewFileLawRepository creates a JSON-file-backed law repository rooted at
// dataDir, creating the directory and empty snapshots as needed.
func NewFileLawRepository(dataDir string, log *logger.Logger) (LawRepository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	r := &fileLawRepository{
		dbPath:      filepath.Join(dataDir, "database.json"),
		historyPath: filepath.Join(dataDir, "history.json"),
		logger:      log,
	}

	if _, err := os.Stat(r.dbPath); os.IsNotExist(err) {
		if err := r.writeSnapshot(&lawSnapshot{Data: map[string]*entity.Law{}}); err != nil {
			return nil, err
		}
	}
	if _, err := os.Stat(r.historyPath); os.IsNotExist(err) {
		if err := r.writeHistory(&historySnapshot{History: []entity.UpdateHistory{}}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *fileLawRepository) readSnapshot() (*lawSnapshot, error) {
	data, err := os.ReadFile(r.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read law snapshot: %w", err)
	}

	var snapshot lawSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode law snapshot: %w", err)
	}
	if snapshot.Data == nil {
		snapshot.Data = map[string]*entity.Law{}
	}
	for id, law := range snapshot.Data {
		law.ID = id
	}
	return &snapshot, nil
}

func (r *fileLawRepository) writeSnapshot(snapshot *lawSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode law snapshot: %w", err)
	}
	if err := os.WriteFile(r.dbPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write law snapshot: %w", err)
	}
	return nil
}

func (r *fileLawRepository) readHistorySnapshot() (*historySnapshot, error) {
	data, err := os.ReadFile(r.historyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read history snapshot: %w", err)
	}

	var snapshot historySnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode history snapshot: %w", err)
	}
	return &snapshot, nil
}

func (r *fileLawRepository) writeHistory(snapshot *historySnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history snapshot: %w", err)
	}
	if err := os.WriteFile(r.historyPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history snapshot: %w", err)
	}
	return nil
}

func (r *fileLawRepository) appendHistory(lawID string, changes []string, notes string) {
	snapshot, err := r.readHistorySnapshot()
	if err != nil {
		r.logger.Error("Failed to read history", logger.ErrorField(err))
		return
	}

	snapshot.History = append(snapshot.History, entity.UpdateHistory{
		LawID:     lawID,
		Changes:   changes,
		Notes:     notes,
		Timestamp: time.Now().UTC(),
	})

	if err := r.writeHistory(snapshot); err != nil {
		r.logger.Error("Failed to write history", logger.ErrorField(err))
	}
}

// GetAllLaws returns the full law collection keyed by identifier.
func (r *fileLawRepository) GetAllLaws(ctx context.Context) (map[string]*entity.Law, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.readSnapshot()
	if err != nil {
		return nil, err
	}
	return snapshot.Data, nil
}

// GetLawByID returns a law or ErrLawNotFound.
func (r *fileLawRepository) GetLawByID(ctx context.Context, id string) (*entity.Law, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.readSnapshot()
	if err != nil {
		return nil, err
	}

	law, ok := snapshot.Data[id]
	if !ok {
		return nil, ErrLawNotFound
	}
	return law, nil
}

// CreateLaw validates and stores a new law. Duplicate identifiers are
// rejected with ErrLawAlreadyExists.
func (r *fileLawRepository) CreateLaw(ctx context.Context, id string, law *entity.Law) (*entity.Law, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.readSnapshot()
	if err != nil {
		return nil, err
	}

	if _, exists := snapshot.Data[id]; exists {
		return nil, ErrLawAlreadyExists
	}

	if err := validateLaw(law); err != nil {
		return nil, err
	}

	law.ID = id
	now := time.Now().UTC()
	law.CreatedAt = now
	law.UpdatedAt = now
	snapshot.Data[id] = law

	if err := r.writeSnapshot(snapshot); err != nil {
		return nil, err
	}

	r.appendHistory(id, []string{"Created new law"}, fmt.Sprintf("Created law %s in %s sector", id, law.Sector))
	return law, nil
}

// UpdateLaw applies only the provided fields and re-validates invariants.
func (r *fileLawRepository) UpdateLaw(ctx context.Context, id string, updates *LawUpdates) (*entity.Law, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.readSnapshot()
	if err != nil {
		return nil, err
	}

	law, ok := snapshot.Data[id]
	if !ok {
		return nil, ErrLawNotFound
	}

	if updates.Jurisdiction != nil {
		law.Jurisdiction = *updates.Jurisdiction
	}
	if updates.Status != nil {
		law.Status = *updates.Status
	}
	if updates.Sector != nil {
		law.Sector = *updates.Sector
	}
	if updates.Impact != nil {
		law.Impact = *updates.Impact
	}
	if updates.Confidence != nil {
		law.Confidence = *updates.Confidence
	}
	if updates.Published != nil {
		law.Published = *updates.Published
	}
	if updates.Document != nil {
		law.Document = updates.Document
	}

	if err := validateLaw(law); err != nil {
		return nil, err
	}

	law.UpdatedAt = time.Now().UTC()
	if err := r.writeSnapshot(snapshot); err != nil {
		return nil, err
	}

	r.appendHistory(id, updates.Fields(), fmt.Sprintf("Updated law %s", id))
	return law, nil
}

// DeleteLaw removes a law and, with it, all its stock relationships.
func (r *fileLawRepository) DeleteLaw(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.readSnapshot()
	if err != nil {
		return err
	}

	if _, ok := snapshot.Data[id]; !ok {
		return ErrLawNotFound
	}

	delete(snapshot.Data, id)
	if err := r.writeSnapshot(snapshot); err != nil {
		return err
	}

	r.appendHistory(id, []string{"Deleted law"}, fmt.Sprintf("Deleted law %s", id))
	return nil
}

// AddStockToLaw upserts a stock relationship, forcing the stock's sector to
// the law's sector and recomputing the law's derived fields.
func (r *fileLawRepository) AddStockToLaw(ctx context.Context, lawID string, stock *entity.StockImpacted) (*entity.Law, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.readSnapshot()
	if err != nil {
		return nil, err
	}

	law, ok := snapshot.Data[lawID]
	if !ok {
		return nil, ErrLawNotFound
	}

	if stock.ImpactScore < 0 || stock.ImpactScore > 10 {
		return nil, &ValidationError{
			Message: fmt.Sprintf("stock %s impact score must be between 0 and 10", stock.Ticker),
		}
	}

	stock.Sector = law.Sector

	replaced := false
	for i := range law.StocksImpacted {
		if law.StocksImpacted[i].Ticker == stock.Ticker {
			law.StocksImpacted[i] = *stock
			replaced = true
			break
		}
	}
	if !replaced {
		law.StocksImpacted = append(law.StocksImpacted, *stock)
	}

	recalculateDerived(law)
	law.UpdatedAt = time.Now().UTC()

	if err := r.writeSnapshot(snapshot); err != nil {
		return nil, err
	}

	r.appendHistory(lawID,
		[]string{fmt.Sprintf("Added stock %s", stock.Ticker)},
		fmt.Sprintf("Added %s to law %s", stock.CompanyName, lawID))
	return law, nil
}

// UpdateStockInLaw applies only the provided fields to an existing
// relationship and recomputes the law's derived fields.
func (r *fileLawRepository) UpdateStockInLaw(ctx context.Context, lawID, ticker string, updates *StockUpdates) (*entity.Law, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.readSnapshot()
	if err != nil {
		return nil, err
	}

	law, ok := snapshot.Data[lawID]
	if !ok {
		return nil, ErrLawNotFound
	}

	index := -1
	for i := range law.StocksImpacted {
		if law.StocksImpacted[i].Ticker == ticker {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrStockNotFound
	}

	stock := &law.StocksImpacted[index]
	if updates.CompanyName != nil {
		stock.CompanyName = *updates.CompanyName
	}
	if updates.ImpactScore != nil {
		stock.ImpactScore = *updates.ImpactScore
	}
	if updates.CorrelationConfidence != nil {
		stock.CorrelationConfidence = *updates.CorrelationConfidence
	}
	if updates.Notes != nil {
		stock.Notes = *updates.Notes
	}

	if stock.ImpactScore < 0 || stock.ImpactScore > 10 {
		return nil, &ValidationError{
			Message: fmt.Sprintf("stock %s impact score must be between 0 and 10", ticker),
		}
	}

	recalculateDerived(law)
	law.UpdatedAt = time.Now().UTC()

	if err := r.writeSnapshot(snapshot); err != nil {
		return nil, err
	}

	r.appendHistory(lawID,
		[]string{fmt.Sprintf("Updated stock %s", ticker)},
		fmt.Sprintf("Updated stock %s in law %s", ticker, lawID))
	return law, nil
}

// RemoveStockFromLaw removes a relationship and recomputes derived fields.
// Removing an absent ticker is a no-op, not an error.
func (r *fileLawRepository) RemoveStockFromLaw(ctx context.Context, lawID, ticker string) (*entity.Law, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.readSnapshot()
	if err != nil {
		return nil, err
	}

	law, ok := snapshot.Data[lawID]
	if !ok {
		return nil, ErrLawNotFound
	}

	filtered := law.StocksImpacted[:0]
	for _, stock := range law.StocksImpacted {
		if stock.Ticker != ticker {
			filtered = append(filtered, stock)
		}
	}
	law.StocksImpacted = filtered

	recalculateDerived(law)
	law.UpdatedAt = time.Now().UTC()

	if err := r.writeSnapshot(snapshot); err != nil {
		return nil, err
	}

	r.appendHistory(lawID,
		[]string{fmt.Sprintf("Removed stock %s", ticker)},
		fmt.Sprintf("Removed stock %s from law %s", ticker, lawID))
	return law, nil
}

// GetStocksBySector returns the distinct stocks linked to laws of the given
// sector, one entry per ticker.
func (r *fileLawRepository) GetStocksBySector(ctx context.Context, sector string) ([]entity.StockImpacted, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.readSnapshot()
	if err != nil {
		return nil, err
	}

	var stocks []entity.StockImpacted
	for _, law := range snapshot.Data {
		if law.Sector == sector {
			stocks = append(stocks, law.StocksImpacted...)
		}
	}
	return dedupByTicker(stocks), nil
}

// GetAllSectors returns the distinct sector values observed across laws.
func (r *fileLawRepository) GetAllSectors(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.readSnapshot()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var sectors []string
	for _, law := range snapshot.Data {
		if _, ok := seen[law.Sector]; !ok {
			seen[law.Sector] = struct{}{}
			sectors = append(sectors, law.Sector)
		}
	}
	sort.Strings(sectors)
	return sectors, nil
}

// CalculateAnalytics recomputes aggregate metrics from the full snapshot.
func (r *fileLawRepository) CalculateAnalytics(ctx context.Context) (*dto.Analytics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.readSnapshot()
	if err != nil {
		return nil, err
	}
	return computeAnalytics(snapshot.Data), nil
}

// GetHistory returns the most recent audit entries, newest first.
func (r *fileLawRepository) GetHistory(ctx context.Context) ([]entity.UpdateHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.readHistorySnapshot()
	if err != nil {
		return nil, err
	}

	entries := snapshot.History
	sort.Slice(entries, func(i, j int) bool { return entries[i].Timestamp.After(entries[j].Timestamp) })
	if len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}
	return entries, nil
}
