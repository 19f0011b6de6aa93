package service

import (
	"context"
	"fmt"
	"time"

	"golang-law-tracker/internal/entity"
	"golang-law-tracker/internal/tracker/dto"
	"golang-law-tracker/internal/tracker/repository"
	"golang-law-tracker/pkg/logger"
)

// LawService exposes the law CRUD, stock-relationship, and analytics
// operations to the delivery layer.
type LawService interface {
	GetAllLaws(ctx context.Context) (map[string]*dto.LawResponse, error)
	GetLawByID(ctx context.Context, id string) (*dto.LawResponse, error)
	CreateLaw(ctx context.Context, req *dto.CreateLawRequest) (*dto.LawResponse, error)
	UpdateLaw(ctx context.Context, id string, req *dto.UpdateLawRequest) (*dto.LawResponse, error)
	DeleteLaw(ctx context.Context, id string) error

	AddStockToLaw(ctx context.Context, lawID string, req *dto.StockImpactedDTO) (*dto.LawResponse, error)
	UpdateStockInLaw(ctx context.Context, lawID, ticker string, req *dto.UpdateStockRequest) (*dto.LawResponse, error)
	RemoveStockFromLaw(ctx context.Context, lawID, ticker string) (*dto.LawResponse, error)

	GetStocksBySector(ctx context.Context, sector string) ([]dto.StockImpactedDTO, error)
	GetAllSectors(ctx context.Context) ([]string, error)
	CalculateAnalytics(ctx context.Context) (*dto.Analytics, error)
	GetHistory(ctx context.Context) ([]entity.UpdateHistory, error)
}

type lawService struct {
	lawRepo repository.LawRepository
	logger  *logger.Logger
}

// NewLawService creates a new law service.
func NewLawService(lawRepo repository.LawRepository, log *logger.Logger) LawService {
	return &lawService{
		lawRepo: lawRepo,
		logger:  log,
	}
}

func (s *lawService) GetAllLaws(ctx context.Context) (map[string]*dto.LawResponse, error) {
	laws, err := s.lawRepo.GetAllLaws(ctx)
	if err != nil {
		return nil, err
	}

	responses := make(map[string]*dto.LawResponse, len(laws))
	for id, law := range laws {
		responses[id] = mapLawResponse(id, law)
	}
	return responses, nil
}

func (s *lawService) GetLawByID(ctx context.Context, id string) (*dto.LawResponse, error) {
	law, err := s.lawRepo.GetLawByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapLawResponse(id, law), nil
}

func (s *lawService) CreateLaw(ctx context.Context, req *dto.CreateLawRequest) (*dto.LawResponse, error) {
	if req.LawID == "" {
		return nil, &repository.ValidationError{Message: "lawId is required"}
	}

	published, err := parsePublished(req.Published)
	if err != nil {
		return nil, err
	}

	law := &entity.Law{
		Jurisdiction: req.Jurisdiction,
		Status:       req.Status,
		Sector:       req.Sector,
		Impact:       req.Impact,
		Confidence:   req.Confidence,
		Published:    published,
		Document:     mapDocumentEntity(req.Document),
	}
	for _, stock := range req.StocksImpacted {
		law.StocksImpacted = append(law.StocksImpacted, entity.StockImpacted{
			Ticker:                stock.Ticker,
			CompanyName:           stock.CompanyName,
			Sector:                stock.Sector,
			ImpactScore:           stock.ImpactScore,
			CorrelationConfidence: stock.CorrelationConfidence,
			Notes:                 stock.Notes,
		})
	}

	created, err := s.lawRepo.CreateLaw(ctx, req.LawID, law)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Created law",
		logger.StringField("law_id", req.LawID),
		logger.StringField("sector", created.Sector),
	)
	return mapLawResponse(req.LawID, created), nil
}

func (s *lawService) UpdateLaw(ctx context.Context, id string, req *dto.UpdateLawRequest) (*dto.LawResponse, error) {
	updates := &repository.LawUpdates{
		Jurisdiction: req.Jurisdiction,
		Status:       req.Status,
		Sector:       req.Sector,
		Impact:       req.Impact,
		Confidence:   req.Confidence,
		Document:     mapDocumentEntity(req.Document),
	}
	if req.Published != nil {
		published, err := parsePublished(*req.Published)
		if err != nil {
			return nil, err
		}
		updates.Published = &published
	}

	law, err := s.lawRepo.UpdateLaw(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	return mapLawResponse(id, law), nil
}

func (s *lawService) DeleteLaw(ctx context.Context, id string) error {
	if err := s.lawRepo.DeleteLaw(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Deleted law", logger.StringField("law_id", id))
	return nil
}

func (s *lawService) AddStockToLaw(ctx context.Context, lawID string, req *dto.StockImpactedDTO) (*dto.LawResponse, error) {
	if req.Ticker == "" {
		return nil, &repository.ValidationError{Message: "ticker is required"}
	}

	law, err := s.lawRepo.AddStockToLaw(ctx, lawID, &entity.StockImpacted{
		Ticker:                req.Ticker,
		CompanyName:           req.CompanyName,
		Sector:                req.Sector,
		ImpactScore:           req.ImpactScore,
		CorrelationConfidence: req.CorrelationConfidence,
		Notes:                 req.Notes,
	})
	if err != nil {
		return nil, err
	}
	return mapLawResponse(lawID, law), nil
}

func (s *lawService) UpdateStockInLaw(ctx context.Context, lawID, ticker string, req *dto.UpdateStockRequest) (*dto.LawResponse, error) {
	law, err := s.lawRepo.UpdateStockInLaw(ctx, lawID, ticker, &repository.StockUpdates{
		CompanyName:           req.CompanyName,
		ImpactScore:           req.ImpactScore,
		CorrelationConfidence: req.CorrelationConfidence,
		Notes:                 req.Notes,
	})
	if err != nil {
		return nil, err
	}
	return mapLawResponse(lawID, law), nil
}

func (s *lawService) RemoveStockFromLaw(ctx context.Context, lawID, ticker string) (*dto.LawResponse, error) {
	law, err := s.lawRepo.RemoveStockFromLaw(ctx, lawID, ticker)
	if err != nil {
		return nil, err
	}
	return mapLawResponse(lawID, law), nil
}

func (s *lawService) GetStocksBySector(ctx context.Context, sector string) ([]dto.StockImpactedDTO, error) {
	stocks, err := s.lawRepo.GetStocksBySector(ctx, sector)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StockImpactedDTO, 0, len(stocks))
	for _, stock := range stocks {
		responses = append(responses, mapStockDTO(stock))
	}
	return responses, nil
}

func (s *lawService) GetAllSectors(ctx context.Context) ([]string, error) {
	return s.lawRepo.GetAllSectors(ctx)
}

func (s *lawService) CalculateAnalytics(ctx context.Context) (*dto.Analytics, error) {
	return s.lawRepo.CalculateAnalytics(ctx)
}

func (s *lawService) GetHistory(ctx context.Context) ([]entity.UpdateHistory, error) {
	return s.lawRepo.GetHistory(ctx)
}

// parsePublished validates the YYYY-MM-DD wire format for publication dates.
func parsePublished(value string) (time.Time, error) {
	published, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, &repository.ValidationError{
			Message: fmt.Sprintf("published must be in YYYY-MM-DD format, got %q", value),
		}
	}
	return published, nil
}

func mapDocumentEntity(doc *dto.DocumentDTO) *entity.LawDocument {
	if doc == nil {
		return nil
	}
	return &entity.LawDocument{
		Filename:    doc.Filename,
		Content:     doc.Content,
		ContentType: doc.ContentType,
		UploadedAt:  doc.UploadedAt,
	}
}

func mapStockDTO(stock entity.StockImpacted) dto.StockImpactedDTO {
	return dto.StockImpactedDTO{
		Ticker:                stock.Ticker,
		CompanyName:           stock.CompanyName,
		Sector:                stock.Sector,
		ImpactScore:           stock.ImpactScore,
		CorrelationConfidence: stock.CorrelationConfidence,
		Notes:                 stock.Notes,
	}
}

func mapLawResponse(id string, law *entity.Law) *dto.LawResponse {
	resp := &dto.LawResponse{
		LawID:        id,
		Jurisdiction: law.Jurisdiction,
		Status:       law.Status,
		Sector:       law.Sector,
		Impact:       law.Impact,
		Confidence:   law.Confidence,
		Published:    law.Published.Format("2006-01-02"),
		Affected:     law.Affected,
	}
	if law.Document != nil {
		resp.Document = &dto.DocumentDTO{
			Filename:    law.Document.Filename,
			Content:     law.Document.Content,
			ContentType: law.Document.ContentType,
			UploadedAt:  law.Document.UploadedAt,
		}
	}
	resp.StocksImpacted = make([]dto.StockImpactedDTO, 0, len(law.StocksImpacted))
	for _, stock := range law.StocksImpacted {
		resp.StocksImpacted = append(resp.StocksImpacted, mapStockDTO(stock))
	}
	return resp
}
