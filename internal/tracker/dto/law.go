package dto

import "time"

// DocumentDTO carries an uploaded document's provenance in API payloads.
type DocumentDTO struct {
	Filename    string    `json:"filename"`
	Content     string    `json:"content"`
	ContentType string    `json:"contentType"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// StockImpactedDTO represents a law-to-stock relationship in API payloads.
type StockImpactedDTO struct {
	Ticker                string  `json:"ticker"`
	CompanyName           string  `json:"company_name"`
	Sector                string  `json:"sector"`
	ImpactScore           float64 `json:"impact_score"`
	CorrelationConfidence string  `json:"correlation_confidence"`
	Notes                 string  `json:"notes"`
}

// CreateLawRequest is the DTO for creating a new law.
type CreateLawRequest struct {
	LawID          string             `json:"lawId"`
	Jurisdiction   string             `json:"jurisdiction"`
	Status         string             `json:"status"`
	Sector         string             `json:"sector"`
	Impact         int                `json:"impact"`
	Confidence     string             `json:"confidence"`
	Published      string             `json:"published"` // YYYY-MM-DD
	Document       *DocumentDTO       `json:"document,omitempty"`
	StocksImpacted []StockImpactedDTO `json:"stocks_impacted"`
}

// UpdateLawRequest is the DTO for partially updating a law. Only non-nil
// fields are applied.
type UpdateLawRequest struct {
	Jurisdiction *string      `json:"jurisdiction,omitempty"`
	Status       *string      `json:"status,omitempty"`
	Sector       *string      `json:"sector,omitempty"`
	Impact       *int         `json:"impact,omitempty"`
	Confidence   *string      `json:"confidence,omitempty"`
	Published    *string      `json:"published,omitempty"` // YYYY-MM-DD
	Document     *DocumentDTO `json:"document,omitempty"`
}

// UpdateStockRequest is the DTO for partially updating a stock relationship.
type UpdateStockRequest struct {
	CompanyName           *string  `json:"company_name,omitempty"`
	ImpactScore           *float64 `json:"impact_score,omitempty"`
	CorrelationConfidence *string  `json:"correlation_confidence,omitempty"`
	Notes                 *string  `json:"notes,omitempty"`
}

// LawResponse is the DTO for API responses containing law details.
type LawResponse struct {
	LawID          string             `json:"lawId"`
	Jurisdiction   string             `json:"jurisdiction"`
	Status         string             `json:"status"`
	Sector         string             `json:"sector"`
	Impact         int                `json:"impact"`
	Confidence     string             `json:"confidence"`
	Published      string             `json:"published"`
	Affected       int                `json:"affected"`
	Document       *DocumentDTO       `json:"document,omitempty"`
	StocksImpacted []StockImpactedDTO `json:"stocks_impacted"`
}

// UploadDocumentResponse is returned by the ingestion endpoint.
type UploadDocumentResponse struct {
	Success bool              `json:"success"`
	LawID   string            `json:"lawId"`
	Law     *LawResponse      `json:"createdLaw"`
	Pages   int               `json:"pages,omitempty"`
	Fields  *ExtractedLawData `json:"extracted,omitempty"`
}
