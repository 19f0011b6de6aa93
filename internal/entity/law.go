package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Law statuses.
const (
	StatusActive  = "Active"
	StatusPending = "Pending"
	StatusExpired = "Expired"
)

// Confidence labels.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// Law is a tracked regulatory instrument and its market-impact metadata.
// Affected and Impact are derived from the stock relationship set: Affected is
// the relationship count and Impact the rounded mean of relationship impact
// scores (0 when the set is empty).
type Law struct {
	ID           string         `gorm:"primaryKey" json:"-"`
	Jurisdiction string         `gorm:"not null" json:"jurisdiction"`
	Status       string         `gorm:"not null" json:"status"`
	Sector       string         `gorm:"not null" json:"sector"`
	Impact       int            `gorm:"not null" json:"impact"`
	Confidence   string         `gorm:"not null" json:"confidence"`
	Published    time.Time      `gorm:"type:date;not null" json:"published"`
	Affected     int            `gorm:"not null" json:"affected"`
	Document     *LawDocument   `gorm:"embedded;embeddedPrefix:document_" json:"document,omitempty"`
	LLMSummary   string         `gorm:"column:llm_summary" json:"llm_summary,omitempty"`
	LLMMetadata  datatypes.JSON `gorm:"column:llm_metadata" json:"llm_metadata,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// StocksImpacted is populated by the repository, not mapped as a column.
	StocksImpacted []StockImpacted `gorm:"-" json:"stocks_impacted"`
}

// TableName specifies the table name for the Law model.
func (Law) TableName() string {
	return "laws"
}

// LawDocument captures the provenance of an uploaded source document.
type LawDocument struct {
	Filename    string    `gorm:"column:filename" json:"filename"`
	Content     string    `gorm:"column:content" json:"content"`
	ContentType string    `gorm:"column:content_type" json:"contentType"`
	UploadedAt  time.Time `gorm:"column:uploaded_at" json:"uploadedAt"`
}
