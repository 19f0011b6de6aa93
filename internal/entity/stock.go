package entity

import "time"

// Stock is the global identity of an equity. Company name and sector are
// shared across laws; per-law impact data lives on LawStockRelationship.
type Stock struct {
	Ticker      string    `gorm:"primaryKey" json:"ticker"`
	CompanyName string    `gorm:"not null" json:"company_name"`
	Sector      string    `gorm:"not null" json:"sector"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Stock model.
func (Stock) TableName() string {
	return "stocks"
}

// LawStockRelationship links a law to a stock with per-pair impact data.
type LawStockRelationship struct {
	LawID                 string    `gorm:"primaryKey" json:"law_id"`
	StockTicker           string    `gorm:"primaryKey" json:"stock_ticker"`
	ImpactScore           float64   `gorm:"not null" json:"impact_score"`
	CorrelationConfidence string    `gorm:"not null" json:"correlation_confidence"`
	Notes                 string    `json:"notes"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the LawStockRelationship model.
func (LawStockRelationship) TableName() string {
	return "law_stock_relationships"
}

// StockImpacted is the denormalized per-(law, ticker) view exposed by the
// persistence contract: stock identity joined with relationship data.
type StockImpacted struct {
	Ticker                string  `json:"ticker"`
	CompanyName           string  `json:"company_name"`
	Sector                string  `json:"sector"`
	ImpactScore           float64 `json:"impact_score"`
	CorrelationConfidence string  `json:"correlation_confidence"`
	Notes                 string  `json:"notes"`
}
