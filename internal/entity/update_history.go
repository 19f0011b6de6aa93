package entity

import (
	"time"

	"github.com/lib/pq"
)

// UpdateHistory is an append-only audit record. Entries are never mutated or
// deleted; reads are capped to the most recent 100.
type UpdateHistory struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	LawID     string         `gorm:"not null" json:"lawId"`
	Changes   pq.StringArray `gorm:"type:text[];not null" json:"changes"`
	Notes     string         `json:"notes"`
	Timestamp time.Time      `gorm:"not null" json:"timestamp"`
}

// TableName specifies the table name for the UpdateHistory model.
func (UpdateHistory) TableName() string {
	return "update_history"
}
