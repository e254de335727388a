package model

import (
	"time"

	"gorm.io/datatypes"
)

// Record is the relational mirror of a domain record. The key/value store
// remains the source of truth; this table only backs listing.
type Record struct {
	Id        string         `gorm:"type:varchar(64);primaryKey"`
	Domain    string         `gorm:"type:varchar(32);not null;index:idx_records_domain_created,priority:1"`
	Status    string         `gorm:"type:varchar(32);not null"`
	Data      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"not null;index:idx_records_domain_created,priority:2"`
}

func (Record) TableName() string {
	return "records"
}
