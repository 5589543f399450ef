package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CashEntryModel represents the cash_entries table in the database.
type CashEntryModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	OpeningDate    time.Time       `gorm:"type:date;not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CashEntryModel.
func (CashEntryModel) TableName() string {
	return "cash_entries"
}

// ToEntity converts a CashEntryModel to a domain CashEntry entity.
func (m *CashEntryModel) ToEntity() *entity.CashEntry {
	return &entity.CashEntry{
		ID:             m.ID,
		OpeningBalance: m.OpeningBalance,
		OpeningDate:    m.OpeningDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// CashEntryFromEntity creates a CashEntryModel from a domain CashEntry entity.
func CashEntryFromEntity(entry *entity.CashEntry) *CashEntryModel {
	return &CashEntryModel{
		ID:             entry.ID,
		OpeningBalance: entry.OpeningBalance,
		OpeningDate:    entry.OpeningDate,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
}
