package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// BalanceSheetSnapshotModel represents the balance_sheet_snapshots table in
// the database.
type BalanceSheetSnapshotModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FinancialYear string    `gorm:"type:varchar(9);not null;uniqueIndex"`
	Report        []byte    `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the BalanceSheetSnapshotModel.
func (BalanceSheetSnapshotModel) TableName() string {
	return "balance_sheet_snapshots"
}

// ToEntity converts a BalanceSheetSnapshotModel to a domain entity.
func (m *BalanceSheetSnapshotModel) ToEntity() *entity.BalanceSheetSnapshot {
	return &entity.BalanceSheetSnapshot{
		ID:            m.ID,
		FinancialYear: m.FinancialYear,
		Report:        m.Report,
		CreatedAt:     m.CreatedAt,
	}
}

// BalanceSheetSnapshotFromEntity creates a BalanceSheetSnapshotModel from a
// domain entity.
func BalanceSheetSnapshotFromEntity(snapshot *entity.BalanceSheetSnapshot) *BalanceSheetSnapshotModel {
	return &BalanceSheetSnapshotModel{
		ID:            snapshot.ID,
		FinancialYear: snapshot.FinancialYear,
		Report:        snapshot.Report,
		CreatedAt:     snapshot.CreatedAt,
	}
}
