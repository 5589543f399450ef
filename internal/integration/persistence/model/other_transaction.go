package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// OtherTransactionModel represents the other_transactions table in the database.
type OtherTransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null;index"`
	TypeName    string          `gorm:"type:varchar(100);not null;index"`
	Direction   string          `gorm:"type:varchar(10);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:text"`
	PaymentMode string          `gorm:"type:varchar(10);not null;index"`
	BankID      *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the OtherTransactionModel.
func (OtherTransactionModel) TableName() string {
	return "other_transactions"
}

// ToEntity converts an OtherTransactionModel to a domain OtherTransaction entity.
func (m *OtherTransactionModel) ToEntity() *entity.OtherTransaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.OtherTransaction{
		ID:          m.ID,
		Name:        m.Name,
		TypeName:    m.TypeName,
		Direction:   entity.OtherTransactionDirection(m.Direction),
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		PaymentMode: entity.PaymentMode(m.PaymentMode),
		BankID:      m.BankID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// OtherTransactionFromEntity creates an OtherTransactionModel from a domain
// OtherTransaction entity.
func OtherTransactionFromEntity(txn *entity.OtherTransaction) *OtherTransactionModel {
	var deletedAt gorm.DeletedAt
	if txn.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *txn.DeletedAt, Valid: true}
	}

	return &OtherTransactionModel{
		ID:          txn.ID,
		Name:        txn.Name,
		TypeName:    txn.TypeName,
		Direction:   string(txn.Direction),
		Amount:      txn.Amount,
		Date:        txn.Date,
		Description: txn.Description,
		PaymentMode: string(txn.PaymentMode),
		BankID:      txn.BankID,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// OtherTypeModel represents the other_types table in the database.
type OtherTypeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the OtherTypeModel.
func (OtherTypeModel) TableName() string {
	return "other_types"
}

// ToEntity converts an OtherTypeModel to a domain OtherType entity.
func (m *OtherTypeModel) ToEntity() *entity.OtherType {
	return &entity.OtherType{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// OtherTypeFromEntity creates an OtherTypeModel from a domain OtherType entity.
func OtherTypeFromEntity(otherType *entity.OtherType) *OtherTypeModel {
	return &OtherTypeModel{
		ID:        otherType.ID,
		Name:      otherType.Name,
		CreatedAt: otherType.CreatedAt,
	}
}
