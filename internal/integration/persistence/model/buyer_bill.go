package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// BuyerBillModel represents the buyer_bills table in the database.
type BuyerBillModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuyerName   string          `gorm:"type:varchar(255);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:text"`
	PaymentMode string          `gorm:"type:varchar(10);not null;index"`
	BankID      *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the BuyerBillModel.
func (BuyerBillModel) TableName() string {
	return "buyer_bills"
}

// ToEntity converts a BuyerBillModel to a domain BuyerBill entity.
func (m *BuyerBillModel) ToEntity() *entity.BuyerBill {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.BuyerBill{
		ID:          m.ID,
		BuyerName:   m.BuyerName,
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

// BuyerBillFromEntity creates a BuyerBillModel from a domain BuyerBill entity.
func BuyerBillFromEntity(bill *entity.BuyerBill) *BuyerBillModel {
	var deletedAt gorm.DeletedAt
	if bill.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *bill.DeletedAt, Valid: true}
	}

	return &BuyerBillModel{
		ID:          bill.ID,
		BuyerName:   bill.BuyerName,
		Amount:      bill.Amount,
		Date:        bill.Date,
		Description: bill.Description,
		PaymentMode: string(bill.PaymentMode),
		BankID:      bill.BankID,
		CreatedAt:   bill.CreatedAt,
		UpdatedAt:   bill.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
