package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CompanyBillModel represents the company_bills table in the database.
type CompanyBillModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyName string          `gorm:"type:varchar(255);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:text"`
	PaymentMode string          `gorm:"type:varchar(10);not null;index"`
	BankID      *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the CompanyBillModel.
func (CompanyBillModel) TableName() string {
	return "company_bills"
}

// ToEntity converts a CompanyBillModel to a domain CompanyBill entity.
func (m *CompanyBillModel) ToEntity() *entity.CompanyBill {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.CompanyBill{
		ID:          m.ID,
		CompanyName: m.CompanyName,
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

// CompanyBillFromEntity creates a CompanyBillModel from a domain CompanyBill entity.
func CompanyBillFromEntity(bill *entity.CompanyBill) *CompanyBillModel {
	var deletedAt gorm.DeletedAt
	if bill.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *bill.DeletedAt, Valid: true}
	}

	return &CompanyBillModel{
		ID:          bill.ID,
		CompanyName: bill.CompanyName,
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
