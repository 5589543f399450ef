package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// InvoiceModel represents the invoices table in the database.
type InvoiceModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string           `gorm:"type:varchar(20);not null;index"`
	FinancialYear string           `gorm:"type:varchar(9);not null;index"`
	InvoiceDate   time.Time        `gorm:"type:date;not null;index"`
	BuyerName     string           `gorm:"type:varchar(255);not null;index"`
	BuyerAddress  string           `gorm:"type:text"`
	BuyerGSTIN    string           `gorm:"type:varchar(20)"`
	BuyerState    string           `gorm:"type:varchar(100)"`
	BuyerCountry  string           `gorm:"type:varchar(100);not null"`
	BaseAmount    decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	CGST          decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	SGST          decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	IGST          decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	TotalAmount   decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	IsExport      bool             `gorm:"not null;default:false"`
	ExchangeRate  *decimal.Decimal `gorm:"type:decimal(15,4)"`
	INREquivalent *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Archived      bool             `gorm:"not null;default:false"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
	DeletedAt     gorm.DeletedAt   `gorm:"index"`
}

// TableName returns the table name for the InvoiceModel.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToEntity converts an InvoiceModel to a domain Invoice entity.
func (m *InvoiceModel) ToEntity() *entity.Invoice {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Invoice{
		ID:            m.ID,
		InvoiceNumber: m.InvoiceNumber,
		FinancialYear: m.FinancialYear,
		InvoiceDate:   m.InvoiceDate,
		BuyerName:     m.BuyerName,
		BuyerAddress:  m.BuyerAddress,
		BuyerGSTIN:    m.BuyerGSTIN,
		BuyerState:    m.BuyerState,
		BuyerCountry:  m.BuyerCountry,
		BaseAmount:    m.BaseAmount,
		CGST:          m.CGST,
		SGST:          m.SGST,
		IGST:          m.IGST,
		TotalAmount:   m.TotalAmount,
		IsExport:      m.IsExport,
		ExchangeRate:  m.ExchangeRate,
		INREquivalent: m.INREquivalent,
		Archived:      m.Archived,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// InvoiceFromEntity creates an InvoiceModel from a domain Invoice entity.
func InvoiceFromEntity(invoice *entity.Invoice) *InvoiceModel {
	var deletedAt gorm.DeletedAt
	if invoice.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *invoice.DeletedAt, Valid: true}
	}

	return &InvoiceModel{
		ID:            invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		FinancialYear: invoice.FinancialYear,
		InvoiceDate:   invoice.InvoiceDate,
		BuyerName:     invoice.BuyerName,
		BuyerAddress:  invoice.BuyerAddress,
		BuyerGSTIN:    invoice.BuyerGSTIN,
		BuyerState:    invoice.BuyerState,
		BuyerCountry:  invoice.BuyerCountry,
		BaseAmount:    invoice.BaseAmount,
		CGST:          invoice.CGST,
		SGST:          invoice.SGST,
		IGST:          invoice.IGST,
		TotalAmount:   invoice.TotalAmount,
		IsExport:      invoice.IsExport,
		ExchangeRate:  invoice.ExchangeRate,
		INREquivalent: invoice.INREquivalent,
		Archived:      invoice.Archived,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
