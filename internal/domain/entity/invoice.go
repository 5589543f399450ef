package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice represents a sales invoice with its GST split. Deleted or archived
// invoices still appear on the balance sheet as unsecured-loan debits.
type Invoice struct {
	ID            uuid.UUID
	InvoiceNumber string // "NN-YYYY-YYYY", sequential per financial year
	FinancialYear string // "YYYY-YYYY"
	InvoiceDate   time.Time
	BuyerName     string
	BuyerAddress  string
	BuyerGSTIN    string
	BuyerState    string
	BuyerCountry  string
	BaseAmount    decimal.Decimal
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	IGST          decimal.Decimal
	TotalAmount   decimal.Decimal
	IsExport      bool
	ExchangeRate  *decimal.Decimal // export invoices only
	INREquivalent *decimal.Decimal
	Archived      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// NewInvoice creates a new Invoice entity.
func NewInvoice(
	invoiceNumber string,
	financialYear string,
	invoiceDate time.Time,
	buyerName, buyerAddress, buyerGSTIN, buyerState, buyerCountry string,
	baseAmount, cgst, sgst, igst, totalAmount decimal.Decimal,
	isExport bool,
	exchangeRate, inrEquivalent *decimal.Decimal,
) *Invoice {
	now := time.Now().UTC()

	return &Invoice{
		ID:            uuid.New(),
		InvoiceNumber: invoiceNumber,
		FinancialYear: financialYear,
		InvoiceDate:   invoiceDate,
		BuyerName:     buyerName,
		BuyerAddress:  buyerAddress,
		BuyerGSTIN:    buyerGSTIN,
		BuyerState:    buyerState,
		BuyerCountry:  buyerCountry,
		BaseAmount:    baseAmount,
		CGST:          cgst,
		SGST:          sgst,
		IGST:          igst,
		TotalAmount:   totalAmount,
		IsExport:      isExport,
		ExchangeRate:  exchangeRate,
		INREquivalent: inrEquivalent,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
