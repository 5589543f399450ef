package dto

import (
	"time"

	"github.com/ledgerbook/backend/internal/application/usecase/invoice"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CalculateInvoiceRequest represents the request body for a dry-run invoice
// calculation.
type CalculateInvoiceRequest struct {
	BaseAmount   string  `json:"base_amount" binding:"required"`
	Country      string  `json:"country,omitempty"`
	State        string  `json:"state,omitempty"`
	ExchangeRate *string `json:"exchange_rate,omitempty"`
	InvoiceDate  string  `json:"invoice_date,omitempty"`
}

// CreateInvoiceRequest represents the request body for invoice creation.
type CreateInvoiceRequest struct {
	InvoiceDate  string  `json:"invoice_date,omitempty"`
	BuyerName    string  `json:"buyer_name" binding:"required,min=1,max=255"`
	BuyerAddress string  `json:"buyer_address,omitempty"`
	BuyerGSTIN   string  `json:"buyer_gstin,omitempty"`
	BuyerState   string  `json:"buyer_state,omitempty"`
	BuyerCountry string  `json:"buyer_country,omitempty"`
	BaseAmount   string  `json:"base_amount" binding:"required"`
	ExchangeRate *string `json:"exchange_rate,omitempty"`
}

// UpdateInvoiceRequest represents the request body for invoice update.
type UpdateInvoiceRequest struct {
	InvoiceDate  string  `json:"invoice_date,omitempty"`
	BuyerName    string  `json:"buyer_name" binding:"required,min=1,max=255"`
	BuyerAddress string  `json:"buyer_address,omitempty"`
	BuyerGSTIN   string  `json:"buyer_gstin,omitempty"`
	BuyerState   string  `json:"buyer_state,omitempty"`
	BuyerCountry string  `json:"buyer_country,omitempty"`
	BaseAmount   string  `json:"base_amount" binding:"required"`
	ExchangeRate *string `json:"exchange_rate,omitempty"`
	Archived     bool    `json:"archived,omitempty"`
}

// InvoiceResponse represents a single invoice in API responses.
type InvoiceResponse struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	FinancialYear string    `json:"financial_year"`
	InvoiceDate   string    `json:"invoice_date"`
	BuyerName     string    `json:"buyer_name"`
	BuyerAddress  string    `json:"buyer_address,omitempty"`
	BuyerGSTIN    string    `json:"buyer_gstin,omitempty"`
	BuyerState    string    `json:"buyer_state,omitempty"`
	BuyerCountry  string    `json:"buyer_country"`
	BaseAmount    string    `json:"base_amount"`
	CGST          string    `json:"cgst"`
	SGST          string    `json:"sgst"`
	IGST          string    `json:"igst"`
	TotalAmount   string    `json:"total_amount"`
	IsExport      bool      `json:"is_export"`
	ExchangeRate  *string   `json:"exchange_rate,omitempty"`
	INREquivalent *string   `json:"inr_equivalent,omitempty"`
	Archived      bool      `json:"archived"`
	Deleted       bool      `json:"deleted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CalculateInvoiceResponse represents the calculated invoice values.
type CalculateInvoiceResponse struct {
	InvoiceNumber string  `json:"invoice_number"`
	FinancialYear string  `json:"financial_year"`
	BaseAmount    string  `json:"base_amount"`
	CGST          string  `json:"cgst"`
	SGST          string  `json:"sgst"`
	IGST          string  `json:"igst"`
	TaxTotal      string  `json:"tax_total"`
	TotalAmount   string  `json:"total_amount"`
	IsExport      bool    `json:"is_export"`
	INREquivalent *string `json:"inr_equivalent,omitempty"`
}

// InvoiceListResponse represents the response for listing invoices.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToInvoiceResponse converts an Invoice entity to an InvoiceResponse DTO.
func ToInvoiceResponse(inv *entity.Invoice) InvoiceResponse {
	response := InvoiceResponse{
		ID:            inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		FinancialYear: inv.FinancialYear,
		InvoiceDate:   inv.InvoiceDate.Format("2006-01-02"),
		BuyerName:     inv.BuyerName,
		BuyerAddress:  inv.BuyerAddress,
		BuyerGSTIN:    inv.BuyerGSTIN,
		BuyerState:    inv.BuyerState,
		BuyerCountry:  inv.BuyerCountry,
		BaseAmount:    inv.BaseAmount.StringFixed(2),
		CGST:          inv.CGST.StringFixed(2),
		SGST:          inv.SGST.StringFixed(2),
		IGST:          inv.IGST.StringFixed(2),
		TotalAmount:   inv.TotalAmount.StringFixed(2),
		IsExport:      inv.IsExport,
		Archived:      inv.Archived,
		Deleted:       inv.DeletedAt != nil,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
	if inv.ExchangeRate != nil {
		rate := inv.ExchangeRate.String()
		response.ExchangeRate = &rate
	}
	if inv.INREquivalent != nil {
		equivalent := inv.INREquivalent.StringFixed(2)
		response.INREquivalent = &equivalent
	}
	return response
}

// ToInvoiceListResponse converts a ListInvoicesOutput to an InvoiceListResponse DTO.
func ToInvoiceListResponse(output *invoice.ListInvoicesOutput) InvoiceListResponse {
	response := InvoiceListResponse{Invoices: make([]InvoiceResponse, 0, len(output.Invoices))}
	for _, inv := range output.Invoices {
		response.Invoices = append(response.Invoices, ToInvoiceResponse(inv))
	}
	return response
}

// ToCalculateInvoiceResponse converts a CalculateInvoiceOutput to its DTO.
func ToCalculateInvoiceResponse(output *invoice.CalculateInvoiceOutput) CalculateInvoiceResponse {
	response := CalculateInvoiceResponse{
		InvoiceNumber: output.InvoiceNumber,
		FinancialYear: output.FinancialYear,
		BaseAmount:    output.BaseAmount.StringFixed(2),
		CGST:          output.CGST.StringFixed(2),
		SGST:          output.SGST.StringFixed(2),
		IGST:          output.IGST.StringFixed(2),
		TaxTotal:      output.TaxTotal.StringFixed(2),
		TotalAmount:   output.TotalAmount.StringFixed(2),
		IsExport:      output.IsExport,
	}
	if output.INREquivalent != nil {
		equivalent := output.INREquivalent.StringFixed(2)
		response.INREquivalent = &equivalent
	}
	return response
}
