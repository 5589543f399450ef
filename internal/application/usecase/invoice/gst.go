// Package invoice contains invoice calculation and management use cases.
package invoice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// GST applies to domestic invoices only. Within the home state the tax
// splits evenly between CGST and SGST; across states it is levied as IGST.
const (
	domesticCountry = "India"
	homeState       = "Gujarat"
)

var (
	halfGSTRate = decimal.NewFromFloat(0.09)
	fullGSTRate = decimal.NewFromFloat(0.18)
)

// GSTBreakdown is the tax split for an invoice.
type GSTBreakdown struct {
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	IGST          decimal.Decimal
	TaxTotal      decimal.Decimal
	Total         decimal.Decimal
	IsExport      bool
	INREquivalent *decimal.Decimal // export invoices only
}

// computeGST derives the tax split from the buyer's location. Export
// invoices carry no GST but need an exchange rate for the INR equivalent.
func computeGST(baseAmount decimal.Decimal, country, state string, exchangeRate *decimal.Decimal) (GSTBreakdown, error) {
	if baseAmount.Sign() <= 0 {
		return GSTBreakdown{}, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidInvoiceAmount,
			"base amount must be positive",
			domainerror.ErrInvalidInvoiceAmount,
		)
	}

	country = strings.TrimSpace(country)
	if country == "" {
		country = domesticCountry
	}

	if !strings.EqualFold(country, domesticCountry) {
		if exchangeRate == nil || exchangeRate.Sign() <= 0 {
			return GSTBreakdown{}, domainerror.NewInvoiceError(
				domainerror.ErrCodeMissingExchangeRate,
				"exchange rate is required for export invoices",
				domainerror.ErrMissingExchangeRate,
			)
		}
		inr := baseAmount.Mul(*exchangeRate).Round(2)
		return GSTBreakdown{
			Total:         baseAmount,
			IsExport:      true,
			INREquivalent: &inr,
		}, nil
	}

	if strings.TrimSpace(state) == "" {
		return GSTBreakdown{}, domainerror.NewInvoiceError(
			domainerror.ErrCodeMissingBuyerState,
			"buyer state is required for domestic invoices",
			domainerror.ErrMissingBuyerState,
		)
	}

	breakdown := GSTBreakdown{}
	if strings.EqualFold(strings.TrimSpace(state), homeState) {
		breakdown.CGST = baseAmount.Mul(halfGSTRate).Round(2)
		breakdown.SGST = breakdown.CGST
		breakdown.TaxTotal = breakdown.CGST.Add(breakdown.SGST)
	} else {
		breakdown.IGST = baseAmount.Mul(fullGSTRate).Round(2)
		breakdown.TaxTotal = breakdown.IGST
	}
	breakdown.Total = baseAmount.Add(breakdown.TaxTotal).Round(2)
	return breakdown, nil
}

// formatInvoiceNumber builds the sequential per-year invoice number,
// zero-padded to two digits: "01-2024-2025".
func formatInvoiceNumber(sequence int64, financialYear string) string {
	return fmt.Sprintf("%02d-%s", sequence, financialYear)
}
