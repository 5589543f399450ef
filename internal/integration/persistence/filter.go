// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/application/adapter"
)

// applyRecordFilter adds the shared record-filter clauses to a query. The From
// bound is inclusive, To exclusive.
func applyRecordFilter(query *gorm.DB, filter adapter.RecordFilter) *gorm.DB {
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date < ?", *filter.To)
	}
	if filter.PaymentMode != nil {
		query = query.Where("payment_mode = ?", string(*filter.PaymentMode))
	}
	if filter.BankID != nil {
		query = query.Where("bank_id = ?", *filter.BankID)
	}
	return query
}
