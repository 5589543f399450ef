// Package ledger implements the reconciliation engine: record normalization,
// chronological statement building, balance-sheet aggregation and financial
// year resolution. The package is pure computation and performs no I/O.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates which side of the ledger a transaction falls on.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// RecordType identifies the source table a transaction came from.
type RecordType string

const (
	RecordTypeOpeningBalance   RecordType = "opening_balance"
	RecordTypeCompanyBill      RecordType = "company_bill"
	RecordTypeBuyerBill        RecordType = "buyer_bill"
	RecordTypeSalary           RecordType = "salary"
	RecordTypeOtherTransaction RecordType = "other_transaction"
	RecordTypeInvoice          RecordType = "invoice"
)

// RawRecord is a source record before normalization. Fields mirror the loose
// shapes the source tables use: dates arrive as strings, amounts may be
// non-numeric, and direction may be expressed either as an explicit
// transaction type or as a credit/debit flag pair.
type RawRecord struct {
	SourceID        string
	Type            RecordType
	Date            string
	Amount          string
	Credit          bool
	Debit           bool
	TransactionType string // "credit" or "debit"; takes precedence over the flags when set
	Details         string
	Description     string
	AccountKey      string
}

// Transaction is the canonical normalized form every statement and report
// computation works on.
type Transaction struct {
	SourceID    string
	Type        RecordType
	Date        time.Time
	Amount      decimal.Decimal // always non-negative; Direction carries the sign
	Direction   Direction
	Details     string
	Description string
	AccountKey  string
}

// SignedAmount returns the amount with the direction applied: positive for
// credits, negative for debits.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// StatementRow is one line of a reconciled statement.
type StatementRow struct {
	Date        time.Time
	Type        RecordType
	Details     string
	Description string
	Credit      decimal.Decimal
	Debit       decimal.Decimal
	Balance     decimal.Decimal
}

// Statement is the result of reconciling a set of transactions over an
// optional date window.
type Statement struct {
	OpeningBalance decimal.Decimal // effective opening balance after folding pre-window activity
	Rows           []StatementRow
	TotalCredit    decimal.Decimal
	TotalDebit     decimal.Decimal
	ClosingBalance decimal.Decimal
}
