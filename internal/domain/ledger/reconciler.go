package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// Reconcile builds a chronological statement from normalized transactions.
//
// Opening-balance transactions are partitioned out of the list first; their
// signed amounts are added to the supplied opening balance. The remaining
// transactions are stable-sorted by date, transactions strictly before from
// are folded into the effective opening balance, and the rows inside the
// inclusive [from, to] window are walked with a running balance. Either bound
// may be nil, meaning unbounded on that side.
func Reconcile(txns []Transaction, openingBalance decimal.Decimal, from, to *time.Time) (*Statement, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDateRange,
			fmt.Sprintf("from_date %s is after to_date %s", from.Format("2006-01-02"), to.Format("2006-01-02")),
			domainerror.ErrInvalidDateRange,
		)
	}

	opening := openingBalance
	activity := make([]Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.Type == RecordTypeOpeningBalance {
			opening = opening.Add(txn.SignedAmount())
			continue
		}
		activity = append(activity, txn)
	}

	// Stable sort keeps same-day transactions in source order.
	sort.SliceStable(activity, func(i, j int) bool {
		return activity[i].Date.Before(activity[j].Date)
	})

	effectiveOpening := opening
	rows := make([]StatementRow, 0, len(activity))
	totalCredit := decimal.Zero
	totalDebit := decimal.Zero
	balance := opening

	for _, txn := range activity {
		if from != nil && txn.Date.Before(*from) {
			effectiveOpening = effectiveOpening.Add(txn.SignedAmount())
			balance = balance.Add(txn.SignedAmount())
			continue
		}
		if to != nil && txn.Date.After(*to) {
			continue
		}

		row := StatementRow{
			Date:        txn.Date,
			Type:        txn.Type,
			Details:     txn.Details,
			Description: txn.Description,
			Credit:      decimal.Zero,
			Debit:       decimal.Zero,
		}
		if txn.Direction == DirectionCredit {
			row.Credit = txn.Amount
			totalCredit = totalCredit.Add(txn.Amount)
		} else {
			row.Debit = txn.Amount
			totalDebit = totalDebit.Add(txn.Amount)
		}
		balance = balance.Add(txn.SignedAmount())
		row.Balance = balance
		rows = append(rows, row)
	}

	return &Statement{
		OpeningBalance: effectiveOpening,
		Rows:           rows,
		TotalCredit:    totalCredit,
		TotalDebit:     totalDebit,
		ClosingBalance: effectiveOpening.Add(totalCredit).Sub(totalDebit),
	}, nil
}
