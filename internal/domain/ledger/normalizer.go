package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// Accepted date layouts, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// SkippedRecord describes a record the normalizer rejected. Rejected records
// are reported, never silently dropped.
type SkippedRecord struct {
	SourceID string
	Type     RecordType
	Reason   error
}

// Normalize converts a raw source record into a canonical transaction.
// It returns ErrMalformedRecord for unparseable dates or amounts and
// ErrAmbiguousDirection when the record's direction cannot be determined.
func Normalize(rec RawRecord) (Transaction, error) {
	date, err := parseRecordDate(rec.Date)
	if err != nil {
		return Transaction{}, domainerror.NewLedgerError(
			domainerror.ErrCodeMalformedRecord,
			fmt.Sprintf("record %s has an invalid date %q", rec.SourceID, rec.Date),
			domainerror.ErrMalformedRecord,
		)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rec.Amount))
	if err != nil {
		return Transaction{}, domainerror.NewLedgerError(
			domainerror.ErrCodeMalformedRecord,
			fmt.Sprintf("record %s has a non-numeric amount %q", rec.SourceID, rec.Amount),
			domainerror.ErrMalformedRecord,
		)
	}

	direction, err := resolveDirection(rec)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		SourceID:    rec.SourceID,
		Type:        rec.Type,
		Date:        date,
		Amount:      amount.Abs(),
		Direction:   direction,
		Details:     rec.Details,
		Description: rec.Description,
		AccountKey:  rec.AccountKey,
	}, nil
}

// NormalizeAll normalizes a batch of records, collecting rejected records
// into a diagnostic list instead of failing the whole batch.
func NormalizeAll(recs []RawRecord) ([]Transaction, []SkippedRecord) {
	txns := make([]Transaction, 0, len(recs))
	var skipped []SkippedRecord

	for _, rec := range recs {
		txn, err := Normalize(rec)
		if err != nil {
			skipped = append(skipped, SkippedRecord{
				SourceID: rec.SourceID,
				Type:     rec.Type,
				Reason:   err,
			})
			continue
		}
		txns = append(txns, txn)
	}

	return txns, skipped
}

func parseRecordDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
}

func resolveDirection(rec RawRecord) (Direction, error) {
	if tt := strings.ToLower(strings.TrimSpace(rec.TransactionType)); tt != "" {
		switch tt {
		case string(DirectionCredit):
			return DirectionCredit, nil
		case string(DirectionDebit):
			return DirectionDebit, nil
		default:
			return "", domainerror.NewLedgerError(
				domainerror.ErrCodeAmbiguousDirection,
				fmt.Sprintf("record %s has an unknown transaction type %q", rec.SourceID, rec.TransactionType),
				domainerror.ErrAmbiguousDirection,
			)
		}
	}

	if rec.Credit == rec.Debit {
		return "", domainerror.NewLedgerError(
			domainerror.ErrCodeAmbiguousDirection,
			fmt.Sprintf("record %s sets credit=%t and debit=%t", rec.SourceID, rec.Credit, rec.Debit),
			domainerror.ErrAmbiguousDirection,
		)
	}
	if rec.Credit {
		return DirectionCredit, nil
	}
	return DirectionDebit, nil
}
