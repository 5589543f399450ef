package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", value, err)
	}
	return d
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("invalid date %q: %v", value, err)
	}
	return d
}

func txn(t *testing.T, recType RecordType, day, amount string, dir Direction) Transaction {
	t.Helper()
	return Transaction{
		Type:      recType,
		Date:      date(t, day),
		Amount:    mustDecimal(t, amount),
		Direction: dir,
	}
}

func TestReconcile(t *testing.T) {
	t.Run("walks running balance in date order", func(t *testing.T) {
		stmt, err := Reconcile([]Transaction{
			txn(t, RecordTypeBuyerBill, "2024-04-10", "40", DirectionDebit),
			txn(t, RecordTypeCompanyBill, "2024-04-05", "100", DirectionCredit),
		}, mustDecimal(t, "500"), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stmt.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(stmt.Rows))
		}
		if !stmt.Rows[0].Balance.Equal(mustDecimal(t, "600")) {
			t.Errorf("expected first balance 600, got %s", stmt.Rows[0].Balance)
		}
		if !stmt.Rows[1].Balance.Equal(mustDecimal(t, "560")) {
			t.Errorf("expected second balance 560, got %s", stmt.Rows[1].Balance)
		}
		if !stmt.ClosingBalance.Equal(mustDecimal(t, "560")) {
			t.Errorf("expected closing 560, got %s", stmt.ClosingBalance)
		}
	})

	t.Run("folds pre-window transactions into effective opening balance", func(t *testing.T) {
		from := date(t, "2024-01-05")
		stmt, err := Reconcile([]Transaction{
			txn(t, RecordTypeCompanyBill, "2024-01-01", "100", DirectionCredit),
			txn(t, RecordTypeBuyerBill, "2024-01-05", "40", DirectionDebit),
		}, mustDecimal(t, "500"), &from, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stmt.OpeningBalance.Equal(mustDecimal(t, "600")) {
			t.Errorf("expected effective opening 600, got %s", stmt.OpeningBalance)
		}
		if len(stmt.Rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(stmt.Rows))
		}
		if !stmt.Rows[0].Balance.Equal(mustDecimal(t, "560")) {
			t.Errorf("expected row balance 560, got %s", stmt.Rows[0].Balance)
		}
		if !stmt.ClosingBalance.Equal(mustDecimal(t, "560")) {
			t.Errorf("expected closing 560, got %s", stmt.ClosingBalance)
		}
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		from := date(t, "2024-04-01")
		to := date(t, "2024-04-30")
		stmt, err := Reconcile([]Transaction{
			txn(t, RecordTypeCompanyBill, "2024-04-01", "10", DirectionCredit),
			txn(t, RecordTypeCompanyBill, "2024-04-30", "20", DirectionCredit),
			txn(t, RecordTypeCompanyBill, "2024-05-01", "30", DirectionCredit),
		}, decimal.Zero, &from, &to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stmt.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(stmt.Rows))
		}
		if !stmt.TotalCredit.Equal(mustDecimal(t, "30")) {
			t.Errorf("expected total credit 30, got %s", stmt.TotalCredit)
		}
	})

	t.Run("partitions opening balance transaction out of the rows", func(t *testing.T) {
		stmt, err := Reconcile([]Transaction{
			txn(t, RecordTypeOpeningBalance, "2024-04-01", "1000", DirectionCredit),
			txn(t, RecordTypeBuyerBill, "2024-04-02", "250", DirectionDebit),
		}, decimal.Zero, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stmt.Rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(stmt.Rows))
		}
		if !stmt.OpeningBalance.Equal(mustDecimal(t, "1000")) {
			t.Errorf("expected opening 1000, got %s", stmt.OpeningBalance)
		}
		if !stmt.ClosingBalance.Equal(mustDecimal(t, "750")) {
			t.Errorf("expected closing 750, got %s", stmt.ClosingBalance)
		}
	})

	t.Run("missing opening balance defaults to zero", func(t *testing.T) {
		from := date(t, "2024-04-05")
		stmt, err := Reconcile([]Transaction{
			txn(t, RecordTypeCompanyBill, "2024-04-01", "75", DirectionCredit),
			txn(t, RecordTypeBuyerBill, "2024-04-06", "25", DirectionDebit),
		}, decimal.Zero, &from, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stmt.OpeningBalance.Equal(mustDecimal(t, "75")) {
			t.Errorf("expected effective opening 75, got %s", stmt.OpeningBalance)
		}
		if !stmt.ClosingBalance.Equal(mustDecimal(t, "50")) {
			t.Errorf("expected closing 50, got %s", stmt.ClosingBalance)
		}
	})

	t.Run("closing balance identity holds", func(t *testing.T) {
		stmt, err := Reconcile([]Transaction{
			txn(t, RecordTypeCompanyBill, "2024-04-01", "100.33", DirectionCredit),
			txn(t, RecordTypeSalary, "2024-04-02", "60.21", DirectionDebit),
			txn(t, RecordTypeOtherTransaction, "2024-04-03", "19.88", DirectionCredit),
		}, mustDecimal(t, "12.50"), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := stmt.OpeningBalance.Add(stmt.TotalCredit).Sub(stmt.TotalDebit)
		if !stmt.ClosingBalance.Equal(want) {
			t.Errorf("closing %s does not equal opening+credit-debit %s", stmt.ClosingBalance, want)
		}
		last := stmt.Rows[len(stmt.Rows)-1].Balance
		if !stmt.ClosingBalance.Equal(last) {
			t.Errorf("closing %s does not equal last row balance %s", stmt.ClosingBalance, last)
		}
	})

	t.Run("same-day transactions keep source order", func(t *testing.T) {
		first := txn(t, RecordTypeCompanyBill, "2024-04-01", "10", DirectionCredit)
		first.Details = "first"
		second := txn(t, RecordTypeCompanyBill, "2024-04-01", "20", DirectionCredit)
		second.Details = "second"

		stmt, err := Reconcile([]Transaction{first, second}, decimal.Zero, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stmt.Rows[0].Details != "first" || stmt.Rows[1].Details != "second" {
			t.Errorf("expected stable order, got %s then %s", stmt.Rows[0].Details, stmt.Rows[1].Details)
		}
	})

	t.Run("rejects inverted date range", func(t *testing.T) {
		from := date(t, "2024-05-01")
		to := date(t, "2024-04-01")
		_, err := Reconcile(nil, decimal.Zero, &from, &to)
		assertLedgerError(t, err, domainerror.ErrInvalidDateRange, domainerror.ErrCodeInvalidDateRange)
	})

	t.Run("empty input yields empty statement with opening as closing", func(t *testing.T) {
		stmt, err := Reconcile(nil, mustDecimal(t, "42"), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stmt.Rows) != 0 {
			t.Fatalf("expected no rows, got %d", len(stmt.Rows))
		}
		if !stmt.ClosingBalance.Equal(mustDecimal(t, "42")) {
			t.Errorf("expected closing 42, got %s", stmt.ClosingBalance)
		}
	})
}
