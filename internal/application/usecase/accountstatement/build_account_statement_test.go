package accountstatement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

type stubInvoiceRepo struct {
	invoices []*entity.Invoice
}

func (s *stubInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error { return nil }
func (s *stubInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return nil, domainerror.ErrInvoiceNotFound
}
func (s *stubInvoiceRepo) FindByFilter(ctx context.Context, filter adapter.InvoiceFilter) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, invoice := range s.invoices {
		if filter.BuyerName == "" || invoice.BuyerName == filter.BuyerName {
			out = append(out, invoice)
		}
	}
	return out, nil
}
func (s *stubInvoiceRepo) FindHiddenByFinancialYear(ctx context.Context, financialYear string) ([]*entity.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceRepo) CountByFinancialYear(ctx context.Context, financialYear string) (int64, error) {
	return int64(len(s.invoices)), nil
}
func (s *stubInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error { return nil }
func (s *stubInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

type stubBuyerBillRepo struct {
	bills []*entity.BuyerBill
}

func (s *stubBuyerBillRepo) Create(ctx context.Context, bill *entity.BuyerBill) error { return nil }
func (s *stubBuyerBillRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BuyerBill, error) {
	return nil, domainerror.ErrRecordNotFound
}
func (s *stubBuyerBillRepo) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.BuyerBill, error) {
	var out []*entity.BuyerBill
	for _, bill := range s.bills {
		if filter.Name == "" || bill.BuyerName == filter.Name {
			out = append(out, bill)
		}
	}
	return out, nil
}
func (s *stubBuyerBillRepo) Update(ctx context.Context, bill *entity.BuyerBill) error { return nil }
func (s *stubBuyerBillRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }

type stubCompanyBillRepo struct {
	bills []*entity.CompanyBill
}

func (s *stubCompanyBillRepo) Create(ctx context.Context, bill *entity.CompanyBill) error { return nil }
func (s *stubCompanyBillRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CompanyBill, error) {
	return nil, domainerror.ErrRecordNotFound
}
func (s *stubCompanyBillRepo) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.CompanyBill, error) {
	var out []*entity.CompanyBill
	for _, bill := range s.bills {
		if filter.Name == "" || bill.CompanyName == filter.Name {
			out = append(out, bill)
		}
	}
	return out, nil
}
func (s *stubCompanyBillRepo) Update(ctx context.Context, bill *entity.CompanyBill) error { return nil }
func (s *stubCompanyBillRepo) Delete(ctx context.Context, id uuid.UUID) error             { return nil }

type stubOtherTxnRepo struct {
	txns []*entity.OtherTransaction
}

func (s *stubOtherTxnRepo) Create(ctx context.Context, txn *entity.OtherTransaction) error {
	return nil
}
func (s *stubOtherTxnRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.OtherTransaction, error) {
	return nil, domainerror.ErrRecordNotFound
}
func (s *stubOtherTxnRepo) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.OtherTransaction, error) {
	var out []*entity.OtherTransaction
	for _, txn := range s.txns {
		if filter.Name == "" || txn.Name == filter.Name {
			out = append(out, txn)
		}
	}
	return out, nil
}
func (s *stubOtherTxnRepo) Update(ctx context.Context, txn *entity.OtherTransaction) error {
	return nil
}
func (s *stubOtherTxnRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func mustDec(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", v, err)
	}
	return d
}

func TestBuildAccountStatementUseCase(t *testing.T) {
	invoice := &entity.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "01-2024-2025",
		BuyerName:     "Globex",
		InvoiceDate:   time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		TotalAmount:   decimal.NewFromInt(1180),
	}
	deposit := entity.NewBuyerBill("Globex", decimal.NewFromInt(500), time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC), "part payment", entity.PaymentModeBank, nil)
	otherBuyer := entity.NewBuyerBill("Initech", decimal.NewFromInt(999), time.Date(2024, 4, 21, 0, 0, 0, 0, time.UTC), "", entity.PaymentModeBank, nil)

	uc := NewBuildAccountStatementUseCase(
		&stubInvoiceRepo{invoices: []*entity.Invoice{invoice}},
		&stubBuyerBillRepo{bills: []*entity.BuyerBill{deposit, otherBuyer}},
		&stubCompanyBillRepo{},
		&stubOtherTxnRepo{},
	)

	t.Run("invoices debit and deposits credit the buyer account", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), BuildAccountStatementInput{BuyerName: "Globex"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(output.Rows))
		}
		if !output.Rows[0].Debit.Equal(mustDec(t, "1180")) {
			t.Errorf("expected invoice debit 1180, got %s", output.Rows[0].Debit)
		}
		if !output.Rows[1].Credit.Equal(mustDec(t, "500")) {
			t.Errorf("expected deposit credit 500, got %s", output.Rows[1].Credit)
		}
		if !output.ClosingBalance.Equal(mustDec(t, "-680")) {
			t.Errorf("expected outstanding -680, got %s", output.ClosingBalance)
		}
	})

	t.Run("ignores records for other buyers", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), BuildAccountStatementInput{BuyerName: "Globex"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, row := range output.Rows {
			if row.Credit.Equal(mustDec(t, "999")) {
				t.Error("Initech deposit must not appear in Globex statement")
			}
		}
	})

	t.Run("rejected records surface as diagnostics", func(t *testing.T) {
		badTxn := &entity.OtherTransaction{
			ID:        uuid.New(),
			Name:      "Globex",
			TypeName:  entity.OtherTypeLoan,
			Direction: entity.OtherTransactionDirection("xfer"),
			Amount:    decimal.NewFromInt(400),
			Date:      time.Date(2024, 4, 25, 0, 0, 0, 0, time.UTC),
		}
		uc := NewBuildAccountStatementUseCase(
			&stubInvoiceRepo{invoices: []*entity.Invoice{invoice}},
			&stubBuyerBillRepo{},
			&stubCompanyBillRepo{},
			&stubOtherTxnRepo{txns: []*entity.OtherTransaction{badTxn}},
		)

		output, err := uc.Execute(context.Background(), BuildAccountStatementInput{BuyerName: "Globex"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(output.Rows))
		}
		if !output.ClosingBalance.Equal(mustDec(t, "-1180")) {
			t.Errorf("expected closing -1180, got %s", output.ClosingBalance)
		}
		if len(output.Skipped) != 1 {
			t.Fatalf("expected 1 skipped record, got %d", len(output.Skipped))
		}
		if output.Skipped[0].SourceID != badTxn.ID.String() {
			t.Errorf("expected skipped source %s, got %s", badTxn.ID, output.Skipped[0].SourceID)
		}
		if output.Skipped[0].Reason == "" {
			t.Error("expected a skip reason")
		}
	})

	t.Run("requires a buyer name", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), BuildAccountStatementInput{})
		if !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Fatalf("expected record not found error, got %v", err)
		}
	})
}
