package invoice

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

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{}
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	f.invoices = append(f.invoices, invoice)
	return nil
}

func (f *fakeInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	for _, invoice := range f.invoices {
		if invoice.ID == id {
			return invoice, nil
		}
	}
	return nil, domainerror.NewInvoiceError(
		domainerror.ErrCodeInvoiceNotFound, "invoice not found", domainerror.ErrInvoiceNotFound)
}

func (f *fakeInvoiceRepo) FindByFilter(ctx context.Context, filter adapter.InvoiceFilter) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, invoice := range f.invoices {
		if filter.FinancialYear != "" && invoice.FinancialYear != filter.FinancialYear {
			continue
		}
		if filter.BuyerName != "" && invoice.BuyerName != filter.BuyerName {
			continue
		}
		if !filter.IncludeHidden && (invoice.DeletedAt != nil || invoice.Archived) {
			continue
		}
		out = append(out, invoice)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) FindHiddenByFinancialYear(ctx context.Context, financialYear string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, invoice := range f.invoices {
		if invoice.FinancialYear == financialYear && (invoice.DeletedAt != nil || invoice.Archived) {
			out = append(out, invoice)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) CountByFinancialYear(ctx context.Context, financialYear string) (int64, error) {
	var count int64
	for _, invoice := range f.invoices {
		if invoice.FinancialYear == financialYear {
			count++
		}
	}
	return count, nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error { return nil }

func (f *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for _, invoice := range f.invoices {
		if invoice.ID == id {
			now := time.Now().UTC()
			invoice.DeletedAt = &now
			return nil
		}
	}
	return domainerror.ErrInvoiceNotFound
}

type countingCache struct {
	invalidations int
}

func (c *countingCache) Get(ctx context.Context, year string) ([]byte, error) { return nil, nil }
func (c *countingCache) Set(ctx context.Context, year string, report []byte, ttl time.Duration) error {
	return nil
}
func (c *countingCache) InvalidateAll(ctx context.Context) error {
	c.invalidations++
	return nil
}

func mustDec(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", v, err)
	}
	return d
}

func TestCalculateInvoiceUseCase(t *testing.T) {
	invoiceDate := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("splits GST evenly for home-state buyers", func(t *testing.T) {
		uc := NewCalculateInvoiceUseCase(newFakeInvoiceRepo())
		output, err := uc.Execute(context.Background(), CalculateInvoiceInput{
			BaseAmount:  mustDec(t, "1000"),
			Country:     "India",
			State:       "Gujarat",
			InvoiceDate: invoiceDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.CGST.Equal(mustDec(t, "90")) || !output.SGST.Equal(mustDec(t, "90")) {
			t.Errorf("expected CGST=SGST=90, got %s/%s", output.CGST, output.SGST)
		}
		if !output.IGST.IsZero() {
			t.Errorf("expected no IGST, got %s", output.IGST)
		}
		if !output.TotalAmount.Equal(mustDec(t, "1180")) {
			t.Errorf("expected total 1180, got %s", output.TotalAmount)
		}
	})

	t.Run("levies IGST for other-state buyers", func(t *testing.T) {
		uc := NewCalculateInvoiceUseCase(newFakeInvoiceRepo())
		output, err := uc.Execute(context.Background(), CalculateInvoiceInput{
			BaseAmount:  mustDec(t, "1000"),
			Country:     "India",
			State:       "Maharashtra",
			InvoiceDate: invoiceDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.IGST.Equal(mustDec(t, "180")) {
			t.Errorf("expected IGST 180, got %s", output.IGST)
		}
		if !output.CGST.IsZero() || !output.SGST.IsZero() {
			t.Errorf("expected no CGST/SGST, got %s/%s", output.CGST, output.SGST)
		}
	})

	t.Run("rounds GST half up", func(t *testing.T) {
		uc := NewCalculateInvoiceUseCase(newFakeInvoiceRepo())
		output, err := uc.Execute(context.Background(), CalculateInvoiceInput{
			BaseAmount:  mustDec(t, "100.05"),
			State:       "Gujarat",
			InvoiceDate: invoiceDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 100.05 * 0.09 = 9.0045 -> 9.00
		if !output.CGST.Equal(mustDec(t, "9.00")) {
			t.Errorf("expected CGST 9.00, got %s", output.CGST)
		}
	})

	t.Run("export invoices skip GST and report INR equivalent", func(t *testing.T) {
		rate := mustDec(t, "83.25")
		uc := NewCalculateInvoiceUseCase(newFakeInvoiceRepo())
		output, err := uc.Execute(context.Background(), CalculateInvoiceInput{
			BaseAmount:   mustDec(t, "100"),
			Country:      "USA",
			ExchangeRate: &rate,
			InvoiceDate:  invoiceDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.IsExport {
			t.Error("expected export invoice")
		}
		if !output.TaxTotal.IsZero() {
			t.Errorf("expected no tax, got %s", output.TaxTotal)
		}
		if output.INREquivalent == nil || !output.INREquivalent.Equal(mustDec(t, "8325")) {
			t.Errorf("expected INR equivalent 8325, got %v", output.INREquivalent)
		}
	})

	t.Run("export without exchange rate fails", func(t *testing.T) {
		uc := NewCalculateInvoiceUseCase(newFakeInvoiceRepo())
		_, err := uc.Execute(context.Background(), CalculateInvoiceInput{
			BaseAmount:  mustDec(t, "100"),
			Country:     "USA",
			InvoiceDate: invoiceDate,
		})
		if !errors.Is(err, domainerror.ErrMissingExchangeRate) {
			t.Fatalf("expected missing exchange rate error, got %v", err)
		}
	})

	t.Run("domestic without state fails", func(t *testing.T) {
		uc := NewCalculateInvoiceUseCase(newFakeInvoiceRepo())
		_, err := uc.Execute(context.Background(), CalculateInvoiceInput{
			BaseAmount:  mustDec(t, "100"),
			Country:     "India",
			InvoiceDate: invoiceDate,
		})
		if !errors.Is(err, domainerror.ErrMissingBuyerState) {
			t.Fatalf("expected missing buyer state error, got %v", err)
		}
	})

	t.Run("non-positive amount fails", func(t *testing.T) {
		uc := NewCalculateInvoiceUseCase(newFakeInvoiceRepo())
		_, err := uc.Execute(context.Background(), CalculateInvoiceInput{
			BaseAmount:  decimal.Zero,
			State:       "Gujarat",
			InvoiceDate: invoiceDate,
		})
		if !errors.Is(err, domainerror.ErrInvalidInvoiceAmount) {
			t.Fatalf("expected invalid amount error, got %v", err)
		}
	})

	t.Run("numbers invoices sequentially per financial year", func(t *testing.T) {
		repo := newFakeInvoiceRepo()
		cache := &countingCache{}
		create := NewCreateInvoiceUseCase(repo, cache)
		calc := NewCalculateInvoiceUseCase(repo)

		first, err := calc.Execute(context.Background(), CalculateInvoiceInput{
			BaseAmount: mustDec(t, "100"), State: "Gujarat", InvoiceDate: invoiceDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.InvoiceNumber != "01-2024-2025" {
			t.Errorf("expected 01-2024-2025, got %s", first.InvoiceNumber)
		}

		if _, err := create.Execute(context.Background(), CreateInvoiceInput{
			InvoiceDate: invoiceDate, BuyerName: "Globex", BuyerState: "Gujarat", BaseAmount: mustDec(t, "100"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second, err := calc.Execute(context.Background(), CalculateInvoiceInput{
			BaseAmount: mustDec(t, "100"), State: "Gujarat", InvoiceDate: invoiceDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.InvoiceNumber != "02-2024-2025" {
			t.Errorf("expected 02-2024-2025, got %s", second.InvoiceNumber)
		}

		// A different financial year restarts the sequence.
		nextYear, err := calc.Execute(context.Background(), CalculateInvoiceInput{
			BaseAmount: mustDec(t, "100"), State: "Gujarat",
			InvoiceDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if nextYear.InvoiceNumber != "01-2025-2026" {
			t.Errorf("expected 01-2025-2026, got %s", nextYear.InvoiceNumber)
		}
	})
}

func TestDeleteInvoiceUseCase(t *testing.T) {
	invoiceDate := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("soft delete keeps the number and invalidates reports", func(t *testing.T) {
		repo := newFakeInvoiceRepo()
		cache := &countingCache{}
		create := NewCreateInvoiceUseCase(repo, cache)
		del := NewDeleteInvoiceUseCase(repo, cache)

		created, err := create.Execute(context.Background(), CreateInvoiceInput{
			InvoiceDate: invoiceDate, BuyerName: "Globex", BuyerState: "Gujarat", BaseAmount: mustDec(t, "100"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := del.Execute(context.Background(), DeleteInvoiceInput{ID: created.Invoice.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.invalidations != 2 {
			t.Errorf("expected cache invalidated on create and delete, got %d", cache.invalidations)
		}

		hidden, err := repo.FindHiddenByFinancialYear(context.Background(), "2024-2025")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(hidden) != 1 || hidden[0].InvoiceNumber != "01-2024-2025" {
			t.Fatalf("expected deleted invoice to stay visible as hidden, got %v", hidden)
		}

		// The number is never reused.
		next, err := NewCalculateInvoiceUseCase(repo).Execute(context.Background(), CalculateInvoiceInput{
			BaseAmount: mustDec(t, "100"), State: "Gujarat", InvoiceDate: invoiceDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.InvoiceNumber != "02-2024-2025" {
			t.Errorf("expected 02-2024-2025 after delete, got %s", next.InvoiceNumber)
		}
	})

	t.Run("double delete fails", func(t *testing.T) {
		repo := newFakeInvoiceRepo()
		cache := &countingCache{}
		create := NewCreateInvoiceUseCase(repo, cache)
		del := NewDeleteInvoiceUseCase(repo, cache)

		created, err := create.Execute(context.Background(), CreateInvoiceInput{
			InvoiceDate: invoiceDate, BuyerName: "Globex", BuyerState: "Gujarat", BaseAmount: mustDec(t, "100"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := del.Execute(context.Background(), DeleteInvoiceInput{ID: created.Invoice.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err = del.Execute(context.Background(), DeleteInvoiceInput{ID: created.Invoice.ID})
		if !errors.Is(err, domainerror.ErrInvoiceAlreadyDeleted) {
			t.Fatalf("expected already deleted error, got %v", err)
		}
	})
}
