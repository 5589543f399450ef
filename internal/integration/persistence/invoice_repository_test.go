package persistence

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

func newInvoice(number, financialYear, buyer string, total string) *entity.Invoice {
	amount := decimal.RequireFromString(total)
	return entity.NewInvoice(
		number,
		financialYear,
		time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
		buyer, "", "", "Gujarat", "India",
		amount, decimal.Zero, decimal.Zero, decimal.Zero, amount,
		false, nil, nil,
	)
}

func TestInvoiceRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and retrieves an invoice", func(t *testing.T) {
		repo := NewInvoiceRepository(newTestDB(t))

		invoice := newInvoice("01-2024-2025", "2024-2025", "Acme", "1180.00")
		if err := repo.Create(ctx, invoice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, invoice.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.InvoiceNumber != "01-2024-2025" {
			t.Errorf("expected invoice number 01-2024-2025, got %s", found.InvoiceNumber)
		}
	})

	t.Run("returns typed error when invoice does not exist", func(t *testing.T) {
		repo := NewInvoiceRepository(newTestDB(t))

		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrInvoiceNotFound) {
			t.Errorf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("listing skips deleted and archived invoices by default", func(t *testing.T) {
		repo := NewInvoiceRepository(newTestDB(t))

		visible := newInvoice("01-2024-2025", "2024-2025", "Acme", "100.00")
		deleted := newInvoice("02-2024-2025", "2024-2025", "Globex", "200.00")
		archived := newInvoice("03-2024-2025", "2024-2025", "Initech", "300.00")
		archived.Archived = true

		for _, invoice := range []*entity.Invoice{visible, deleted, archived} {
			if err := repo.Create(ctx, invoice); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if err := repo.Delete(ctx, deleted.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		invoices, err := repo.FindByFilter(ctx, adapter.InvoiceFilter{FinancialYear: "2024-2025"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(invoices) != 1 || invoices[0].InvoiceNumber != "01-2024-2025" {
			t.Fatalf("expected only the visible invoice, got %d invoices", len(invoices))
		}

		all, err := repo.FindByFilter(ctx, adapter.InvoiceFilter{FinancialYear: "2024-2025", IncludeHidden: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("expected 3 invoices with hidden included, got %d", len(all))
		}
	})

	t.Run("hidden lookup returns deleted and archived invoices", func(t *testing.T) {
		repo := NewInvoiceRepository(newTestDB(t))

		visible := newInvoice("01-2024-2025", "2024-2025", "Acme", "100.00")
		deleted := newInvoice("02-2024-2025", "2024-2025", "Globex", "200.00")
		archived := newInvoice("03-2024-2025", "2024-2025", "Initech", "300.00")
		archived.Archived = true

		for _, invoice := range []*entity.Invoice{visible, deleted, archived} {
			if err := repo.Create(ctx, invoice); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if err := repo.Delete(ctx, deleted.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		hidden, err := repo.FindHiddenByFinancialYear(ctx, "2024-2025")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(hidden) != 2 {
			t.Fatalf("expected 2 hidden invoices, got %d", len(hidden))
		}
		if hidden[0].InvoiceNumber != "02-2024-2025" || hidden[1].InvoiceNumber != "03-2024-2025" {
			t.Errorf("unexpected hidden invoices: %s, %s", hidden[0].InvoiceNumber, hidden[1].InvoiceNumber)
		}
	})

	t.Run("count includes deleted invoices so numbers are never reused", func(t *testing.T) {
		repo := NewInvoiceRepository(newTestDB(t))

		first := newInvoice("01-2024-2025", "2024-2025", "Acme", "100.00")
		second := newInvoice("02-2024-2025", "2024-2025", "Globex", "200.00")
		other := newInvoice("01-2023-2024", "2023-2024", "Acme", "300.00")
		for _, invoice := range []*entity.Invoice{first, second, other} {
			if err := repo.Create(ctx, invoice); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if err := repo.Delete(ctx, second.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		count, err := repo.CountByFinancialYear(ctx, "2024-2025")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Errorf("expected count 2, got %d", count)
		}
	})
}
