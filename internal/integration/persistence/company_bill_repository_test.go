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

func newCompanyBill(name string, amount string, date time.Time, mode entity.PaymentMode, bankID *uuid.UUID) *entity.CompanyBill {
	return entity.NewCompanyBill(name, decimal.RequireFromString(amount), date, "", mode, bankID)
}

func TestCompanyBillRepository(t *testing.T) {
	ctx := context.Background()
	day := func(d int) time.Time {
		return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("creates and retrieves a bill", func(t *testing.T) {
		repo := NewCompanyBillRepository(newTestDB(t))

		bill := newCompanyBill("Acme", "150.00", day(10), entity.PaymentModeCash, nil)
		if err := repo.Create(ctx, bill); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, bill.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.CompanyName != "Acme" {
			t.Errorf("expected company Acme, got %s", found.CompanyName)
		}
		if !found.Amount.Equal(decimal.RequireFromString("150.00")) {
			t.Errorf("expected amount 150.00, got %s", found.Amount)
		}
	})

	t.Run("returns typed error when bill does not exist", func(t *testing.T) {
		repo := NewCompanyBillRepository(newTestDB(t))

		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("filter window includes From and excludes To", func(t *testing.T) {
		repo := NewCompanyBillRepository(newTestDB(t))

		for d := 1; d <= 5; d++ {
			bill := newCompanyBill("Acme", "10.00", day(d), entity.PaymentModeCash, nil)
			if err := repo.Create(ctx, bill); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		from := day(2)
		to := day(4)
		bills, err := repo.FindByFilter(ctx, adapter.RecordFilter{From: &from, To: &to})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bills) != 2 {
			t.Fatalf("expected 2 bills, got %d", len(bills))
		}
		if !bills[0].Date.Equal(day(2)) || !bills[1].Date.Equal(day(3)) {
			t.Errorf("expected dates Jan 2 and Jan 3, got %v and %v", bills[0].Date, bills[1].Date)
		}
	})

	t.Run("filters by payment mode and bank", func(t *testing.T) {
		repo := NewCompanyBillRepository(newTestDB(t))

		bankID := uuid.New()
		otherBankID := uuid.New()
		bills := []*entity.CompanyBill{
			newCompanyBill("Acme", "10.00", day(1), entity.PaymentModeBank, &bankID),
			newCompanyBill("Acme", "20.00", day(2), entity.PaymentModeBank, &otherBankID),
			newCompanyBill("Acme", "30.00", day(3), entity.PaymentModeCash, nil),
		}
		for _, bill := range bills {
			if err := repo.Create(ctx, bill); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		mode := entity.PaymentModeBank
		found, err := repo.FindByFilter(ctx, adapter.RecordFilter{PaymentMode: &mode, BankID: &bankID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 bill, got %d", len(found))
		}
		if !found[0].Amount.Equal(decimal.RequireFromString("10.00")) {
			t.Errorf("expected the bill on the first bank, got amount %s", found[0].Amount)
		}
	})

	t.Run("filters by exact company name", func(t *testing.T) {
		repo := NewCompanyBillRepository(newTestDB(t))

		if err := repo.Create(ctx, newCompanyBill("Acme", "10.00", day(1), entity.PaymentModeCash, nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Create(ctx, newCompanyBill("Globex", "20.00", day(2), entity.PaymentModeCash, nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByFilter(ctx, adapter.RecordFilter{Name: "Globex"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 || found[0].CompanyName != "Globex" {
			t.Fatalf("expected only the Globex bill, got %d bills", len(found))
		}
	})

	t.Run("soft-deleted bills disappear from queries", func(t *testing.T) {
		repo := NewCompanyBillRepository(newTestDB(t))

		bill := newCompanyBill("Acme", "10.00", day(1), entity.PaymentModeCash, nil)
		if err := repo.Create(ctx, bill); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Delete(ctx, bill.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := repo.FindByID(ctx, bill.ID); !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound after delete, got %v", err)
		}
		found, err := repo.FindByFilter(ctx, adapter.RecordFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected no bills after delete, got %d", len(found))
		}
	})

	t.Run("deleting a missing bill reports not found", func(t *testing.T) {
		repo := NewCompanyBillRepository(newTestDB(t))

		if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})
}
