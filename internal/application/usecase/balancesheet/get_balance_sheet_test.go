package balancesheet

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/domain/ledger"
)

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	hidden   map[string][]*entity.Invoice
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error { return nil }
func (f *fakeInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return nil, domainerror.ErrInvoiceNotFound
}
func (f *fakeInvoiceRepo) FindByFilter(ctx context.Context, filter adapter.InvoiceFilter) ([]*entity.Invoice, error) {
	return f.invoices, nil
}
func (f *fakeInvoiceRepo) FindHiddenByFinancialYear(ctx context.Context, financialYear string) ([]*entity.Invoice, error) {
	return f.hidden[financialYear], nil
}
func (f *fakeInvoiceRepo) CountByFinancialYear(ctx context.Context, financialYear string) (int64, error) {
	return 0, nil
}
func (f *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error { return nil }
func (f *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

func within(date time.Time, filter adapter.RecordFilter) bool {
	if filter.From != nil && date.Before(*filter.From) {
		return false
	}
	if filter.To != nil && !date.Before(*filter.To) {
		return false
	}
	return true
}

type fakeBuyerBillRepo struct {
	bills []*entity.BuyerBill
}

func (f *fakeBuyerBillRepo) Create(ctx context.Context, bill *entity.BuyerBill) error { return nil }
func (f *fakeBuyerBillRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BuyerBill, error) {
	return nil, domainerror.ErrRecordNotFound
}
func (f *fakeBuyerBillRepo) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.BuyerBill, error) {
	var out []*entity.BuyerBill
	for _, bill := range f.bills {
		if within(bill.Date, filter) {
			out = append(out, bill)
		}
	}
	return out, nil
}
func (f *fakeBuyerBillRepo) Update(ctx context.Context, bill *entity.BuyerBill) error { return nil }
func (f *fakeBuyerBillRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }

type fakeCompanyBillRepo struct {
	bills []*entity.CompanyBill
}

func (f *fakeCompanyBillRepo) Create(ctx context.Context, bill *entity.CompanyBill) error { return nil }
func (f *fakeCompanyBillRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CompanyBill, error) {
	return nil, domainerror.ErrRecordNotFound
}
func (f *fakeCompanyBillRepo) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.CompanyBill, error) {
	var out []*entity.CompanyBill
	for _, bill := range f.bills {
		if within(bill.Date, filter) {
			out = append(out, bill)
		}
	}
	return out, nil
}
func (f *fakeCompanyBillRepo) Update(ctx context.Context, bill *entity.CompanyBill) error { return nil }
func (f *fakeCompanyBillRepo) Delete(ctx context.Context, id uuid.UUID) error             { return nil }

type fakeSalaryRepo struct {
	salaries []*entity.Salary
}

func (f *fakeSalaryRepo) Create(ctx context.Context, salary *entity.Salary) error { return nil }
func (f *fakeSalaryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Salary, error) {
	return nil, domainerror.ErrRecordNotFound
}
func (f *fakeSalaryRepo) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.Salary, error) {
	var out []*entity.Salary
	for _, salary := range f.salaries {
		if within(salary.Date, filter) {
			out = append(out, salary)
		}
	}
	return out, nil
}
func (f *fakeSalaryRepo) Update(ctx context.Context, salary *entity.Salary) error { return nil }
func (f *fakeSalaryRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

type fakeOtherTxnRepo struct {
	txns []*entity.OtherTransaction
}

func (f *fakeOtherTxnRepo) Create(ctx context.Context, txn *entity.OtherTransaction) error {
	return nil
}
func (f *fakeOtherTxnRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.OtherTransaction, error) {
	return nil, domainerror.ErrRecordNotFound
}
func (f *fakeOtherTxnRepo) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.OtherTransaction, error) {
	var out []*entity.OtherTransaction
	for _, txn := range f.txns {
		if within(txn.Date, filter) {
			out = append(out, txn)
		}
	}
	return out, nil
}
func (f *fakeOtherTxnRepo) Update(ctx context.Context, txn *entity.OtherTransaction) error {
	return nil
}
func (f *fakeOtherTxnRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeReportCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func newFakeReportCache() *fakeReportCache {
	return &fakeReportCache{store: map[string][]byte{}}
}

func (f *fakeReportCache) Get(ctx context.Context, year string) ([]byte, error) {
	f.gets++
	return f.store[year], nil
}
func (f *fakeReportCache) Set(ctx context.Context, year string, report []byte, ttl time.Duration) error {
	f.sets++
	f.store[year] = report
	return nil
}
func (f *fakeReportCache) InvalidateAll(ctx context.Context) error {
	f.store = map[string][]byte{}
	return nil
}

type fakeSnapshotRepo struct {
	saved []*entity.BalanceSheetSnapshot
}

func (f *fakeSnapshotRepo) Save(ctx context.Context, snapshot *entity.BalanceSheetSnapshot) error {
	f.saved = append(f.saved, snapshot)
	return nil
}
func (f *fakeSnapshotRepo) FindByFinancialYear(ctx context.Context, financialYear string) (*entity.BalanceSheetSnapshot, error) {
	for _, snapshot := range f.saved {
		if snapshot.FinancialYear == financialYear {
			return snapshot, nil
		}
	}
	return nil, domainerror.ErrRecordNotFound
}

func otherTxn(name, typeName string, dir entity.OtherTransactionDirection, amount int64, date time.Time) *entity.OtherTransaction {
	return entity.NewOtherTransaction(name, typeName, dir, decimal.NewFromInt(amount), date, "", entity.PaymentModeBank, nil)
}

func TestGetBalanceSheetUseCase(t *testing.T) {
	currentFY := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) // 2024-2025
	priorFY := time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)    // 2023-2024

	newUseCase := func(cache adapter.ReportCache) *GetBalanceSheetUseCase {
		invoice := &entity.Invoice{
			ID:            uuid.New(),
			InvoiceNumber: "01-2024-2025",
			FinancialYear: "2024-2025",
			BuyerName:     "Globex",
			InvoiceDate:   currentFY,
			TotalAmount:   decimal.NewFromInt(1000),
		}
		deleted := &entity.Invoice{
			ID:            uuid.New(),
			InvoiceNumber: "02-2024-2025",
			FinancialYear: "2024-2025",
			BuyerName:     "Initech",
			InvoiceDate:   currentFY,
			TotalAmount:   decimal.NewFromInt(300),
		}
		return NewGetBalanceSheetUseCase(
			&fakeInvoiceRepo{
				invoices: []*entity.Invoice{invoice},
				hidden:   map[string][]*entity.Invoice{"2024-2025": {deleted}},
			},
			&fakeBuyerBillRepo{bills: []*entity.BuyerBill{
				entity.NewBuyerBill("Globex", decimal.NewFromInt(400), currentFY.AddDate(0, 0, 5), "", entity.PaymentModeBank, nil),
			}},
			&fakeCompanyBillRepo{},
			&fakeSalaryRepo{salaries: []*entity.Salary{
				entity.NewSalary("Ramesh", decimal.NewFromInt(1000), currentFY, "", entity.PaymentModeBank, nil),
				entity.NewSalary("Ramesh", decimal.NewFromInt(500), currentFY.AddDate(0, 1, 0), "", entity.PaymentModeBank, nil),
			}},
			&fakeOtherTxnRepo{txns: []*entity.OtherTransaction{
				otherTxn("Partner A", entity.OtherTypePartner, entity.OtherTransactionCredit, 50000, currentFY),
				otherTxn("State Bank", entity.OtherTypeLoan, entity.OtherTransactionCredit, 20000, currentFY),
				otherTxn("State Bank", entity.OtherTypeLoan, entity.OtherTransactionDebit, 5000, currentFY.AddDate(0, 0, 3)),
				otherTxn("Courier", entity.OtherTypeExpense, entity.OtherTransactionDebit, 250, currentFY),
				otherTxn("Old Partner", entity.OtherTypePartner, entity.OtherTransactionCredit, 7000, priorFY),
				otherTxn("Lathe", "Machinery", entity.OtherTransactionDebit, 75000, currentFY),
			}},
			cache,
		)
	}

	t.Run("builds fixed sections from typed transactions", func(t *testing.T) {
		output, err := newUseCase(nil).Execute(context.Background(), GetBalanceSheetInput{FinancialYear: "2024-2025"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		capital := findSection(t, output, SectionCapital)
		assertEntry(t, capital, "Partner A", "50000", true)

		loans := findSection(t, output, SectionLoanCredit)
		assertEntry(t, loans, "State Bank", "15000", true)
	})

	t.Run("carries forward prior-year balances as non-interactive entries", func(t *testing.T) {
		output, err := newUseCase(nil).Execute(context.Background(), GetBalanceSheetInput{FinancialYear: "2024-2025"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		capital := findSection(t, output, SectionCapital)
		assertEntry(t, capital, "Old Partner "+ledger.CarryForwardMarker, "7000", false)
		if !capital.Total.Equal(decimal.NewFromInt(57000)) {
			t.Errorf("carry-forward must count toward total, got %s", capital.Total)
		}
	})

	t.Run("merges salaries and expenses into one Expense section", func(t *testing.T) {
		output, err := newUseCase(nil).Execute(context.Background(), GetBalanceSheetInput{FinancialYear: "2024-2025"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expense := findSection(t, output, "Expense")
		assertEntry(t, expense, "Ramesh", "1500", true)
		assertEntry(t, expense, "Courier", "250", true)
		for _, section := range output.Sections {
			if section.Name == SectionSalary {
				t.Error("Salary section must be merged into Expense")
			}
		}
	})

	t.Run("nets sundry debtors from invoices and deposits", func(t *testing.T) {
		output, err := newUseCase(nil).Execute(context.Background(), GetBalanceSheetInput{FinancialYear: "2024-2025"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		debtors := findSection(t, output, SectionSundryDebtors)
		assertEntry(t, debtors, "Globex", "600", true)
	})

	t.Run("surfaces deleted invoices as unsecure loan debits", func(t *testing.T) {
		output, err := newUseCase(nil).Execute(context.Background(), GetBalanceSheetInput{FinancialYear: "2024-2025"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		unsecure := findSection(t, output, SectionUnsecureLoanDebit)
		assertEntry(t, unsecure, "Initech (Invoice 02-2024-2025)", "300", true)
	})

	t.Run("builds dynamic sections for custom types", func(t *testing.T) {
		output, err := newUseCase(nil).Execute(context.Background(), GetBalanceSheetInput{FinancialYear: "2024-2025"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		machinery := findSection(t, output, "Machinery (Debit)")
		assertEntry(t, machinery, "Lathe", "75000", true)
	})

	t.Run("serves repeated reads from the cache", func(t *testing.T) {
		cache := newFakeReportCache()
		uc := newUseCase(cache)

		first, err := uc.Execute(context.Background(), GetBalanceSheetInput{FinancialYear: "2024-2025"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.sets != 1 {
			t.Fatalf("expected 1 cache write, got %d", cache.sets)
		}

		second, err := uc.Execute(context.Background(), GetBalanceSheetInput{FinancialYear: "2024-2025"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.sets != 1 {
			t.Errorf("cache hit must not rebuild, got %d writes", cache.sets)
		}

		firstJSON, _ := json.Marshal(first)
		secondJSON, _ := json.Marshal(second)
		if string(firstJSON) != string(secondJSON) {
			t.Error("cached report differs from built report")
		}
	})

	t.Run("rejects malformed financial year", func(t *testing.T) {
		_, err := newUseCase(nil).Execute(context.Background(), GetBalanceSheetInput{FinancialYear: "2024"})
		if err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestSnapshotBalanceSheetUseCase(t *testing.T) {
	t.Run("persists a frozen report for the year", func(t *testing.T) {
		snapshotRepo := &fakeSnapshotRepo{}
		uc := NewSnapshotBalanceSheetUseCase(
			&fakeInvoiceRepo{hidden: map[string][]*entity.Invoice{}},
			&fakeBuyerBillRepo{},
			&fakeCompanyBillRepo{},
			&fakeSalaryRepo{},
			&fakeOtherTxnRepo{txns: []*entity.OtherTransaction{
				otherTxn("Partner A", entity.OtherTypePartner, entity.OtherTransactionCredit, 1000,
					time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
			}},
			snapshotRepo,
		)

		output, err := uc.Execute(context.Background(), SnapshotBalanceSheetInput{FinancialYear: "2024-2025"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snapshotRepo.saved) != 1 {
			t.Fatalf("expected 1 saved snapshot, got %d", len(snapshotRepo.saved))
		}
		if output.FinancialYear != "2024-2025" {
			t.Errorf("expected year 2024-2025, got %s", output.FinancialYear)
		}

		var stored GetBalanceSheetOutput
		if err := json.Unmarshal(snapshotRepo.saved[0].Report, &stored); err != nil {
			t.Fatalf("stored payload not valid JSON: %v", err)
		}
		if len(stored.Sections) == 0 {
			t.Error("expected sections in stored report")
		}
	})
}

func findSection(t *testing.T, output *GetBalanceSheetOutput, name string) SectionOutput {
	t.Helper()
	for _, section := range output.Sections {
		if section.Name == name {
			return section
		}
	}
	t.Fatalf("section %q not found", name)
	return SectionOutput{}
}

func assertEntry(t *testing.T, section SectionOutput, label, amount string, interactive bool) {
	t.Helper()
	want, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", amount, err)
	}
	for _, entry := range section.Entries {
		if entry.Label == label {
			if !entry.Amount.Equal(want) {
				t.Errorf("entry %q: expected %s, got %s", label, want, entry.Amount)
			}
			if entry.Interactive != interactive {
				t.Errorf("entry %q: expected interactive=%t", label, interactive)
			}
			return
		}
	}
	t.Errorf("entry %q not found in section %q", label, section.Name)
}
