package statement

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

type stubBankRepo struct {
	accounts []*entity.BankAccount
}

func (s *stubBankRepo) Create(ctx context.Context, account *entity.BankAccount) error { return nil }
func (s *stubBankRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error) {
	for _, account := range s.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, domainerror.NewBankingError(
		domainerror.ErrCodeBankAccountNotFound, "bank account not found", domainerror.ErrBankAccountNotFound)
}
func (s *stubBankRepo) FindAll(ctx context.Context) ([]*entity.BankAccount, error) {
	return s.accounts, nil
}
func (s *stubBankRepo) Update(ctx context.Context, account *entity.BankAccount) error { return nil }
func (s *stubBankRepo) Delete(ctx context.Context, id uuid.UUID) error                { return nil }

type stubCashRepo struct {
	entry *entity.CashEntry
}

func (s *stubCashRepo) Create(ctx context.Context, entry *entity.CashEntry) error { return nil }
func (s *stubCashRepo) Find(ctx context.Context) (*entity.CashEntry, error) {
	if s.entry == nil {
		return nil, domainerror.NewBankingError(
			domainerror.ErrCodeCashEntryNotFound, "cash entry not found", domainerror.ErrCashEntryNotFound)
	}
	return s.entry, nil
}
func (s *stubCashRepo) Update(ctx context.Context, entry *entity.CashEntry) error { return nil }

func matchesFilter(filter adapter.RecordFilter, mode entity.PaymentMode, bankID *uuid.UUID) bool {
	if filter.PaymentMode != nil && *filter.PaymentMode != mode {
		return false
	}
	if filter.BankID != nil {
		if bankID == nil || *bankID != *filter.BankID {
			return false
		}
	}
	return true
}

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
		if matchesFilter(filter, bill.PaymentMode, bill.BankID) {
			out = append(out, bill)
		}
	}
	return out, nil
}
func (s *stubCompanyBillRepo) Update(ctx context.Context, bill *entity.CompanyBill) error { return nil }
func (s *stubCompanyBillRepo) Delete(ctx context.Context, id uuid.UUID) error             { return nil }

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
		if matchesFilter(filter, bill.PaymentMode, bill.BankID) {
			out = append(out, bill)
		}
	}
	return out, nil
}
func (s *stubBuyerBillRepo) Update(ctx context.Context, bill *entity.BuyerBill) error { return nil }
func (s *stubBuyerBillRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }

type stubSalaryRepo struct {
	salaries []*entity.Salary
}

func (s *stubSalaryRepo) Create(ctx context.Context, salary *entity.Salary) error { return nil }
func (s *stubSalaryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Salary, error) {
	return nil, domainerror.ErrRecordNotFound
}
func (s *stubSalaryRepo) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.Salary, error) {
	var out []*entity.Salary
	for _, salary := range s.salaries {
		if matchesFilter(filter, salary.PaymentMode, salary.BankID) {
			out = append(out, salary)
		}
	}
	return out, nil
}
func (s *stubSalaryRepo) Update(ctx context.Context, salary *entity.Salary) error { return nil }
func (s *stubSalaryRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

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
		if matchesFilter(filter, txn.PaymentMode, txn.BankID) {
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

func day(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		t.Fatalf("invalid date %q: %v", v, err)
	}
	return d
}

func TestBuildStatementUseCase(t *testing.T) {
	bank := entity.NewBankAccount("HDFC", "0001", decimal.NewFromInt(500), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	bankID := bank.ID

	companyBill := entity.NewCompanyBill("Acme Ltd", decimal.NewFromInt(100), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "", entity.PaymentModeBank, &bankID)
	buyerBill := entity.NewBuyerBill("Globex", decimal.NewFromInt(40), time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "", entity.PaymentModeBank, &bankID)
	cashSalary := entity.NewSalary("Ramesh", decimal.NewFromInt(75), time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), "", entity.PaymentModeCash, nil)

	newUseCase := func(cash *entity.CashEntry) *BuildStatementUseCase {
		return NewBuildStatementUseCase(
			&stubBankRepo{accounts: []*entity.BankAccount{bank}},
			&stubCashRepo{entry: cash},
			&stubCompanyBillRepo{bills: []*entity.CompanyBill{companyBill}},
			&stubBuyerBillRepo{bills: []*entity.BuyerBill{buyerBill}},
			&stubSalaryRepo{salaries: []*entity.Salary{cashSalary}},
			&stubOtherTxnRepo{},
		)
	}

	t.Run("bank scope folds pre-window activity into opening balance", func(t *testing.T) {
		from := day(t, "2024-01-05")
		uc := newUseCase(nil)
		output, err := uc.Execute(context.Background(), BuildStatementInput{
			Scope:  ScopeBank,
			BankID: &bankID,
			From:   &from,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.OpeningBalance.Equal(mustDec(t, "600")) {
			t.Errorf("expected effective opening 600, got %s", output.OpeningBalance)
		}
		if len(output.Rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(output.Rows))
		}
		if !output.Rows[0].Balance.Equal(mustDec(t, "560")) {
			t.Errorf("expected row balance 560, got %s", output.Rows[0].Balance)
		}
		if !output.ClosingBalance.Equal(mustDec(t, "560")) {
			t.Errorf("expected closing 560, got %s", output.ClosingBalance)
		}
	})

	t.Run("bank scope excludes cash records", func(t *testing.T) {
		uc := newUseCase(nil)
		output, err := uc.Execute(context.Background(), BuildStatementInput{Scope: ScopeBank, BankID: &bankID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, row := range output.Rows {
			if row.Details == "Ramesh" {
				t.Error("cash salary must not appear in a bank statement")
			}
		}
	})

	t.Run("cash scope without cash entry starts from zero", func(t *testing.T) {
		uc := newUseCase(nil)
		output, err := uc.Execute(context.Background(), BuildStatementInput{Scope: ScopeCash})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.OpeningBalance.Equal(decimal.Zero) {
			t.Errorf("expected zero opening, got %s", output.OpeningBalance)
		}
		if !output.ClosingBalance.Equal(mustDec(t, "-75")) {
			t.Errorf("expected closing -75, got %s", output.ClosingBalance)
		}
	})

	t.Run("all scope combines bank and cash books", func(t *testing.T) {
		cash := entity.NewCashEntry(decimal.NewFromInt(200), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		uc := newUseCase(cash)
		output, err := uc.Execute(context.Background(), BuildStatementInput{Scope: ScopeAll})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// opening 500 + 200, credit 100, debits 40 + 75
		if !output.ClosingBalance.Equal(mustDec(t, "685")) {
			t.Errorf("expected closing 685, got %s", output.ClosingBalance)
		}
	})

	t.Run("bank scope requires a bank id", func(t *testing.T) {
		uc := newUseCase(nil)
		_, err := uc.Execute(context.Background(), BuildStatementInput{Scope: ScopeBank})
		if !errors.Is(err, domainerror.ErrMissingBankAccount) {
			t.Fatalf("expected missing bank account error, got %v", err)
		}
	})

	t.Run("rejects unknown scope", func(t *testing.T) {
		uc := newUseCase(nil)
		_, err := uc.Execute(context.Background(), BuildStatementInput{Scope: Scope("loans")})
		if !errors.Is(err, domainerror.ErrInvalidPaymentMode) {
			t.Fatalf("expected invalid payment mode error, got %v", err)
		}
	})

	t.Run("rejects inverted date range", func(t *testing.T) {
		from := day(t, "2024-02-01")
		to := day(t, "2024-01-01")
		uc := newUseCase(nil)
		_, err := uc.Execute(context.Background(), BuildStatementInput{Scope: ScopeAll, From: &from, To: &to})
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Fatalf("expected invalid date range error, got %v", err)
		}
	})
}
