// Package statement contains statement-building use cases.
package statement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/domain/ledger"
)

// Scope selects which books a statement covers.
type Scope string

const (
	ScopeBank Scope = "bank"
	ScopeCash Scope = "cash"
	ScopeAll  Scope = "all"
)

// BuildStatementInput represents the input for building a statement.
type BuildStatementInput struct {
	Scope  Scope
	BankID *uuid.UUID // required for ScopeBank
	From   *time.Time
	To     *time.Time
}

// StatementRow represents one line of the statement.
type StatementRow struct {
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	Details     string          `json:"details"`
	Description string          `json:"description"`
	Credit      decimal.Decimal `json:"credit"`
	Debit       decimal.Decimal `json:"debit"`
	Balance     decimal.Decimal `json:"balance"`
}

// SkippedRecord reports a source record excluded from the statement.
type SkippedRecord struct {
	SourceID string `json:"source_id"`
	Type     string `json:"type"`
	Reason   string `json:"reason"`
}

// BuildStatementOutput represents the built statement.
type BuildStatementOutput struct {
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Rows           []StatementRow  `json:"rows"`
	TotalCredit    decimal.Decimal `json:"total_credit"`
	TotalDebit     decimal.Decimal `json:"total_debit"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	Skipped        []SkippedRecord `json:"skipped,omitempty"`
}

// BuildStatementUseCase builds a reconciled statement for a bank account,
// the cash book, or both combined.
type BuildStatementUseCase struct {
	bankRepo        adapter.BankAccountRepository
	cashRepo        adapter.CashEntryRepository
	companyBillRepo adapter.CompanyBillRepository
	buyerBillRepo   adapter.BuyerBillRepository
	salaryRepo      adapter.SalaryRepository
	otherTxnRepo    adapter.OtherTransactionRepository
}

// NewBuildStatementUseCase creates a new BuildStatementUseCase instance.
func NewBuildStatementUseCase(
	bankRepo adapter.BankAccountRepository,
	cashRepo adapter.CashEntryRepository,
	companyBillRepo adapter.CompanyBillRepository,
	buyerBillRepo adapter.BuyerBillRepository,
	salaryRepo adapter.SalaryRepository,
	otherTxnRepo adapter.OtherTransactionRepository,
) *BuildStatementUseCase {
	return &BuildStatementUseCase{
		bankRepo:        bankRepo,
		cashRepo:        cashRepo,
		companyBillRepo: companyBillRepo,
		buyerBillRepo:   buyerBillRepo,
		salaryRepo:      salaryRepo,
		otherTxnRepo:    otherTxnRepo,
	}
}

// Execute builds the statement for the requested scope and window.
func (uc *BuildStatementUseCase) Execute(
	ctx context.Context,
	input BuildStatementInput,
) (*BuildStatementOutput, error) {
	filter, err := uc.buildFilter(input)
	if err != nil {
		return nil, err
	}

	raw, err := CollectRawRecords(ctx, filter,
		uc.companyBillRepo, uc.buyerBillRepo, uc.salaryRepo, uc.otherTxnRepo)
	if err != nil {
		return nil, err
	}

	opening, err := uc.collectOpeningRecords(ctx, input)
	if err != nil {
		return nil, err
	}
	raw = append(raw, opening...)

	txns, skipped := ledger.NormalizeAll(raw)

	stmt, err := ledger.Reconcile(txns, decimal.Zero, input.From, input.To)
	if err != nil {
		return nil, err
	}

	return buildOutput(stmt, skipped), nil
}

func (uc *BuildStatementUseCase) buildFilter(input BuildStatementInput) (adapter.RecordFilter, error) {
	filter := adapter.RecordFilter{From: input.From, To: input.To}

	switch input.Scope {
	case ScopeBank:
		if input.BankID == nil {
			return filter, domainerror.NewBankingError(
				domainerror.ErrCodeMissingBankAccount,
				"bank is required for bank scope",
				domainerror.ErrMissingBankAccount,
			)
		}
		mode := entity.PaymentModeBank
		filter.PaymentMode = &mode
		filter.BankID = input.BankID
	case ScopeCash:
		mode := entity.PaymentModeCash
		filter.PaymentMode = &mode
	case ScopeAll:
		// no payment-mode restriction
	default:
		return filter, domainerror.NewBankingError(
			domainerror.ErrCodeInvalidPaymentMode,
			fmt.Sprintf("unknown statement scope %q", input.Scope),
			domainerror.ErrInvalidPaymentMode,
		)
	}

	// The date window is applied by the reconciler so pre-window activity
	// still folds into the opening balance.
	filter.From = nil
	filter.To = nil

	return filter, nil
}

// collectOpeningRecords turns the relevant opening balances into
// opening-balance raw records for the reconciler to partition out.
func (uc *BuildStatementUseCase) collectOpeningRecords(
	ctx context.Context,
	input BuildStatementInput,
) ([]ledger.RawRecord, error) {
	var records []ledger.RawRecord

	if input.Scope == ScopeBank || input.Scope == ScopeAll {
		if input.Scope == ScopeBank {
			account, err := uc.bankRepo.FindByID(ctx, *input.BankID)
			if err != nil {
				return nil, err
			}
			records = append(records, openingRecord(account.ID.String(), account.OpeningDate, account.OpeningBalance))
		} else {
			accounts, err := uc.bankRepo.FindAll(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to list bank accounts: %w", err)
			}
			for _, account := range accounts {
				records = append(records, openingRecord(account.ID.String(), account.OpeningDate, account.OpeningBalance))
			}
		}
	}

	if input.Scope == ScopeCash || input.Scope == ScopeAll {
		entry, err := uc.cashRepo.Find(ctx)
		switch {
		case err == nil:
			records = append(records, openingRecord(entry.ID.String(), entry.OpeningDate, entry.OpeningBalance))
		case errors.Is(err, domainerror.ErrCashEntryNotFound):
			// A missing cash entry means a zero opening balance, not a failure.
		default:
			return nil, err
		}
	}

	return records, nil
}

func openingRecord(sourceID string, date time.Time, balance decimal.Decimal) ledger.RawRecord {
	return ledger.RawRecord{
		SourceID: sourceID,
		Type:     ledger.RecordTypeOpeningBalance,
		Date:     date.Format("2006-01-02"),
		Amount:   balance.String(),
		Credit:   true,
		Details:  "Opening Balance",
	}
}

func buildOutput(stmt *ledger.Statement, skipped []ledger.SkippedRecord) *BuildStatementOutput {
	output := &BuildStatementOutput{
		OpeningBalance: stmt.OpeningBalance,
		Rows:           make([]StatementRow, 0, len(stmt.Rows)),
		TotalCredit:    stmt.TotalCredit,
		TotalDebit:     stmt.TotalDebit,
		ClosingBalance: stmt.ClosingBalance,
	}
	for _, row := range stmt.Rows {
		output.Rows = append(output.Rows, StatementRow{
			Date:        row.Date,
			Type:        string(row.Type),
			Details:     row.Details,
			Description: row.Description,
			Credit:      row.Credit,
			Debit:       row.Debit,
			Balance:     row.Balance,
		})
	}
	for _, skip := range skipped {
		output.Skipped = append(output.Skipped, SkippedRecord{
			SourceID: skip.SourceID,
			Type:     string(skip.Type),
			Reason:   skip.Reason.Error(),
		})
	}
	return output
}
