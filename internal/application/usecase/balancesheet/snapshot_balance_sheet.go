package balancesheet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	"github.com/ledgerbook/backend/internal/domain/ledger"
)

// SnapshotBalanceSheetInput represents the input for freezing a balance sheet.
type SnapshotBalanceSheetInput struct {
	FinancialYear string // defaults to the current financial year
}

// SnapshotBalanceSheetOutput represents the stored snapshot.
type SnapshotBalanceSheetOutput struct {
	ID            string                 `json:"id"`
	FinancialYear string                 `json:"financial_year"`
	Report        *GetBalanceSheetOutput `json:"report"`
	CreatedAt     time.Time              `json:"created_at"`
}

// SnapshotBalanceSheetUseCase builds a fresh balance sheet and persists it as
// a frozen copy for the year, replacing any earlier snapshot.
type SnapshotBalanceSheetUseCase struct {
	builder      *sectionBuilder
	snapshotRepo adapter.BalanceSheetSnapshotRepository
	now          func() time.Time
}

// NewSnapshotBalanceSheetUseCase creates a new SnapshotBalanceSheetUseCase instance.
func NewSnapshotBalanceSheetUseCase(
	invoiceRepo adapter.InvoiceRepository,
	buyerBillRepo adapter.BuyerBillRepository,
	companyBillRepo adapter.CompanyBillRepository,
	salaryRepo adapter.SalaryRepository,
	otherTxnRepo adapter.OtherTransactionRepository,
	snapshotRepo adapter.BalanceSheetSnapshotRepository,
) *SnapshotBalanceSheetUseCase {
	return &SnapshotBalanceSheetUseCase{
		builder: &sectionBuilder{
			invoiceRepo:     invoiceRepo,
			buyerBillRepo:   buyerBillRepo,
			companyBillRepo: companyBillRepo,
			salaryRepo:      salaryRepo,
			otherTxnRepo:    otherTxnRepo,
		},
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

// Execute freezes the balance sheet for the requested financial year.
func (uc *SnapshotBalanceSheetUseCase) Execute(
	ctx context.Context,
	input SnapshotBalanceSheetInput,
) (*SnapshotBalanceSheetOutput, error) {
	var fy ledger.FinancialYear
	var err error
	if input.FinancialYear == "" {
		fy = ledger.ResolveFinancialYear(uc.now().UTC())
	} else {
		fy, err = ledger.ParseFinancialYear(input.FinancialYear)
		if err != nil {
			return nil, err
		}
	}

	report, err := uc.builder.report(ctx, fy)
	if err != nil {
		return nil, err
	}

	output := buildReportOutput(fy.Label(), report)
	payload, err := json.Marshal(output)
	if err != nil {
		return nil, fmt.Errorf("failed to encode balance sheet: %w", err)
	}

	snapshot := entity.NewBalanceSheetSnapshot(fy.Label(), payload)
	if err := uc.snapshotRepo.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to save balance sheet snapshot: %w", err)
	}

	return &SnapshotBalanceSheetOutput{
		ID:            snapshot.ID.String(),
		FinancialYear: snapshot.FinancialYear,
		Report:        output,
		CreatedAt:     snapshot.CreatedAt,
	}, nil
}
