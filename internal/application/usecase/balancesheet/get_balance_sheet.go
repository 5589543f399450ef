package balancesheet

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/ledger"
)

// DefaultCacheTTL bounds staleness if an invalidation is ever missed.
const DefaultCacheTTL = 15 * time.Minute

// GetBalanceSheetInput represents the input for getting a balance sheet.
type GetBalanceSheetInput struct {
	FinancialYear string // "YYYY-YYYY", defaults to the current financial year
}

// EntryOutput is one aggregated balance-sheet line.
type EntryOutput struct {
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	Interactive bool            `json:"interactive"`
}

// SectionOutput is one balance-sheet category.
type SectionOutput struct {
	Name    string          `json:"name"`
	Entries []EntryOutput   `json:"entries"`
	Total   decimal.Decimal `json:"total"`
}

// GetBalanceSheetOutput represents the rendered balance sheet.
type GetBalanceSheetOutput struct {
	FinancialYear string          `json:"financial_year"`
	Sections      []SectionOutput `json:"sections"`
}

// GetBalanceSheetUseCase renders the balance sheet for a financial year,
// serving from the report cache when possible.
type GetBalanceSheetUseCase struct {
	builder  *sectionBuilder
	cache    adapter.ReportCache
	cacheTTL time.Duration
	now      func() time.Time
}

// NewGetBalanceSheetUseCase creates a new GetBalanceSheetUseCase instance.
func NewGetBalanceSheetUseCase(
	invoiceRepo adapter.InvoiceRepository,
	buyerBillRepo adapter.BuyerBillRepository,
	companyBillRepo adapter.CompanyBillRepository,
	salaryRepo adapter.SalaryRepository,
	otherTxnRepo adapter.OtherTransactionRepository,
	cache adapter.ReportCache,
) *GetBalanceSheetUseCase {
	return &GetBalanceSheetUseCase{
		builder: &sectionBuilder{
			invoiceRepo:     invoiceRepo,
			buyerBillRepo:   buyerBillRepo,
			companyBillRepo: companyBillRepo,
			salaryRepo:      salaryRepo,
			otherTxnRepo:    otherTxnRepo,
		},
		cache:    cache,
		cacheTTL: DefaultCacheTTL,
		now:      time.Now,
	}
}

// WithCacheTTL overrides the default cache TTL. Zero or negative values
// keep the default.
func (uc *GetBalanceSheetUseCase) WithCacheTTL(ttl time.Duration) *GetBalanceSheetUseCase {
	if ttl > 0 {
		uc.cacheTTL = ttl
	}
	return uc
}

// Execute returns the balance sheet for the requested financial year.
func (uc *GetBalanceSheetUseCase) Execute(
	ctx context.Context,
	input GetBalanceSheetInput,
) (*GetBalanceSheetOutput, error) {
	fy, err := uc.resolveYear(input.FinancialYear)
	if err != nil {
		return nil, err
	}

	if cached := uc.fromCache(ctx, fy.Label()); cached != nil {
		return cached, nil
	}

	report, err := uc.builder.report(ctx, fy)
	if err != nil {
		return nil, err
	}

	output := buildReportOutput(fy.Label(), report)
	uc.toCache(ctx, fy.Label(), output)
	return output, nil
}

func (uc *GetBalanceSheetUseCase) resolveYear(label string) (ledger.FinancialYear, error) {
	if label == "" {
		return ledger.ResolveFinancialYear(uc.now().UTC()), nil
	}
	return ledger.ParseFinancialYear(label)
}

// Cache failures degrade to a fresh build, never to a request failure.
func (uc *GetBalanceSheetUseCase) fromCache(ctx context.Context, year string) *GetBalanceSheetOutput {
	if uc.cache == nil {
		return nil
	}
	payload, err := uc.cache.Get(ctx, year)
	if err != nil {
		slog.Warn("balance sheet cache read failed", "financial_year", year, "error", err)
		return nil
	}
	if payload == nil {
		return nil
	}
	var output GetBalanceSheetOutput
	if err := json.Unmarshal(payload, &output); err != nil {
		slog.Warn("balance sheet cache payload corrupt", "financial_year", year, "error", err)
		return nil
	}
	return &output
}

func (uc *GetBalanceSheetUseCase) toCache(ctx context.Context, year string, output *GetBalanceSheetOutput) {
	if uc.cache == nil {
		return
	}
	payload, err := json.Marshal(output)
	if err != nil {
		slog.Warn("balance sheet cache encode failed", "financial_year", year, "error", err)
		return
	}
	if err := uc.cache.Set(ctx, year, payload, uc.cacheTTL); err != nil {
		slog.Warn("balance sheet cache write failed", "financial_year", year, "error", err)
	}
}

func buildReportOutput(year string, report *ledger.BalanceSheetReport) *GetBalanceSheetOutput {
	output := &GetBalanceSheetOutput{
		FinancialYear: year,
		Sections:      make([]SectionOutput, 0, len(report.Sections)),
	}
	for _, section := range report.Sections {
		out := SectionOutput{
			Name:    section.Name,
			Entries: make([]EntryOutput, 0, len(section.Entries)),
			Total:   section.Total,
		}
		for _, entry := range section.Entries {
			out.Entries = append(out.Entries, EntryOutput{
				Label:       entry.Label,
				Amount:      entry.Amount,
				Interactive: entry.Interactive,
			})
		}
		output.Sections = append(output.Sections, out)
	}
	return output
}
