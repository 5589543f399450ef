package banking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// SetCashEntryInput represents the input for setting the cash opening balance.
type SetCashEntryInput struct {
	OpeningBalance decimal.Decimal
	OpeningDate    time.Time
}

// SetCashEntryUseCase creates the single cash opening entry, or updates it
// when one already exists.
type SetCashEntryUseCase struct {
	cashRepo    adapter.CashEntryRepository
	reportCache adapter.ReportCache
}

// NewSetCashEntryUseCase creates a new SetCashEntryUseCase instance.
func NewSetCashEntryUseCase(
	cashRepo adapter.CashEntryRepository,
	reportCache adapter.ReportCache,
) *SetCashEntryUseCase {
	return &SetCashEntryUseCase{cashRepo: cashRepo, reportCache: reportCache}
}

// Execute sets the cash opening balance.
func (uc *SetCashEntryUseCase) Execute(
	ctx context.Context,
	input SetCashEntryInput,
) (*entity.CashEntry, error) {
	openingDate := input.OpeningDate
	if openingDate.IsZero() {
		openingDate = time.Now().UTC()
	}

	existing, err := uc.cashRepo.Find(ctx)
	switch {
	case err == nil:
		existing.OpeningBalance = input.OpeningBalance
		existing.OpeningDate = openingDate
		existing.UpdatedAt = time.Now().UTC()
		if err := uc.cashRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update cash entry: %w", err)
		}
		invalidateReports(ctx, uc.reportCache)
		return existing, nil
	case errors.Is(err, domainerror.ErrCashEntryNotFound):
		entry := entity.NewCashEntry(input.OpeningBalance, openingDate)
		if err := uc.cashRepo.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create cash entry: %w", err)
		}
		invalidateReports(ctx, uc.reportCache)
		return entry, nil
	default:
		return nil, err
	}
}

// GetCashEntryUseCase returns the cash opening entry.
type GetCashEntryUseCase struct {
	cashRepo adapter.CashEntryRepository
}

// NewGetCashEntryUseCase creates a new GetCashEntryUseCase instance.
func NewGetCashEntryUseCase(cashRepo adapter.CashEntryRepository) *GetCashEntryUseCase {
	return &GetCashEntryUseCase{cashRepo: cashRepo}
}

// Execute returns the entry, or ErrCashEntryNotFound when none exists yet.
func (uc *GetCashEntryUseCase) Execute(ctx context.Context) (*entity.CashEntry, error) {
	return uc.cashRepo.Find(ctx)
}
