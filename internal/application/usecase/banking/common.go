// Package banking contains use cases for managing ledger source records:
// bank accounts, the cash entry, bills, salaries and other transactions.
package banking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

func validateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return domainerror.NewBankingError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

// validatePaymentMode checks the mode and, for bank payments, that the
// referenced account exists.
func validatePaymentMode(
	ctx context.Context,
	bankRepo adapter.BankAccountRepository,
	mode entity.PaymentMode,
	bankID *uuid.UUID,
) error {
	switch mode {
	case entity.PaymentModeBank:
		if bankID == nil {
			return domainerror.NewBankingError(
				domainerror.ErrCodeMissingBankAccount,
				"bank account is required for bank payment mode",
				domainerror.ErrMissingBankAccount,
			)
		}
		if _, err := bankRepo.FindByID(ctx, *bankID); err != nil {
			return err
		}
		return nil
	case entity.PaymentModeCash:
		return nil
	default:
		return domainerror.NewBankingError(
			domainerror.ErrCodeInvalidPaymentMode,
			fmt.Sprintf("unknown payment mode %q", mode),
			domainerror.ErrInvalidPaymentMode,
		)
	}
}

// invalidateReports drops cached balance-sheet reports after a ledger write.
func invalidateReports(ctx context.Context, cache adapter.ReportCache) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateAll(ctx); err != nil {
		slog.Warn("report cache invalidation failed", "error", err)
	}
}
