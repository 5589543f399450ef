package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// BankAccountRepository defines persistence operations for bank accounts.
type BankAccountRepository interface {
	Create(ctx context.Context, account *entity.BankAccount) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error)
	FindAll(ctx context.Context) ([]*entity.BankAccount, error)
	Update(ctx context.Context, account *entity.BankAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CashEntryRepository defines persistence operations for the cash opening entry.
type CashEntryRepository interface {
	Create(ctx context.Context, entry *entity.CashEntry) error

	// Find returns the single cash entry, or ErrCashEntryNotFound.
	Find(ctx context.Context) (*entity.CashEntry, error)
	Update(ctx context.Context, entry *entity.CashEntry) error
}
