// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// RecordFilter narrows ledger source records by window, payment scope and
// counterparty name. Nil/empty fields mean unrestricted. From is inclusive,
// To exclusive.
type RecordFilter struct {
	From        *time.Time
	To          *time.Time
	PaymentMode *entity.PaymentMode
	BankID      *uuid.UUID
	Name        string // exact counterparty match
}

// CompanyBillRepository defines persistence operations for company bills.
type CompanyBillRepository interface {
	Create(ctx context.Context, bill *entity.CompanyBill) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CompanyBill, error)
	FindByFilter(ctx context.Context, filter RecordFilter) ([]*entity.CompanyBill, error)
	Update(ctx context.Context, bill *entity.CompanyBill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BuyerBillRepository defines persistence operations for buyer bills.
type BuyerBillRepository interface {
	Create(ctx context.Context, bill *entity.BuyerBill) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BuyerBill, error)
	FindByFilter(ctx context.Context, filter RecordFilter) ([]*entity.BuyerBill, error)
	Update(ctx context.Context, bill *entity.BuyerBill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SalaryRepository defines persistence operations for salary payments.
type SalaryRepository interface {
	Create(ctx context.Context, salary *entity.Salary) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Salary, error)
	FindByFilter(ctx context.Context, filter RecordFilter) ([]*entity.Salary, error)
	Update(ctx context.Context, salary *entity.Salary) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OtherTransactionRepository defines persistence operations for other transactions.
type OtherTransactionRepository interface {
	Create(ctx context.Context, txn *entity.OtherTransaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OtherTransaction, error)
	FindByFilter(ctx context.Context, filter RecordFilter) ([]*entity.OtherTransaction, error)
	Update(ctx context.Context, txn *entity.OtherTransaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OtherTypeRepository defines persistence operations for custom transaction types.
type OtherTypeRepository interface {
	Create(ctx context.Context, otherType *entity.OtherType) error
	FindAll(ctx context.Context) ([]*entity.OtherType, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
