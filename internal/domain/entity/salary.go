package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Salary represents a salary payment to an employee. Salaries debit the
// ledger and roll up into the balance-sheet Expense section by employee name.
type Salary struct {
	ID           uuid.UUID
	EmployeeName string
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	PaymentMode  PaymentMode
	BankID       *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// NewSalary creates a new Salary entity.
func NewSalary(
	employeeName string,
	amount decimal.Decimal,
	date time.Time,
	description string,
	paymentMode PaymentMode,
	bankID *uuid.UUID,
) *Salary {
	now := time.Now().UTC()

	return &Salary{
		ID:           uuid.New(),
		EmployeeName: employeeName,
		Amount:       amount,
		Date:         date,
		Description:  description,
		PaymentMode:  paymentMode,
		BankID:       bankID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
