package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OtherTransactionDirection is the explicit credit/debit marker on an other
// transaction.
type OtherTransactionDirection string

const (
	OtherTransactionCredit OtherTransactionDirection = "credit"
	OtherTransactionDebit  OtherTransactionDirection = "debit"
)

// Built-in other-transaction type names. Users may add custom types on top.
const (
	OtherTypePartner     = "Partner"
	OtherTypeLoan        = "Loan"
	OtherTypeUnsecure    = "Unsecure Loan"
	OtherTypeFixedAssets = "Fixed Assets"
	OtherTypeExpense     = "Expense"
	OtherTypeOthers      = "Others"
)

// ReservedOtherTypes are the type names that map to dedicated balance-sheet
// sections. Entries under these types never count as sundry creditors.
var ReservedOtherTypes = []string{
	OtherTypePartner,
	OtherTypeLoan,
	OtherTypeUnsecure,
	OtherTypeFixedAssets,
	"Assets",
	OtherTypeOthers,
}

// IsReservedOtherType reports whether the type name matches a reserved type,
// case-insensitively.
func IsReservedOtherType(name string) bool {
	for _, reserved := range ReservedOtherTypes {
		if strings.EqualFold(strings.TrimSpace(name), reserved) {
			return true
		}
	}
	return false
}

// OtherTransaction represents a typed ledger movement outside bills and
// salaries: partner capital, loans, asset purchases, expenses and custom
// categories.
type OtherTransaction struct {
	ID          uuid.UUID
	Name        string // counterparty or beneficiary
	TypeName    string // Partner, Loan, Unsecure Loan, Fixed Assets, Expense or custom
	Direction   OtherTransactionDirection
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	PaymentMode PaymentMode
	BankID      *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewOtherTransaction creates a new OtherTransaction entity.
func NewOtherTransaction(
	name string,
	typeName string,
	direction OtherTransactionDirection,
	amount decimal.Decimal,
	date time.Time,
	description string,
	paymentMode PaymentMode,
	bankID *uuid.UUID,
) *OtherTransaction {
	now := time.Now().UTC()

	return &OtherTransaction{
		ID:          uuid.New(),
		Name:        name,
		TypeName:    typeName,
		Direction:   direction,
		Amount:      amount,
		Date:        date,
		Description: description,
		PaymentMode: paymentMode,
		BankID:      bankID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// OtherType is a user-defined other-transaction type name.
type OtherType struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewOtherType creates a new OtherType entity.
func NewOtherType(name string) *OtherType {
	return &OtherType{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
