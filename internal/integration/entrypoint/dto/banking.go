package dto

import (
	"time"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CreateBankAccountRequest represents the request body for bank account creation.
type CreateBankAccountRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=255"`
	AccountNumber  string `json:"account_number" binding:"required,min=1,max=64"`
	OpeningBalance string `json:"opening_balance" binding:"required"`
	OpeningDate    string `json:"opening_date" binding:"required"`
}

// UpdateBankAccountRequest represents the request body for bank account update.
type UpdateBankAccountRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=255"`
	AccountNumber  string `json:"account_number" binding:"required,min=1,max=64"`
	OpeningBalance string `json:"opening_balance" binding:"required"`
	OpeningDate    string `json:"opening_date" binding:"required"`
}

// BankAccountResponse represents a bank account in API responses.
type BankAccountResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	AccountNumber  string    `json:"account_number"`
	OpeningBalance string    `json:"opening_balance"`
	OpeningDate    string    `json:"opening_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BankAccountListResponse represents the response for listing bank accounts.
type BankAccountListResponse struct {
	Accounts []BankAccountResponse `json:"accounts"`
}

// ToBankAccountResponse converts a BankAccount entity to its DTO.
func ToBankAccountResponse(account *entity.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:             account.ID.String(),
		Name:           account.Name,
		AccountNumber:  account.AccountNumber,
		OpeningBalance: account.OpeningBalance.StringFixed(2),
		OpeningDate:    account.OpeningDate.Format("2006-01-02"),
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}

// ToBankAccountListResponse converts bank account entities to a list DTO.
func ToBankAccountListResponse(accounts []*entity.BankAccount) BankAccountListResponse {
	response := BankAccountListResponse{Accounts: make([]BankAccountResponse, 0, len(accounts))}
	for _, account := range accounts {
		response.Accounts = append(response.Accounts, ToBankAccountResponse(account))
	}
	return response
}

// SetCashEntryRequest represents the request body for setting the cash
// opening balance.
type SetCashEntryRequest struct {
	OpeningBalance string `json:"opening_balance" binding:"required"`
	OpeningDate    string `json:"opening_date" binding:"required"`
}

// CashEntryResponse represents the cash opening entry in API responses.
type CashEntryResponse struct {
	ID             string    `json:"id"`
	OpeningBalance string    `json:"opening_balance"`
	OpeningDate    string    `json:"opening_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToCashEntryResponse converts a CashEntry entity to its DTO.
func ToCashEntryResponse(entry *entity.CashEntry) CashEntryResponse {
	return CashEntryResponse{
		ID:             entry.ID.String(),
		OpeningBalance: entry.OpeningBalance.StringFixed(2),
		OpeningDate:    entry.OpeningDate.Format("2006-01-02"),
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
}

// RecordRequest represents the shared request body for bills, salaries and
// other transactions.
type RecordRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=1000"`
	PaymentMode string  `json:"payment_mode" binding:"required,oneof=bank cash"`
	BankID      *string `json:"bank_id,omitempty"`
	// Other transactions only.
	TypeName  string `json:"type_name,omitempty"`
	Direction string `json:"direction,omitempty" binding:"omitempty,oneof=credit debit"`
}

// RecordResponse represents a ledger record in API responses.
type RecordResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	PaymentMode string    `json:"payment_mode"`
	BankID      *string   `json:"bank_id,omitempty"`
	TypeName    string    `json:"type_name,omitempty"`
	Direction   string    `json:"direction,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RecordListResponse represents the response for listing ledger records.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
}

// ToCompanyBillResponse converts a CompanyBill entity to a RecordResponse DTO.
func ToCompanyBillResponse(bill *entity.CompanyBill) RecordResponse {
	return RecordResponse{
		ID:          bill.ID.String(),
		Name:        bill.CompanyName,
		Amount:      bill.Amount.StringFixed(2),
		Date:        bill.Date.Format("2006-01-02"),
		Description: bill.Description,
		PaymentMode: string(bill.PaymentMode),
		BankID:      uuidToString(bill.BankID),
		CreatedAt:   bill.CreatedAt,
		UpdatedAt:   bill.UpdatedAt,
	}
}

// ToBuyerBillResponse converts a BuyerBill entity to a RecordResponse DTO.
func ToBuyerBillResponse(bill *entity.BuyerBill) RecordResponse {
	return RecordResponse{
		ID:          bill.ID.String(),
		Name:        bill.BuyerName,
		Amount:      bill.Amount.StringFixed(2),
		Date:        bill.Date.Format("2006-01-02"),
		Description: bill.Description,
		PaymentMode: string(bill.PaymentMode),
		BankID:      uuidToString(bill.BankID),
		CreatedAt:   bill.CreatedAt,
		UpdatedAt:   bill.UpdatedAt,
	}
}

// ToSalaryResponse converts a Salary entity to a RecordResponse DTO.
func ToSalaryResponse(salary *entity.Salary) RecordResponse {
	return RecordResponse{
		ID:          salary.ID.String(),
		Name:        salary.EmployeeName,
		Amount:      salary.Amount.StringFixed(2),
		Date:        salary.Date.Format("2006-01-02"),
		Description: salary.Description,
		PaymentMode: string(salary.PaymentMode),
		BankID:      uuidToString(salary.BankID),
		CreatedAt:   salary.CreatedAt,
		UpdatedAt:   salary.UpdatedAt,
	}
}

// ToOtherTransactionResponse converts an OtherTransaction entity to a
// RecordResponse DTO.
func ToOtherTransactionResponse(txn *entity.OtherTransaction) RecordResponse {
	return RecordResponse{
		ID:          txn.ID.String(),
		Name:        txn.Name,
		Amount:      txn.Amount.StringFixed(2),
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		PaymentMode: string(txn.PaymentMode),
		BankID:      uuidToString(txn.BankID),
		TypeName:    txn.TypeName,
		Direction:   string(txn.Direction),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// CreateOtherTypeRequest represents the request body for creating a custom
// transaction type.
type CreateOtherTypeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// OtherTypeListResponse represents the response for listing transaction types.
type OtherTypeListResponse struct {
	Types []string `json:"types"`
}
