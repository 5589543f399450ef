package statement

import (
	"context"
	"fmt"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	"github.com/ledgerbook/backend/internal/domain/ledger"
)

const recordDateLayout = "2006-01-02"

// CollectRawRecords gathers every ledger source record matching the filter
// and converts it into the raw form the normalizer accepts. Company bills
// credit the ledger; buyer bills and salaries debit it; other transactions
// carry their own direction.
func CollectRawRecords(
	ctx context.Context,
	filter adapter.RecordFilter,
	companyBillRepo adapter.CompanyBillRepository,
	buyerBillRepo adapter.BuyerBillRepository,
	salaryRepo adapter.SalaryRepository,
	otherTxnRepo adapter.OtherTransactionRepository,
) ([]ledger.RawRecord, error) {
	var records []ledger.RawRecord

	companyBills, err := companyBillRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list company bills: %w", err)
	}
	for _, bill := range companyBills {
		records = append(records, CompanyBillRecord(bill))
	}

	buyerBills, err := buyerBillRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list buyer bills: %w", err)
	}
	for _, bill := range buyerBills {
		records = append(records, BuyerBillRecord(bill))
	}

	salaries, err := salaryRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}
	for _, salary := range salaries {
		records = append(records, SalaryRecord(salary))
	}

	otherTxns, err := otherTxnRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list other transactions: %w", err)
	}
	for _, txn := range otherTxns {
		records = append(records, OtherTransactionRecord(txn))
	}

	return records, nil
}

// CompanyBillRecord converts a company bill into a credit raw record.
func CompanyBillRecord(bill *entity.CompanyBill) ledger.RawRecord {
	return ledger.RawRecord{
		SourceID:    bill.ID.String(),
		Type:        ledger.RecordTypeCompanyBill,
		Date:        bill.Date.Format(recordDateLayout),
		Amount:      bill.Amount.String(),
		Credit:      true,
		Details:     bill.CompanyName,
		Description: bill.Description,
	}
}

// BuyerBillRecord converts a buyer bill into a debit raw record.
func BuyerBillRecord(bill *entity.BuyerBill) ledger.RawRecord {
	return ledger.RawRecord{
		SourceID:    bill.ID.String(),
		Type:        ledger.RecordTypeBuyerBill,
		Date:        bill.Date.Format(recordDateLayout),
		Amount:      bill.Amount.String(),
		Debit:       true,
		Details:     bill.BuyerName,
		Description: bill.Description,
	}
}

// SalaryRecord converts a salary payment into a debit raw record.
func SalaryRecord(salary *entity.Salary) ledger.RawRecord {
	return ledger.RawRecord{
		SourceID:    salary.ID.String(),
		Type:        ledger.RecordTypeSalary,
		Date:        salary.Date.Format(recordDateLayout),
		Amount:      salary.Amount.String(),
		Debit:       true,
		Details:     salary.EmployeeName,
		Description: salary.Description,
	}
}

// OtherTransactionRecord converts an other transaction into a raw record
// carrying its explicit direction.
func OtherTransactionRecord(txn *entity.OtherTransaction) ledger.RawRecord {
	return ledger.RawRecord{
		SourceID:        txn.ID.String(),
		Type:            ledger.RecordTypeOtherTransaction,
		Date:            txn.Date.Format(recordDateLayout),
		Amount:          txn.Amount.String(),
		TransactionType: string(txn.Direction),
		Details:         txn.Name,
		Description:     txn.Description,
	}
}
