// Package balancesheet contains balance-sheet reporting use cases.
package balancesheet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	"github.com/ledgerbook/backend/internal/domain/ledger"
)

// Section names for the fixed balance-sheet categories. Dynamic types get
// "<Type> (Credit)" / "<Type> (Debit)" sections.
const (
	SectionCapital            = "Capital"
	SectionLoanCredit         = "Loan (Credit)"
	SectionLoanDebit          = "Loan (Debit)"
	SectionUnsecureLoanCredit = "Unsecure Loan (Credit)"
	SectionUnsecureLoanDebit  = "Unsecure Loan (Debit)"
	SectionFixedAssetsCredit  = "Fixed Assets (Credit)"
	SectionFixedAssetsDebit   = "Fixed Assets (Debit)"
	SectionSalary             = "Salary"
	SectionSundryDebtors      = "Sundry Debtors"
	SectionSundryCreditors    = "Sundry Creditors"
)

// carryForwardThreshold drops settled prior-year balances: anything within
// half a rupee of zero is treated as settled.
var carryForwardThreshold = decimal.NewFromFloat(0.50)

// sectionBuilder gathers ledger records for one date window and distributes
// them into balance-sheet sections.
type sectionBuilder struct {
	invoiceRepo     adapter.InvoiceRepository
	buyerBillRepo   adapter.BuyerBillRepository
	companyBillRepo adapter.CompanyBillRepository
	salaryRepo      adapter.SalaryRepository
	otherTxnRepo    adapter.OtherTransactionRepository
}

// addEntries distributes all records in [from, to) windows into sections.
// When carryForward is set, entry labels get the carry-forward marker and
// near-zero balances are dropped as settled.
func (b *sectionBuilder) addEntries(
	ctx context.Context,
	sections map[string][]ledger.Entry,
	from, to *time.Time,
	financialYear string,
	carryForward bool,
) error {
	filter := adapter.RecordFilter{From: from, To: to}

	if err := b.addOtherTransactionEntries(ctx, sections, filter, carryForward); err != nil {
		return err
	}
	if err := b.addSalaryEntries(ctx, sections, filter, carryForward); err != nil {
		return err
	}
	if err := b.addSundryEntries(ctx, sections, from, to, carryForward); err != nil {
		return err
	}
	if err := b.addHiddenInvoiceEntries(ctx, sections, financialYear, carryForward); err != nil {
		return err
	}
	return nil
}

// addOtherTransactionEntries handles partners, loans, fixed assets, expenses
// and custom-typed transactions.
func (b *sectionBuilder) addOtherTransactionEntries(
	ctx context.Context,
	sections map[string][]ledger.Entry,
	filter adapter.RecordFilter,
	carryForward bool,
) error {
	txns, err := b.otherTxnRepo.FindByFilter(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list other transactions: %w", err)
	}

	// name -> net signed amount, per logical category
	type bucket struct {
		creditSection string
		debitSection  string
		net           map[string]decimal.Decimal
		order         []string
	}
	newBucket := func(credit, debit string) *bucket {
		return &bucket{creditSection: credit, debitSection: debit, net: map[string]decimal.Decimal{}}
	}
	capital := newBucket(SectionCapital, SectionCapital)
	loans := newBucket(SectionLoanCredit, SectionLoanDebit)
	unsecure := newBucket(SectionUnsecureLoanCredit, SectionUnsecureLoanDebit)
	fixedAssets := newBucket(SectionFixedAssetsCredit, SectionFixedAssetsDebit)
	custom := map[string]*bucket{}
	customOrder := []string{}

	accumulate := func(bk *bucket, name string, amount decimal.Decimal) {
		if _, ok := bk.net[name]; !ok {
			bk.order = append(bk.order, name)
		}
		bk.net[name] = bk.net[name].Add(amount)
	}

	for _, txn := range txns {
		signed := txn.Amount
		if txn.Direction == entity.OtherTransactionDebit {
			signed = signed.Neg()
		}

		switch strings.ToLower(strings.TrimSpace(txn.TypeName)) {
		case strings.ToLower(entity.OtherTypePartner):
			accumulate(capital, txn.Name, signed)
		case strings.ToLower(entity.OtherTypeLoan):
			accumulate(loans, txn.Name, signed)
		case strings.ToLower(entity.OtherTypeUnsecure):
			accumulate(unsecure, txn.Name, signed)
		case strings.ToLower(entity.OtherTypeFixedAssets):
			accumulate(fixedAssets, txn.Name, signed)
		case strings.ToLower(entity.OtherTypeExpense):
			// expenses always sit on the debit side, merged with salaries later
			label := decorate(txn.Name, carryForward)
			sections["Expense"] = append(sections["Expense"], ledger.Entry{Label: label, Amount: txn.Amount})
		case strings.ToLower(entity.OtherTypeOthers), "":
			// handled by the sundry pass
		default:
			if entity.IsReservedOtherType(txn.TypeName) {
				continue
			}
			typeName := strings.TrimSpace(txn.TypeName)
			bk, ok := custom[typeName]
			if !ok {
				bk = newBucket(typeName+" (Credit)", typeName+" (Debit)")
				custom[typeName] = bk
				customOrder = append(customOrder, typeName)
			}
			accumulate(bk, txn.Name, signed)
		}
	}

	flush := func(bk *bucket) {
		for _, name := range bk.order {
			net := bk.net[name]
			if carryForward && net.Abs().LessThanOrEqual(carryForwardThreshold) {
				continue
			}
			label := decorate(name, carryForward)
			if net.Sign() >= 0 {
				sections[bk.creditSection] = append(sections[bk.creditSection], ledger.Entry{Label: label, Amount: net})
			} else {
				sections[bk.debitSection] = append(sections[bk.debitSection], ledger.Entry{Label: label, Amount: net.Abs()})
			}
		}
	}

	flush(capital)
	flush(loans)
	flush(unsecure)
	flush(fixedAssets)
	for _, typeName := range customOrder {
		flush(custom[typeName])
	}
	return nil
}

func (b *sectionBuilder) addSalaryEntries(
	ctx context.Context,
	sections map[string][]ledger.Entry,
	filter adapter.RecordFilter,
	carryForward bool,
) error {
	salaries, err := b.salaryRepo.FindByFilter(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list salaries: %w", err)
	}

	totals := map[string]decimal.Decimal{}
	var order []string
	for _, salary := range salaries {
		if _, ok := totals[salary.EmployeeName]; !ok {
			order = append(order, salary.EmployeeName)
		}
		totals[salary.EmployeeName] = totals[salary.EmployeeName].Add(salary.Amount)
	}

	for _, name := range order {
		total := totals[name]
		if carryForward && total.Abs().LessThanOrEqual(carryForwardThreshold) {
			continue
		}
		sections[SectionSalary] = append(sections[SectionSalary], ledger.Entry{
			Label:  decorate(name, carryForward),
			Amount: total,
		})
	}
	return nil
}

// addSundryEntries nets each non-reserved counterparty: invoices raise the
// receivable, deposits and credits settle it. Positive nets are debtors,
// negative nets creditors.
func (b *sectionBuilder) addSundryEntries(
	ctx context.Context,
	sections map[string][]ledger.Entry,
	from, to *time.Time,
	carryForward bool,
) error {
	filter := adapter.RecordFilter{From: from, To: to}

	net := map[string]decimal.Decimal{}
	var order []string
	accumulate := func(name string, amount decimal.Decimal) {
		name = strings.TrimSpace(name)
		if name == "" || entity.IsReservedOtherType(name) {
			return
		}
		if _, ok := net[name]; !ok {
			order = append(order, name)
		}
		net[name] = net[name].Add(amount)
	}

	invoices, err := b.invoiceRepo.FindByFilter(ctx, adapter.InvoiceFilter{})
	if err != nil {
		return fmt.Errorf("failed to list invoices: %w", err)
	}
	for _, invoice := range invoices {
		if !inWindow(invoice.InvoiceDate, from, to) {
			continue
		}
		accumulate(invoice.BuyerName, invoice.TotalAmount)
	}

	deposits, err := b.buyerBillRepo.FindByFilter(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list buyer deposits: %w", err)
	}
	for _, deposit := range deposits {
		accumulate(deposit.BuyerName, deposit.Amount.Neg())
	}

	companyBills, err := b.companyBillRepo.FindByFilter(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list company bills: %w", err)
	}
	for _, bill := range companyBills {
		accumulate(bill.CompanyName, bill.Amount.Neg())
	}

	otherTxns, err := b.otherTxnRepo.FindByFilter(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list other transactions: %w", err)
	}
	for _, txn := range otherTxns {
		if txn.Direction != entity.OtherTransactionCredit {
			continue
		}
		// Only untyped and Others settlements count here. Typed entries
		// already live in their own sections.
		typeName := strings.TrimSpace(txn.TypeName)
		if typeName != "" && !strings.EqualFold(typeName, entity.OtherTypeOthers) {
			continue
		}
		accumulate(txn.Name, txn.Amount.Neg())
	}

	for _, name := range order {
		balance := net[name]
		if balance.IsZero() {
			continue
		}
		if carryForward && balance.Abs().LessThanOrEqual(carryForwardThreshold) {
			continue
		}
		label := decorate(name, carryForward)
		if balance.Sign() > 0 {
			sections[SectionSundryDebtors] = append(sections[SectionSundryDebtors], ledger.Entry{Label: label, Amount: balance})
		} else {
			sections[SectionSundryCreditors] = append(sections[SectionSundryCreditors], ledger.Entry{Label: label, Amount: balance.Abs()})
		}
	}
	return nil
}

// addHiddenInvoiceEntries surfaces deleted and archived invoices as
// unsecured-loan debits so written-off receivables stay visible.
func (b *sectionBuilder) addHiddenInvoiceEntries(
	ctx context.Context,
	sections map[string][]ledger.Entry,
	financialYear string,
	carryForward bool,
) error {
	if financialYear == "" {
		return nil
	}
	hidden, err := b.invoiceRepo.FindHiddenByFinancialYear(ctx, financialYear)
	if err != nil {
		return fmt.Errorf("failed to list hidden invoices: %w", err)
	}
	for _, invoice := range hidden {
		label := decorate(fmt.Sprintf("%s (Invoice %s)", invoice.BuyerName, invoice.InvoiceNumber), carryForward)
		sections[SectionUnsecureLoanDebit] = append(sections[SectionUnsecureLoanDebit], ledger.Entry{
			Label:  label,
			Amount: invoice.TotalAmount,
		})
	}
	return nil
}

// report builds the aggregated balance sheet for the financial year:
// a carry-forward pass over everything before the year start, then the
// year's own entries.
func (b *sectionBuilder) report(ctx context.Context, fy ledger.FinancialYear) (*ledger.BalanceSheetReport, error) {
	sections := map[string][]ledger.Entry{}

	fyStart := fy.Start()
	if err := b.addEntries(ctx, sections, nil, &fyStart, "", true); err != nil {
		return nil, err
	}
	for _, prior := range ledger.EnumerateFinancialYears(ledger.EarliestFinancialYear, fy.StartYear-1) {
		if err := b.addHiddenInvoiceEntries(ctx, sections, prior.Label(), true); err != nil {
			return nil, err
		}
	}

	fyEnd := fyStart.AddDate(1, 0, 0)
	if err := b.addEntries(ctx, sections, &fyStart, &fyEnd, fy.Label(), false); err != nil {
		return nil, err
	}

	return ledger.Aggregate(sections), nil
}

func decorate(label string, carryForward bool) string {
	if carryForward {
		return label + " " + ledger.CarryForwardMarker
	}
	return label
}

func inWindow(date time.Time, from, to *time.Time) bool {
	if from != nil && date.Before(*from) {
		return false
	}
	if to != nil && !date.Before(*to) {
		return false
	}
	return true
}
