// Package fiscalyear contains the financial-year listing use case.
package fiscalyear

import (
	"context"
	"time"

	"github.com/ledgerbook/backend/internal/domain/ledger"
)

// ListFinancialYearsOutput represents the enumerated financial years.
type ListFinancialYearsOutput struct {
	Current string   `json:"current"`
	Years   []string `json:"years"`
}

// ListFinancialYearsUseCase enumerates the selectable financial years from
// the first tracked year through the current one.
type ListFinancialYearsUseCase struct {
	now func() time.Time
}

// NewListFinancialYearsUseCase creates a new ListFinancialYearsUseCase instance.
func NewListFinancialYearsUseCase() *ListFinancialYearsUseCase {
	return &ListFinancialYearsUseCase{now: time.Now}
}

// Execute lists the years, oldest first.
func (uc *ListFinancialYearsUseCase) Execute(ctx context.Context) (*ListFinancialYearsOutput, error) {
	current := ledger.ResolveFinancialYear(uc.now().UTC())

	years := ledger.EnumerateFinancialYears(ledger.EarliestFinancialYear, current.StartYear)
	labels := make([]string, 0, len(years))
	for _, fy := range years {
		labels = append(labels, fy.Label())
	}

	return &ListFinancialYearsOutput{
		Current: current.Label(),
		Years:   labels,
	}, nil
}
