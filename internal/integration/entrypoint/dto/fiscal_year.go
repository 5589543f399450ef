package dto

import "github.com/ledgerbook/backend/internal/application/usecase/fiscalyear"

// FinancialYearListResponse represents the selectable financial years.
type FinancialYearListResponse struct {
	Years   []string `json:"years"`
	Current string   `json:"current"`
}

// ToFinancialYearListResponse converts a ListFinancialYearsOutput to its DTO.
func ToFinancialYearListResponse(output *fiscalyear.ListFinancialYearsOutput) FinancialYearListResponse {
	return FinancialYearListResponse{
		Years:   output.Years,
		Current: output.Current,
	}
}
