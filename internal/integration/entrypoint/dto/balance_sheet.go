package dto

import (
	"time"

	"github.com/ledgerbook/backend/internal/application/usecase/balancesheet"
)

// BalanceSheetEntryResponse represents one aggregated balance-sheet line.
type BalanceSheetEntryResponse struct {
	Label       string `json:"label"`
	Amount      string `json:"amount"`
	Interactive bool   `json:"interactive"`
}

// BalanceSheetSectionResponse represents one balance-sheet category.
type BalanceSheetSectionResponse struct {
	Name    string                      `json:"name"`
	Entries []BalanceSheetEntryResponse `json:"entries"`
	Total   string                      `json:"total"`
}

// BalanceSheetResponse represents the rendered balance sheet.
type BalanceSheetResponse struct {
	FinancialYear string                        `json:"financial_year"`
	Sections      []BalanceSheetSectionResponse `json:"sections"`
}

// ToBalanceSheetResponse converts a GetBalanceSheetOutput to a BalanceSheetResponse DTO.
func ToBalanceSheetResponse(output *balancesheet.GetBalanceSheetOutput) BalanceSheetResponse {
	response := BalanceSheetResponse{
		FinancialYear: output.FinancialYear,
		Sections:      make([]BalanceSheetSectionResponse, 0, len(output.Sections)),
	}
	for _, section := range output.Sections {
		entries := make([]BalanceSheetEntryResponse, 0, len(section.Entries))
		for _, entry := range section.Entries {
			entries = append(entries, BalanceSheetEntryResponse{
				Label:       entry.Label,
				Amount:      entry.Amount.StringFixed(2),
				Interactive: entry.Interactive,
			})
		}
		response.Sections = append(response.Sections, BalanceSheetSectionResponse{
			Name:    section.Name,
			Entries: entries,
			Total:   section.Total.StringFixed(2),
		})
	}
	return response
}

// SnapshotBalanceSheetResponse represents a stored balance-sheet snapshot.
type SnapshotBalanceSheetResponse struct {
	ID            string               `json:"id"`
	FinancialYear string               `json:"financial_year"`
	Report        BalanceSheetResponse `json:"report"`
	CreatedAt     time.Time            `json:"created_at"`
}

// ToSnapshotBalanceSheetResponse converts a SnapshotBalanceSheetOutput to its DTO.
func ToSnapshotBalanceSheetResponse(output *balancesheet.SnapshotBalanceSheetOutput) SnapshotBalanceSheetResponse {
	return SnapshotBalanceSheetResponse{
		ID:            output.ID,
		FinancialYear: output.FinancialYear,
		Report:        ToBalanceSheetResponse(output.Report),
		CreatedAt:     output.CreatedAt,
	}
}
