package dto

import (
	"github.com/ledgerbook/backend/internal/application/usecase/accountstatement"
	"github.com/ledgerbook/backend/internal/application/usecase/statement"
)

// StatementRowResponse represents one statement line in API responses.
type StatementRowResponse struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Details     string `json:"details"`
	Description string `json:"description"`
	Credit      string `json:"credit"`
	Debit       string `json:"debit"`
	Balance     string `json:"balance"`
}

// SkippedRecordResponse reports a record excluded from the statement.
type SkippedRecordResponse struct {
	SourceID string `json:"source_id"`
	Type     string `json:"type"`
	Reason   string `json:"reason"`
}

// StatementResponse represents the response for a reconciled statement.
type StatementResponse struct {
	OpeningBalance string                  `json:"opening_balance"`
	Rows           []StatementRowResponse  `json:"rows"`
	TotalCredit    string                  `json:"total_credit"`
	TotalDebit     string                  `json:"total_debit"`
	ClosingBalance string                  `json:"closing_balance"`
	Skipped        []SkippedRecordResponse `json:"skipped,omitempty"`
}

// ToStatementResponse converts a BuildStatementOutput to a StatementResponse DTO.
func ToStatementResponse(output *statement.BuildStatementOutput) StatementResponse {
	response := StatementResponse{
		OpeningBalance: output.OpeningBalance.StringFixed(2),
		Rows:           make([]StatementRowResponse, 0, len(output.Rows)),
		TotalCredit:    output.TotalCredit.StringFixed(2),
		TotalDebit:     output.TotalDebit.StringFixed(2),
		ClosingBalance: output.ClosingBalance.StringFixed(2),
	}
	for _, row := range output.Rows {
		response.Rows = append(response.Rows, StatementRowResponse{
			Date:        row.Date.Format("2006-01-02"),
			Type:        row.Type,
			Details:     row.Details,
			Description: row.Description,
			Credit:      row.Credit.StringFixed(2),
			Debit:       row.Debit.StringFixed(2),
			Balance:     row.Balance.StringFixed(2),
		})
	}
	for _, skip := range output.Skipped {
		response.Skipped = append(response.Skipped, SkippedRecordResponse{
			SourceID: skip.SourceID,
			Type:     skip.Type,
			Reason:   skip.Reason,
		})
	}
	return response
}

// AccountStatementRowResponse represents one account statement line.
type AccountStatementRowResponse struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Credit      string `json:"credit"`
	Debit       string `json:"debit"`
	Balance     string `json:"balance"`
}

// AccountStatementResponse represents the response for a buyer account statement.
type AccountStatementResponse struct {
	BuyerName      string                        `json:"buyer_name"`
	OpeningBalance string                        `json:"opening_balance"`
	Rows           []AccountStatementRowResponse `json:"rows"`
	TotalCredit    string                        `json:"total_credit"`
	TotalDebit     string                        `json:"total_debit"`
	ClosingBalance string                        `json:"closing_balance"`
	Skipped        []SkippedRecordResponse       `json:"skipped,omitempty"`
}

// ToAccountStatementResponse converts a BuildAccountStatementOutput to its DTO.
func ToAccountStatementResponse(output *accountstatement.BuildAccountStatementOutput) AccountStatementResponse {
	response := AccountStatementResponse{
		BuyerName:      output.BuyerName,
		OpeningBalance: output.OpeningBalance.StringFixed(2),
		Rows:           make([]AccountStatementRowResponse, 0, len(output.Rows)),
		TotalCredit:    output.TotalCredit.StringFixed(2),
		TotalDebit:     output.TotalDebit.StringFixed(2),
		ClosingBalance: output.ClosingBalance.StringFixed(2),
	}
	for _, row := range output.Rows {
		response.Rows = append(response.Rows, AccountStatementRowResponse{
			Date:        row.Date.Format("2006-01-02"),
			Type:        row.Type,
			Description: row.Description,
			Credit:      row.Credit.StringFixed(2),
			Debit:       row.Debit.StringFixed(2),
			Balance:     row.Balance.StringFixed(2),
		})
	}
	for _, skip := range output.Skipped {
		response.Skipped = append(response.Skipped, SkippedRecordResponse{
			SourceID: skip.SourceID,
			Type:     skip.Type,
			Reason:   skip.Reason,
		})
	}
	return response
}
