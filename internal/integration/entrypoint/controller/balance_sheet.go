package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerbook/backend/internal/application/usecase/balancesheet"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// BalanceSheetController handles balance-sheet endpoints.
type BalanceSheetController struct {
	getUseCase      *balancesheet.GetBalanceSheetUseCase
	snapshotUseCase *balancesheet.SnapshotBalanceSheetUseCase
}

// NewBalanceSheetController creates a new balance sheet controller instance.
func NewBalanceSheetController(
	getUseCase *balancesheet.GetBalanceSheetUseCase,
	snapshotUseCase *balancesheet.SnapshotBalanceSheetUseCase,
) *BalanceSheetController {
	return &BalanceSheetController{
		getUseCase:      getUseCase,
		snapshotUseCase: snapshotUseCase,
	}
}

// Get handles GET /balance-sheet requests.
// An empty financial_year defaults to the current financial year.
func (c *BalanceSheetController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), balancesheet.GetBalanceSheetInput{
		FinancialYear: ctx.Query("financial_year"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceSheetResponse(output))
}

// Snapshot handles POST /balance-sheet/snapshots requests.
// It freezes the current report for the year, replacing any earlier snapshot.
func (c *BalanceSheetController) Snapshot(ctx *gin.Context) {
	var req struct {
		FinancialYear string `json:"financial_year,omitempty"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	output, err := c.snapshotUseCase.Execute(ctx.Request.Context(), balancesheet.SnapshotBalanceSheetInput{
		FinancialYear: req.FinancialYear,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSnapshotBalanceSheetResponse(output))
}
