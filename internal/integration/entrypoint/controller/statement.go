package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/usecase/accountstatement"
	"github.com/ledgerbook/backend/internal/application/usecase/statement"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// StatementController handles statement endpoints.
type StatementController struct {
	buildUseCase        *statement.BuildStatementUseCase
	buildAccountUseCase *accountstatement.BuildAccountStatementUseCase
}

// NewStatementController creates a new statement controller instance.
func NewStatementController(
	buildUseCase *statement.BuildStatementUseCase,
	buildAccountUseCase *accountstatement.BuildAccountStatementUseCase,
) *StatementController {
	return &StatementController{
		buildUseCase:        buildUseCase,
		buildAccountUseCase: buildAccountUseCase,
	}
}

// Build handles GET /statements requests.
// Scope selects the books: "bank" (requires bank_id), "cash" or "all".
func (c *StatementController) Build(ctx *gin.Context) {
	from, to, err := parseWindow(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := statement.BuildStatementInput{
		Scope: statement.Scope(ctx.DefaultQuery("scope", string(statement.ScopeAll))),
		From:  from,
		To:    to,
	}

	if bankIDStr := ctx.Query("bank_id"); bankIDStr != "" {
		bankID, err := uuid.Parse(bankIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid bank ID format"})
			return
		}
		input.BankID = &bankID
	}

	output, err := c.buildUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatementResponse(output))
}

// BuildAccount handles GET /account-statements requests.
// It reconciles every movement against a single buyer.
func (c *StatementController) BuildAccount(ctx *gin.Context) {
	buyerName := ctx.Query("buyer")
	if buyerName == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "buyer query parameter is required"})
		return
	}

	from, to, err := parseWindow(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.buildAccountUseCase.Execute(ctx.Request.Context(), accountstatement.BuildAccountStatementInput{
		BuyerName: buyerName,
		From:      from,
		To:        to,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountStatementResponse(output))
}
