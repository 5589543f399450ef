package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerbook/backend/internal/application/usecase/banking"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// CashEntryController handles cash opening entry endpoints.
type CashEntryController struct {
	setUseCase *banking.SetCashEntryUseCase
	getUseCase *banking.GetCashEntryUseCase
}

// NewCashEntryController creates a new cash entry controller instance.
func NewCashEntryController(
	setUseCase *banking.SetCashEntryUseCase,
	getUseCase *banking.GetCashEntryUseCase,
) *CashEntryController {
	return &CashEntryController{
		setUseCase: setUseCase,
		getUseCase: getUseCase,
	}
}

// Set handles PUT /cash-entry requests.
// It creates the single cash opening entry or updates the existing one.
func (c *CashEntryController) Set(ctx *gin.Context) {
	var req dto.SetCashEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	balance, err := parseAmount(req.OpeningBalance)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	date, err := parseDate(req.OpeningDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), banking.SetCashEntryInput{
		OpeningBalance: balance,
		OpeningDate:    date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashEntryResponse(output))
}

// Get handles GET /cash-entry requests.
func (c *CashEntryController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashEntryResponse(output))
}
