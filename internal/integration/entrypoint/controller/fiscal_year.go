package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerbook/backend/internal/application/usecase/fiscalyear"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// FiscalYearController handles financial year endpoints.
type FiscalYearController struct {
	listUseCase *fiscalyear.ListFinancialYearsUseCase
}

// NewFiscalYearController creates a new fiscal year controller instance.
func NewFiscalYearController(listUseCase *fiscalyear.ListFinancialYearsUseCase) *FiscalYearController {
	return &FiscalYearController{listUseCase: listUseCase}
}

// List handles GET /financial-years requests.
func (c *FiscalYearController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialYearListResponse(output))
}
