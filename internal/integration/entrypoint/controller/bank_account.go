package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/usecase/banking"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// BankAccountController handles bank account endpoints.
type BankAccountController struct {
	createUseCase *banking.CreateBankAccountUseCase
	listUseCase   *banking.ListBankAccountsUseCase
	updateUseCase *banking.UpdateBankAccountUseCase
	deleteUseCase *banking.DeleteBankAccountUseCase
}

// NewBankAccountController creates a new bank account controller instance.
func NewBankAccountController(
	createUseCase *banking.CreateBankAccountUseCase,
	listUseCase *banking.ListBankAccountsUseCase,
	updateUseCase *banking.UpdateBankAccountUseCase,
	deleteUseCase *banking.DeleteBankAccountUseCase,
) *BankAccountController {
	return &BankAccountController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /bank-accounts requests.
func (c *BankAccountController) Create(ctx *gin.Context) {
	var req dto.CreateBankAccountRequest
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

	output, err := c.createUseCase.Execute(ctx.Request.Context(), banking.CreateBankAccountInput{
		Name:           req.Name,
		AccountNumber:  req.AccountNumber,
		OpeningBalance: balance,
		OpeningDate:    date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBankAccountResponse(output))
}

// List handles GET /bank-accounts requests.
func (c *BankAccountController) List(ctx *gin.Context) {
	accounts, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankAccountListResponse(accounts))
}

// Update handles PUT /bank-accounts/:id requests.
func (c *BankAccountController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid bank account ID format"})
		return
	}

	var req dto.UpdateBankAccountRequest
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

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), banking.UpdateBankAccountInput{
		ID:             id,
		Name:           req.Name,
		AccountNumber:  req.AccountNumber,
		OpeningBalance: balance,
		OpeningDate:    date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBankAccountResponse(output))
}

// Delete handles DELETE /bank-accounts/:id requests.
func (c *BankAccountController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid bank account ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
