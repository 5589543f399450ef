package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/usecase/banking"
	"github.com/ledgerbook/backend/internal/domain/entity"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// OtherTransactionController handles miscellaneous transaction endpoints.
type OtherTransactionController struct {
	createUseCase *banking.CreateOtherTransactionUseCase
	listUseCase   *banking.ListOtherTransactionsUseCase
	updateUseCase *banking.UpdateOtherTransactionUseCase
	deleteUseCase *banking.DeleteOtherTransactionUseCase
}

// NewOtherTransactionController creates a new other transaction controller instance.
func NewOtherTransactionController(
	createUseCase *banking.CreateOtherTransactionUseCase,
	listUseCase *banking.ListOtherTransactionsUseCase,
	updateUseCase *banking.UpdateOtherTransactionUseCase,
	deleteUseCase *banking.DeleteOtherTransactionUseCase,
) *OtherTransactionController {
	return &OtherTransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /other-transactions requests.
func (c *OtherTransactionController) Create(ctx *gin.Context) {
	var req dto.RecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	amount, date, bankID, err := parseRecordFields(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), banking.CreateOtherTransactionInput{
		Name:        req.Name,
		TypeName:    req.TypeName,
		Direction:   entity.OtherTransactionDirection(req.Direction),
		Amount:      amount,
		Date:        date,
		Description: req.Description,
		PaymentMode: entity.PaymentMode(req.PaymentMode),
		BankID:      bankID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOtherTransactionResponse(output))
}

// List handles GET /other-transactions requests.
func (c *OtherTransactionController) List(ctx *gin.Context) {
	filter, err := parseRecordFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	transactions, err := c.listUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := dto.RecordListResponse{Records: make([]dto.RecordResponse, 0, len(transactions))}
	for _, transaction := range transactions {
		response.Records = append(response.Records, dto.ToOtherTransactionResponse(transaction))
	}
	ctx.JSON(http.StatusOK, response)
}

// Update handles PUT /other-transactions/:id requests.
func (c *OtherTransactionController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID format"})
		return
	}

	var req dto.RecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	amount, date, bankID, err := parseRecordFields(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), banking.UpdateOtherTransactionInput{
		ID:          id,
		Name:        req.Name,
		TypeName:    req.TypeName,
		Direction:   entity.OtherTransactionDirection(req.Direction),
		Amount:      amount,
		Date:        date,
		Description: req.Description,
		PaymentMode: entity.PaymentMode(req.PaymentMode),
		BankID:      bankID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOtherTransactionResponse(output))
}

// Delete handles DELETE /other-transactions/:id requests.
func (c *OtherTransactionController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
