package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/usecase/banking"
	"github.com/ledgerbook/backend/internal/domain/entity"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// BuyerBillController handles buyer bill endpoints.
type BuyerBillController struct {
	createUseCase *banking.CreateBuyerBillUseCase
	listUseCase   *banking.ListBuyerBillsUseCase
	updateUseCase *banking.UpdateBuyerBillUseCase
	deleteUseCase *banking.DeleteBuyerBillUseCase
}

// NewBuyerBillController creates a new buyer bill controller instance.
func NewBuyerBillController(
	createUseCase *banking.CreateBuyerBillUseCase,
	listUseCase *banking.ListBuyerBillsUseCase,
	updateUseCase *banking.UpdateBuyerBillUseCase,
	deleteUseCase *banking.DeleteBuyerBillUseCase,
) *BuyerBillController {
	return &BuyerBillController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /buyer-bills requests.
func (c *BuyerBillController) Create(ctx *gin.Context) {
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

	output, err := c.createUseCase.Execute(ctx.Request.Context(), banking.CreateBuyerBillInput{
		BuyerName:   req.Name,
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

	ctx.JSON(http.StatusCreated, dto.ToBuyerBillResponse(output))
}

// List handles GET /buyer-bills requests.
func (c *BuyerBillController) List(ctx *gin.Context) {
	filter, err := parseRecordFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bills, err := c.listUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := dto.RecordListResponse{Records: make([]dto.RecordResponse, 0, len(bills))}
	for _, bill := range bills {
		response.Records = append(response.Records, dto.ToBuyerBillResponse(bill))
	}
	ctx.JSON(http.StatusOK, response)
}

// Update handles PUT /buyer-bills/:id requests.
func (c *BuyerBillController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid buyer bill ID format"})
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

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), banking.UpdateBuyerBillInput{
		ID:          id,
		BuyerName:   req.Name,
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

	ctx.JSON(http.StatusOK, dto.ToBuyerBillResponse(output))
}

// Delete handles DELETE /buyer-bills/:id requests.
func (c *BuyerBillController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid buyer bill ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
