package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/usecase/banking"
	"github.com/ledgerbook/backend/internal/domain/entity"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// CompanyBillController handles company bill endpoints.
type CompanyBillController struct {
	createUseCase *banking.CreateCompanyBillUseCase
	listUseCase   *banking.ListCompanyBillsUseCase
	updateUseCase *banking.UpdateCompanyBillUseCase
	deleteUseCase *banking.DeleteCompanyBillUseCase
}

// NewCompanyBillController creates a new company bill controller instance.
func NewCompanyBillController(
	createUseCase *banking.CreateCompanyBillUseCase,
	listUseCase *banking.ListCompanyBillsUseCase,
	updateUseCase *banking.UpdateCompanyBillUseCase,
	deleteUseCase *banking.DeleteCompanyBillUseCase,
) *CompanyBillController {
	return &CompanyBillController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /company-bills requests.
func (c *CompanyBillController) Create(ctx *gin.Context) {
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

	output, err := c.createUseCase.Execute(ctx.Request.Context(), banking.CreateCompanyBillInput{
		CompanyName: req.Name,
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

	ctx.JSON(http.StatusCreated, dto.ToCompanyBillResponse(output))
}

// List handles GET /company-bills requests.
func (c *CompanyBillController) List(ctx *gin.Context) {
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
		response.Records = append(response.Records, dto.ToCompanyBillResponse(bill))
	}
	ctx.JSON(http.StatusOK, response)
}

// Update handles PUT /company-bills/:id requests.
func (c *CompanyBillController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company bill ID format"})
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

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), banking.UpdateCompanyBillInput{
		ID:          id,
		CompanyName: req.Name,
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

	ctx.JSON(http.StatusOK, dto.ToCompanyBillResponse(output))
}

// Delete handles DELETE /company-bills/:id requests.
func (c *CompanyBillController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid company bill ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
