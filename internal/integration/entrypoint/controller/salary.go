package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/usecase/banking"
	"github.com/ledgerbook/backend/internal/domain/entity"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// SalaryController handles salary payment endpoints.
type SalaryController struct {
	createUseCase *banking.CreateSalaryUseCase
	listUseCase   *banking.ListSalariesUseCase
	updateUseCase *banking.UpdateSalaryUseCase
	deleteUseCase *banking.DeleteSalaryUseCase
}

// NewSalaryController creates a new salary controller instance.
func NewSalaryController(
	createUseCase *banking.CreateSalaryUseCase,
	listUseCase *banking.ListSalariesUseCase,
	updateUseCase *banking.UpdateSalaryUseCase,
	deleteUseCase *banking.DeleteSalaryUseCase,
) *SalaryController {
	return &SalaryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /salaries requests.
func (c *SalaryController) Create(ctx *gin.Context) {
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

	output, err := c.createUseCase.Execute(ctx.Request.Context(), banking.CreateSalaryInput{
		EmployeeName: req.Name,
		Amount:       amount,
		Date:         date,
		Description:  req.Description,
		PaymentMode:  entity.PaymentMode(req.PaymentMode),
		BankID:       bankID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSalaryResponse(output))
}

// List handles GET /salaries requests.
func (c *SalaryController) List(ctx *gin.Context) {
	filter, err := parseRecordFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	salaries, err := c.listUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := dto.RecordListResponse{Records: make([]dto.RecordResponse, 0, len(salaries))}
	for _, salary := range salaries {
		response.Records = append(response.Records, dto.ToSalaryResponse(salary))
	}
	ctx.JSON(http.StatusOK, response)
}

// Update handles PUT /salaries/:id requests.
func (c *SalaryController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid salary ID format"})
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

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), banking.UpdateSalaryInput{
		ID:           id,
		EmployeeName: req.Name,
		Amount:       amount,
		Date:         date,
		Description:  req.Description,
		PaymentMode:  entity.PaymentMode(req.PaymentMode),
		BankID:       bankID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalaryResponse(output))
}

// Delete handles DELETE /salaries/:id requests.
func (c *SalaryController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid salary ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
