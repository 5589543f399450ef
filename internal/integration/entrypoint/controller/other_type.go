package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerbook/backend/internal/application/usecase/banking"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// OtherTypeController handles transaction type endpoints.
type OtherTypeController struct {
	createUseCase *banking.CreateOtherTypeUseCase
	listUseCase   *banking.ListOtherTypesUseCase
}

// NewOtherTypeController creates a new other type controller instance.
func NewOtherTypeController(
	createUseCase *banking.CreateOtherTypeUseCase,
	listUseCase *banking.ListOtherTypesUseCase,
) *OtherTypeController {
	return &OtherTypeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /other-types requests.
func (c *OtherTypeController) Create(ctx *gin.Context) {
	var req dto.CreateOtherTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), req.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"name": output.Name})
}

// List handles GET /other-types requests.
func (c *OtherTypeController) List(ctx *gin.Context) {
	names, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OtherTypeListResponse{Types: names})
}
