package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/usecase/invoice"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// InvoiceController handles invoice endpoints.
type InvoiceController struct {
	calculateUseCase *invoice.CalculateInvoiceUseCase
	createUseCase    *invoice.CreateInvoiceUseCase
	listUseCase      *invoice.ListInvoicesUseCase
	updateUseCase    *invoice.UpdateInvoiceUseCase
	deleteUseCase    *invoice.DeleteInvoiceUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	calculateUseCase *invoice.CalculateInvoiceUseCase,
	createUseCase *invoice.CreateInvoiceUseCase,
	listUseCase *invoice.ListInvoicesUseCase,
	updateUseCase *invoice.UpdateInvoiceUseCase,
	deleteUseCase *invoice.DeleteInvoiceUseCase,
) *InvoiceController {
	return &InvoiceController{
		calculateUseCase: calculateUseCase,
		createUseCase:    createUseCase,
		listUseCase:      listUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// Calculate handles POST /invoices/calculate requests.
// It computes the GST split and next invoice number without persisting.
func (c *InvoiceController) Calculate(ctx *gin.Context) {
	var req dto.CalculateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	baseAmount, err := parseAmount(req.BaseAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	exchangeRate, err := parseOptionalAmount(req.ExchangeRate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := invoice.CalculateInvoiceInput{
		BaseAmount:   baseAmount,
		Country:      req.Country,
		State:        req.State,
		ExchangeRate: exchangeRate,
	}
	if req.InvoiceDate != "" {
		date, err := parseDate(req.InvoiceDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		input.InvoiceDate = date
	}

	output, err := c.calculateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalculateInvoiceResponse(output))
}

// Create handles POST /invoices requests.
func (c *InvoiceController) Create(ctx *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	input, err := buildCreateInvoiceInput(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(output.Invoice))
}

// List handles GET /invoices requests.
func (c *InvoiceController) List(ctx *gin.Context) {
	input := invoice.ListInvoicesInput{
		FinancialYear: ctx.Query("financial_year"),
		BuyerName:     ctx.Query("buyer"),
		IncludeHidden: ctx.Query("include_hidden") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(output))
}

// Update handles PUT /invoices/:id requests.
// The invoice number and financial year stay fixed; the GST split is recomputed.
func (c *InvoiceController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid invoice ID format"})
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	baseAmount, err := parseAmount(req.BaseAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	exchangeRate, err := parseOptionalAmount(req.ExchangeRate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := invoice.UpdateInvoiceInput{
		ID:           id,
		BuyerName:    req.BuyerName,
		BuyerAddress: req.BuyerAddress,
		BuyerGSTIN:   req.BuyerGSTIN,
		BuyerState:   req.BuyerState,
		BuyerCountry: req.BuyerCountry,
		BaseAmount:   baseAmount,
		ExchangeRate: exchangeRate,
		Archived:     req.Archived,
	}
	if req.InvoiceDate != "" {
		date, err := parseDate(req.InvoiceDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		input.InvoiceDate = date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// Delete handles DELETE /invoices/:id requests.
// The invoice keeps its number and stays on the balance sheet as an
// unsecured-loan debit.
func (c *InvoiceController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid invoice ID format"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), invoice.DeleteInvoiceInput{ID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func buildCreateInvoiceInput(req dto.CreateInvoiceRequest) (invoice.CreateInvoiceInput, error) {
	input := invoice.CreateInvoiceInput{
		BuyerName:    req.BuyerName,
		BuyerAddress: req.BuyerAddress,
		BuyerGSTIN:   req.BuyerGSTIN,
		BuyerState:   req.BuyerState,
		BuyerCountry: req.BuyerCountry,
	}

	baseAmount, err := parseAmount(req.BaseAmount)
	if err != nil {
		return input, err
	}
	input.BaseAmount = baseAmount

	exchangeRate, err := parseOptionalAmount(req.ExchangeRate)
	if err != nil {
		return input, err
	}
	input.ExchangeRate = exchangeRate

	if req.InvoiceDate != "" {
		var date time.Time
		if date, err = parseDate(req.InvoiceDate); err != nil {
			return input, err
		}
		input.InvoiceDate = date
	}

	return input, nil
}
