// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// statusForBankingCode maps banking error codes to HTTP statuses.
func statusForBankingCode(code domainerror.BankingErrorCode) int {
	switch code {
	case domainerror.ErrCodeBankAccountNotFound,
		domainerror.ErrCodeCashEntryNotFound,
		domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCashEntryAlreadyExists,
		domainerror.ErrCodeOtherTypeAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeBankingInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// statusForInvoiceCode maps invoice error codes to HTTP statuses.
func statusForInvoiceCode(code domainerror.InvoiceErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvoiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvoiceAlreadyDeleted:
		return http.StatusConflict
	case domainerror.ErrCodeInvoiceInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// respondError translates a use-case error into an HTTP error response.
func respondError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		status := http.StatusBadRequest
		if ledgerErr.Code == domainerror.ErrCodeLedgerInternalError {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{Error: ledgerErr.Message, Code: string(ledgerErr.Code)})
		return
	}

	var bankingErr *domainerror.BankingError
	if errors.As(err, &bankingErr) {
		ctx.JSON(statusForBankingCode(bankingErr.Code), dto.ErrorResponse{
			Error: bankingErr.Message,
			Code:  string(bankingErr.Code),
		})
		return
	}

	var invoiceErr *domainerror.InvoiceError
	if errors.As(err, &invoiceErr) {
		ctx.JSON(statusForInvoiceCode(invoiceErr.Code), dto.ErrorResponse{
			Error: invoiceErr.Message,
			Code:  string(invoiceErr.Code),
		})
		return
	}

	// Bare sentinels from the persistence layer.
	switch {
	case errors.Is(err, domainerror.ErrBankAccountNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeBankAccountNotFound),
		})
	case errors.Is(err, domainerror.ErrCashEntryNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeCashEntryNotFound),
		})
	case errors.Is(err, domainerror.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
	case errors.Is(err, domainerror.ErrInvoiceNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvoiceNotFound),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
		})
	}
}
