package controller

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return date, nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", value)
	}
	return amount, nil
}

func parseOptionalAmount(value *string) (*decimal.Decimal, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	amount, err := parseAmount(*value)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

func parseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q", *value)
	}
	return &id, nil
}

// parseRecordFields parses the amount, date and bank reference shared by
// all record request bodies.
func parseRecordFields(req dto.RecordRequest) (decimal.Decimal, time.Time, *uuid.UUID, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return decimal.Decimal{}, time.Time{}, nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return decimal.Decimal{}, time.Time{}, nil, err
	}
	bankID, err := parseOptionalUUID(req.BankID)
	if err != nil {
		return decimal.Decimal{}, time.Time{}, nil, err
	}
	return amount, date, bankID, nil
}

// parseRecordFilter reads the shared record-listing query parameters.
func parseRecordFilter(ctx *gin.Context) (adapter.RecordFilter, error) {
	from, to, err := parseWindow(ctx)
	if err != nil {
		return adapter.RecordFilter{}, err
	}

	filter := adapter.RecordFilter{
		From: from,
		To:   to,
		Name: ctx.Query("name"),
	}

	if value := ctx.Query("payment_mode"); value != "" {
		mode := entity.PaymentMode(value)
		if mode != entity.PaymentModeBank && mode != entity.PaymentModeCash {
			return filter, fmt.Errorf("invalid payment mode %q", value)
		}
		filter.PaymentMode = &mode
	}
	if value := ctx.Query("bank_id"); value != "" {
		id, err := uuid.Parse(value)
		if err != nil {
			return filter, fmt.Errorf("invalid bank id %q", value)
		}
		filter.BankID = &id
	}

	return filter, nil
}

// parseWindow reads the optional from/to query parameters.
func parseWindow(ctx *gin.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if value := ctx.Query("from"); value != "" {
		date, err := parseDate(value)
		if err != nil {
			return nil, nil, err
		}
		from = &date
	}
	if value := ctx.Query("to"); value != "" {
		date, err := parseDate(value)
		if err != nil {
			return nil, nil, err
		}
		to = &date
	}
	return from, to, nil
}
