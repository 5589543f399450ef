package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// SalaryModel represents the salaries table in the database.
type SalaryModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeName string          `gorm:"type:varchar(255);not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	Description  string          `gorm:"type:text"`
	PaymentMode  string          `gorm:"type:varchar(10);not null;index"`
	BankID       *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the SalaryModel.
func (SalaryModel) TableName() string {
	return "salaries"
}

// ToEntity converts a SalaryModel to a domain Salary entity.
func (m *SalaryModel) ToEntity() *entity.Salary {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Salary{
		ID:           m.ID,
		EmployeeName: m.EmployeeName,
		Amount:       m.Amount,
		Date:         m.Date,
		Description:  m.Description,
		PaymentMode:  entity.PaymentMode(m.PaymentMode),
		BankID:       m.BankID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// SalaryFromEntity creates a SalaryModel from a domain Salary entity.
func SalaryFromEntity(salary *entity.Salary) *SalaryModel {
	var deletedAt gorm.DeletedAt
	if salary.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *salary.DeletedAt, Valid: true}
	}

	return &SalaryModel{
		ID:           salary.ID,
		EmployeeName: salary.EmployeeName,
		Amount:       salary.Amount,
		Date:         salary.Date,
		Description:  salary.Description,
		PaymentMode:  string(salary.PaymentMode),
		BankID:       salary.BankID,
		CreatedAt:    salary.CreatedAt,
		UpdatedAt:    salary.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
