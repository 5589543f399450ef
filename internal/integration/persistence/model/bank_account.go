// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// BankAccountModel represents the bank_accounts table in the database.
type BankAccountModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(255);not null"`
	AccountNumber  string          `gorm:"type:varchar(64);not null"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	OpeningDate    time.Time       `gorm:"type:date;not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the BankAccountModel.
func (BankAccountModel) TableName() string {
	return "bank_accounts"
}

// ToEntity converts a BankAccountModel to a domain BankAccount entity.
func (m *BankAccountModel) ToEntity() *entity.BankAccount {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.BankAccount{
		ID:             m.ID,
		Name:           m.Name,
		AccountNumber:  m.AccountNumber,
		OpeningBalance: m.OpeningBalance,
		OpeningDate:    m.OpeningDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// BankAccountFromEntity creates a BankAccountModel from a domain BankAccount entity.
func BankAccountFromEntity(account *entity.BankAccount) *BankAccountModel {
	var deletedAt gorm.DeletedAt
	if account.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *account.DeletedAt, Valid: true}
	}

	return &BankAccountModel{
		ID:             account.ID,
		Name:           account.Name,
		AccountNumber:  account.AccountNumber,
		OpeningBalance: account.OpeningBalance,
		OpeningDate:    account.OpeningDate,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}
