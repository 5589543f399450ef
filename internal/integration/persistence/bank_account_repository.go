package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
)

// bankAccountRepository implements the adapter.BankAccountRepository interface.
type bankAccountRepository struct {
	db *gorm.DB
}

// NewBankAccountRepository creates a new bank account repository instance.
func NewBankAccountRepository(db *gorm.DB) adapter.BankAccountRepository {
	return &bankAccountRepository{
		db: db,
	}
}

// Create creates a new bank account in the database.
func (r *bankAccountRepository) Create(ctx context.Context, account *entity.BankAccount) error {
	accountModel := model.BankAccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a bank account by its ID.
func (r *bankAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BankAccount, error) {
	var accountModel model.BankAccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBankAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindAll retrieves all bank accounts.
func (r *bankAccountRepository) FindAll(ctx context.Context) ([]*entity.BankAccount, error) {
	var accountModels []model.BankAccountModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.BankAccount, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// Update updates an existing bank account in the database.
func (r *bankAccountRepository) Update(ctx context.Context, account *entity.BankAccount) error {
	accountModel := model.BankAccountFromEntity(account)
	result := r.db.WithContext(ctx).Save(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a bank account from the database.
func (r *bankAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BankAccountModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBankAccountNotFound
	}
	return nil
}
