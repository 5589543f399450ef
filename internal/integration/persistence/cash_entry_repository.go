package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
)

// cashEntryRepository implements the adapter.CashEntryRepository interface.
type cashEntryRepository struct {
	db *gorm.DB
}

// NewCashEntryRepository creates a new cash entry repository instance.
func NewCashEntryRepository(db *gorm.DB) adapter.CashEntryRepository {
	return &cashEntryRepository{
		db: db,
	}
}

// Create creates the cash opening entry in the database.
func (r *cashEntryRepository) Create(ctx context.Context, entry *entity.CashEntry) error {
	entryModel := model.CashEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Find retrieves the single cash entry.
func (r *cashEntryRepository) Find(ctx context.Context) (*entity.CashEntry, error) {
	var entryModel model.CashEntryModel
	result := r.db.WithContext(ctx).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCashEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// Update updates the cash entry in the database.
func (r *cashEntryRepository) Update(ctx context.Context, entry *entity.CashEntry) error {
	entryModel := model.CashEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
