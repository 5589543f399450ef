package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
)

// otherTypeRepository implements the adapter.OtherTypeRepository interface.
type otherTypeRepository struct {
	db *gorm.DB
}

// NewOtherTypeRepository creates a new other type repository instance.
func NewOtherTypeRepository(db *gorm.DB) adapter.OtherTypeRepository {
	return &otherTypeRepository{
		db: db,
	}
}

// Create creates a new custom transaction type in the database.
func (r *otherTypeRepository) Create(ctx context.Context, otherType *entity.OtherType) error {
	typeModel := model.OtherTypeFromEntity(otherType)
	result := r.db.WithContext(ctx).Create(typeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves all custom transaction types ordered by creation time.
func (r *otherTypeRepository) FindAll(ctx context.Context) ([]*entity.OtherType, error) {
	var typeModels []model.OtherTypeModel
	result := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&typeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	types := make([]*entity.OtherType, len(typeModels))
	for i, tm := range typeModels {
		types[i] = tm.ToEntity()
	}
	return types, nil
}

// ExistsByName checks whether a custom type with the name already exists,
// case-insensitively.
func (r *otherTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.OtherTypeModel{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
