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

// salaryRepository implements the adapter.SalaryRepository interface.
type salaryRepository struct {
	db *gorm.DB
}

// NewSalaryRepository creates a new salary repository instance.
func NewSalaryRepository(db *gorm.DB) adapter.SalaryRepository {
	return &salaryRepository{
		db: db,
	}
}

// Create creates a new salary payment in the database.
func (r *salaryRepository) Create(ctx context.Context, salary *entity.Salary) error {
	salaryModel := model.SalaryFromEntity(salary)
	result := r.db.WithContext(ctx).Create(salaryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a salary payment by its ID.
func (r *salaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Salary, error) {
	var salaryModel model.SalaryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&salaryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return salaryModel.ToEntity(), nil
}

// FindByFilter retrieves salary payments matching the filter.
func (r *salaryRepository) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.Salary, error) {
	query := applyRecordFilter(r.db.WithContext(ctx).Model(&model.SalaryModel{}), filter)
	if filter.Name != "" {
		query = query.Where("employee_name = ?", filter.Name)
	}

	var salaryModels []model.SalaryModel
	result := query.Order("date ASC, created_at ASC").Find(&salaryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	salaries := make([]*entity.Salary, len(salaryModels))
	for i, sm := range salaryModels {
		salaries[i] = sm.ToEntity()
	}
	return salaries, nil
}

// Update updates an existing salary payment in the database.
func (r *salaryRepository) Update(ctx context.Context, salary *entity.Salary) error {
	salaryModel := model.SalaryFromEntity(salary)
	result := r.db.WithContext(ctx).Save(salaryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a salary payment from the database.
func (r *salaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SalaryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}
