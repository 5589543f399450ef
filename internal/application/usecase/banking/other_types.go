package banking

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// defaultOtherTypes is the built-in type set every listing includes.
var defaultOtherTypes = []string{
	entity.OtherTypePartner,
	entity.OtherTypeLoan,
	entity.OtherTypeUnsecure,
	entity.OtherTypeFixedAssets,
	entity.OtherTypeExpense,
	entity.OtherTypeOthers,
}

// CreateOtherTypeUseCase adds a user-defined transaction type.
type CreateOtherTypeUseCase struct {
	typeRepo adapter.OtherTypeRepository
}

// NewCreateOtherTypeUseCase creates a new CreateOtherTypeUseCase instance.
func NewCreateOtherTypeUseCase(typeRepo adapter.OtherTypeRepository) *CreateOtherTypeUseCase {
	return &CreateOtherTypeUseCase{typeRepo: typeRepo}
}

// Execute adds the type. Built-in names and duplicates are rejected.
func (uc *CreateOtherTypeUseCase) Execute(ctx context.Context, name string) (*entity.OtherType, error) {
	name = strings.TrimSpace(name)

	for _, builtin := range defaultOtherTypes {
		if strings.EqualFold(name, builtin) {
			return nil, duplicateTypeError(name)
		}
	}

	exists, err := uc.typeRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check other type: %w", err)
	}
	if exists {
		return nil, duplicateTypeError(name)
	}

	otherType := entity.NewOtherType(name)
	if err := uc.typeRepo.Create(ctx, otherType); err != nil {
		return nil, fmt.Errorf("failed to create other type: %w", err)
	}
	return otherType, nil
}

// ListOtherTypesUseCase lists the built-in types followed by user additions.
type ListOtherTypesUseCase struct {
	typeRepo adapter.OtherTypeRepository
}

// NewListOtherTypesUseCase creates a new ListOtherTypesUseCase instance.
func NewListOtherTypesUseCase(typeRepo adapter.OtherTypeRepository) *ListOtherTypesUseCase {
	return &ListOtherTypesUseCase{typeRepo: typeRepo}
}

// Execute lists all type names.
func (uc *ListOtherTypesUseCase) Execute(ctx context.Context) ([]string, error) {
	custom, err := uc.typeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list other types: %w", err)
	}

	names := make([]string, 0, len(defaultOtherTypes)+len(custom))
	names = append(names, defaultOtherTypes...)
	for _, otherType := range custom {
		names = append(names, otherType.Name)
	}
	return names, nil
}

func duplicateTypeError(name string) error {
	return domainerror.NewBankingError(
		domainerror.ErrCodeOtherTypeAlreadyExists,
		fmt.Sprintf("type %q already exists", name),
		domainerror.ErrOtherTypeAlreadyExists,
	)
}
