package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
// Nil fields keep their current value.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       *string
	Icon       *string
	Color      *string
	Type       *entity.TransactionType
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute applies the changes with the same validation as creation. A category
// keeps its type while any transaction references it.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := findCategory(ctx, uc.categoryRepo, input.CategoryID)
	if err != nil {
		return nil, err
	}

	name, icon, color, categoryType := category.Name, category.Icon, category.Color, category.Type
	if input.Name != nil {
		name = *input.Name
	}
	if input.Icon != nil {
		icon = *input.Icon
	}
	if input.Color != nil {
		color = *input.Color
	}
	if input.Type != nil {
		categoryType = *input.Type
	}

	fields, err := validateCategoryFields(name, icon, color, categoryType)
	if err != nil {
		return nil, err
	}

	category.Name = fields.name
	category.Icon = fields.icon
	category.Color = fields.color
	category.Type = fields.categoryType
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrCategoryNotFound):
			return nil, notFound()
		case errors.Is(err, domainerror.ErrCategoryTypeLocked):
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryTypeLocked,
				"category type cannot change while transactions reference it",
				domainerror.ErrCategoryTypeLocked,
			)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
