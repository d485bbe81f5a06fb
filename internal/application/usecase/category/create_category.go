// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// hexColorRegex accepts #RRGGBB in either case.
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name  string
	Icon  string
	Color string
	Type  entity.TransactionType
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute validates and stores a new category. The name is trimmed and the color upper-cased.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	fields, err := validateCategoryFields(input.Name, input.Icon, input.Color, input.Type)
	if err != nil {
		return nil, err
	}

	category := entity.NewCategory(fields.name, fields.icon, fields.color, fields.categoryType)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

type categoryFields struct {
	name         string
	icon         string
	color        string
	categoryType entity.TransactionType
}

// validateCategoryFields applies the rules shared by create and update and returns the normalised values.
func validateCategoryFields(name, icon, color string, categoryType entity.TransactionType) (*categoryFields, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryName,
			"category name must not be blank",
			domainerror.ErrInvalidCategoryName,
		)
	}

	if strings.TrimSpace(icon) == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryIcon,
			"category icon must not be blank",
			domainerror.ErrInvalidCategoryIcon,
		)
	}

	if !hexColorRegex.MatchString(color) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorFormat,
			"color must be a valid hex format (#RRGGBB)",
			domainerror.ErrInvalidColorFormat,
		)
	}

	if !categoryType.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	return &categoryFields{
		name:         name,
		icon:         icon,
		color:        strings.ToUpper(color),
		categoryType: categoryType,
	}, nil
}
