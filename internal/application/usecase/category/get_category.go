package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// GetCategoryUseCase loads a single category.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns the category with the given ID.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return findCategory(ctx, uc.categoryRepo, id)
}

func findCategory(ctx context.Context, categoryRepo adapter.CategoryRepository, id uuid.UUID) (*entity.Category, error) {
	category, err := categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

func notFound() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}
