package category

import (
	"context"
	"fmt"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/application/stream"
	"github.com/budget-buddy/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Type *entity.TransactionType // Optional filter by category type
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase lists categories sorted by name.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	notifier     adapter.ChangeNotifier
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, notifier adapter.ChangeNotifier) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		notifier:     notifier,
	}
}

// Execute lists all categories, or those of one type.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.list(ctx, input)
	if err != nil {
		return nil, err
	}
	return &ListCategoriesOutput{Categories: categories}, nil
}

// Watch streams the listing, re-emitting after every category change.
func (uc *ListCategoriesUseCase) Watch(ctx context.Context, input ListCategoriesInput) (<-chan []*entity.Category, error) {
	query := func(ctx context.Context) ([]*entity.Category, error) {
		return uc.list(ctx, input)
	}
	return stream.Watch(ctx, uc.notifier, query, adapter.TopicCategories)
}

func (uc *ListCategoriesUseCase) list(ctx context.Context, input ListCategoriesInput) ([]*entity.Category, error) {
	var (
		categories []*entity.Category
		err        error
	)
	if input.Type != nil {
		categories, err = uc.categoryRepo.FindByType(ctx, *input.Type)
	} else {
		categories, err = uc.categoryRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
