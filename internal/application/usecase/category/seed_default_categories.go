package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
)

// DefaultCategory describes one category created on first start.
type DefaultCategory struct {
	Name  string
	Icon  string
	Color string
	Type  entity.TransactionType
}

// DefaultCategories is the starter set for an empty store.
var DefaultCategories = []DefaultCategory{
	{Name: "Groceries", Icon: "🛒", Color: "#FF5722", Type: entity.TransactionTypeExpense},
	{Name: "Transport", Icon: "🚗", Color: "#2196F3", Type: entity.TransactionTypeExpense},
	{Name: "Home", Icon: "🏠", Color: "#795548", Type: entity.TransactionTypeExpense},
	{Name: "Entertainment", Icon: "🎬", Color: "#9C27B0", Type: entity.TransactionTypeExpense},
	{Name: "Health", Icon: "🏥", Color: "#E91E63", Type: entity.TransactionTypeExpense},
	{Name: "Other", Icon: "📝", Color: "#757575", Type: entity.TransactionTypeExpense},
	{Name: "Salary", Icon: "💰", Color: "#4CAF50", Type: entity.TransactionTypeIncome},
	{Name: "Freelance", Icon: "💼", Color: "#2196F3", Type: entity.TransactionTypeIncome},
	{Name: "Bonus", Icon: "🎉", Color: "#FF9800", Type: entity.TransactionTypeIncome},
	{Name: "Other", Icon: "📝", Color: "#757575", Type: entity.TransactionTypeIncome},
}

// SeedDefaultCategoriesOutput represents the output of seeding.
type SeedDefaultCategoriesOutput struct {
	Created int
}

// SeedDefaultCategoriesUseCase fills an empty category store with DefaultCategories.
type SeedDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedDefaultCategoriesUseCase creates a new SeedDefaultCategoriesUseCase instance.
func NewSeedDefaultCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedDefaultCategoriesUseCase {
	return &SeedDefaultCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute inserts the defaults only when no category exists, so repeated runs are no-ops.
func (uc *SeedDefaultCategoriesUseCase) Execute(ctx context.Context) (*SeedDefaultCategoriesOutput, error) {
	count, err := uc.categoryRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return &SeedDefaultCategoriesOutput{}, nil
	}

	categories := make([]*entity.Category, len(DefaultCategories))
	for i, d := range DefaultCategories {
		categories[i] = entity.NewCategory(d.Name, d.Icon, d.Color, d.Type)
	}

	if err := uc.categoryRepo.CreateMany(ctx, categories); err != nil {
		return nil, fmt.Errorf("failed to seed default categories: %w", err)
	}

	slog.Info("Default categories created", "count", len(categories))

	return &SeedDefaultCategoriesOutput{
		Created: len(categories),
	}, nil
}
