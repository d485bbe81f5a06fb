// Package budget contains use cases that aggregate transactions, goals and categories.
package budget

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/application/usecase/category"
	"github.com/budget-buddy/backend/internal/domain/entity"
)

// TotalsSource provides transaction sums.
type TotalsSource interface {
	TotalByType(ctx context.Context, transactionType entity.TransactionType) (decimal.Decimal, error)
	TotalsBetween(ctx context.Context, start, end time.Time) (*adapter.TransactionTotals, error)
	Count(ctx context.Context) (int64, error)
}

// RecentTransactionsSource provides the newest transactions joined with their category.
type RecentTransactionsSource interface {
	RecentWithCategory(ctx context.Context, limit int) ([]*entity.TransactionWithCategory, error)
	WatchRecentWithCategory(ctx context.Context, limit int) (<-chan []*entity.TransactionWithCategory, error)
}

// GoalProgressSource provides active goals with their progress.
type GoalProgressSource interface {
	Execute(ctx context.Context) ([]*entity.GoalWithProgress, error)
	Watch(ctx context.Context) (<-chan []*entity.GoalWithProgress, error)
}

// CategorySource provides the category listing.
type CategorySource interface {
	Execute(ctx context.Context, input category.ListCategoriesInput) (*category.ListCategoriesOutput, error)
	Watch(ctx context.Context, input category.ListCategoriesInput) (<-chan []*entity.Category, error)
}
