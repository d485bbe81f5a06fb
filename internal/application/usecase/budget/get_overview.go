package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/application/stream"
	"github.com/budget-buddy/backend/internal/domain/entity"
)

// GetOverviewUseCase summarises every transaction.
type GetOverviewUseCase struct {
	totals   TotalsSource
	notifier adapter.ChangeNotifier
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(totals TotalsSource, notifier adapter.ChangeNotifier) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		totals:   totals,
		notifier: notifier,
	}
}

// Execute loads both totals and the count concurrently.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*entity.BudgetOverview, error) {
	var (
		income, expenses decimal.Decimal
		count            int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		income, err = uc.totals.TotalByType(gctx, entity.TransactionTypeIncome)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = uc.totals.TotalByType(gctx, entity.TransactionTypeExpense)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = uc.totals.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load budget overview: %w", err)
	}

	return &entity.BudgetOverview{
		Balance:          income.Sub(expenses),
		TotalIncome:      income,
		TotalExpenses:    expenses,
		TransactionCount: count,
	}, nil
}

// Watch streams Execute, re-emitting after every transaction change.
func (uc *GetOverviewUseCase) Watch(ctx context.Context) (<-chan *entity.BudgetOverview, error) {
	return stream.Watch(ctx, uc.notifier, uc.Execute, adapter.TopicTransactions)
}
