package budget

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/budget-buddy/backend/internal/application/stream"
	"github.com/budget-buddy/backend/internal/application/usecase/category"
	"github.com/budget-buddy/backend/internal/domain/entity"
)

// DefaultDashboardRecentLimit is the number of recent transactions on the dashboard.
const DefaultDashboardRecentLimit = 5

// GetDashboardUseCase assembles the home-screen view.
type GetDashboardUseCase struct {
	transactions RecentTransactionsSource
	goals        GoalProgressSource
	categories   CategorySource
	recentLimit  int
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	transactions RecentTransactionsSource,
	goals GoalProgressSource,
	categories CategorySource,
	recentLimit int,
) *GetDashboardUseCase {
	if recentLimit <= 0 {
		recentLimit = DefaultDashboardRecentLimit
	}
	return &GetDashboardUseCase{
		transactions: transactions,
		goals:        goals,
		categories:   categories,
		recentLimit:  recentLimit,
	}
}

// Execute loads a one-shot dashboard snapshot.
func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*entity.DashboardData, error) {
	var (
		recent     []*entity.TransactionWithCategory
		goals      []*entity.GoalWithProgress
		categories []*entity.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recent, err = uc.transactions.RecentWithCategory(gctx, uc.recentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = uc.goals.Execute(gctx)
		return err
	})
	g.Go(func() error {
		out, err := uc.categories.Execute(gctx, category.ListCategoriesInput{})
		if err != nil {
			return err
		}
		categories = out.Categories
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	return entity.NewDashboardData(recent, goals, categories), nil
}

// Watch combines the latest recent transactions, goal progress and categories.
// A snapshot is emitted once all three are known and after any of them changes.
func (uc *GetDashboardUseCase) Watch(ctx context.Context) (<-chan *entity.DashboardData, error) {
	watchCtx, cancel := context.WithCancel(ctx)

	recent, err := uc.transactions.WatchRecentWithCategory(watchCtx, uc.recentLimit)
	if err != nil {
		cancel()
		return nil, err
	}
	goals, err := uc.goals.Watch(watchCtx)
	if err != nil {
		cancel()
		return nil, err
	}
	categories, err := uc.categories.Watch(watchCtx, category.ListCategoriesInput{})
	if err != nil {
		cancel()
		return nil, err
	}

	return stream.CombineLatest3(watchCtx, recent, goals, categories, entity.NewDashboardData, cancel), nil
}
