package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// GetMonthlyStatsUseCase computes income, expenses and savings rate for a date range.
type GetMonthlyStatsUseCase struct {
	totals TotalsSource
	now    func() time.Time
}

// NewGetMonthlyStatsUseCase creates a new GetMonthlyStatsUseCase instance.
// now defaults to time.Now.
func NewGetMonthlyStatsUseCase(totals TotalsSource, now func() time.Time) *GetMonthlyStatsUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetMonthlyStatsUseCase{
		totals: totals,
		now:    now,
	}
}

// Execute returns the stats of transactions dated within [start, end], both days inclusive.
func (uc *GetMonthlyStatsUseCase) Execute(ctx context.Context, start, end time.Time) (*entity.MonthlyStats, error) {
	start, end = entity.Day(start), entity.Day(end)
	if end.Before(start) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidPeriod,
			"end date must not be before start date",
			domainerror.ErrInvalidPeriod,
		)
	}

	totals, err := uc.totals.TotalsBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly stats: %w", err)
	}

	return entity.NewMonthlyStats(start, end, totals.IncomeTotal, totals.ExpenseTotal), nil
}

// CurrentMonth returns the stats of the calendar month containing now.
func (uc *GetMonthlyStatsUseCase) CurrentMonth(ctx context.Context) (*entity.MonthlyStats, error) {
	start, end := entity.MonthBounds(uc.now())
	return uc.Execute(ctx, start, end)
}
