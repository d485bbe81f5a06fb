package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// GetTotalsOutput represents all-time transaction totals.
type GetTotalsOutput struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
	Count         int64
}

// GetTotalsUseCase aggregates transaction amounts.
type GetTotalsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTotalsUseCase creates a new GetTotalsUseCase instance.
func NewGetTotalsUseCase(transactionRepo adapter.TransactionRepository) *GetTotalsUseCase {
	return &GetTotalsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns income, expenses, balance and count over all transactions.
func (uc *GetTotalsUseCase) Execute(ctx context.Context) (*GetTotalsOutput, error) {
	totals, err := uc.transactionRepo.GetTotals(ctx, adapter.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction totals: %w", err)
	}

	count, err := uc.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &GetTotalsOutput{
		TotalIncome:   totals.IncomeTotal,
		TotalExpenses: totals.ExpenseTotal,
		Balance:       totals.IncomeTotal.Sub(totals.ExpenseTotal),
		Count:         count,
	}, nil
}

// TotalByType sums the amounts of one type, zero when there are none.
func (uc *GetTotalsUseCase) TotalByType(ctx context.Context, transactionType entity.TransactionType) (decimal.Decimal, error) {
	if !transactionType.IsValid() {
		return decimal.Zero, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	totals, err := uc.transactionRepo.GetTotals(ctx, adapter.TransactionFilter{Type: &transactionType})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s transactions: %w", transactionType, err)
	}

	if transactionType == entity.TransactionTypeIncome {
		return totals.IncomeTotal, nil
	}
	return totals.ExpenseTotal, nil
}

// TotalsBetween sums income and expenses dated within [start, end].
func (uc *GetTotalsUseCase) TotalsBetween(ctx context.Context, start, end time.Time) (*adapter.TransactionTotals, error) {
	totals, err := uc.transactionRepo.GetTotals(ctx, adapter.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction totals between %s and %s: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), err)
	}
	return totals, nil
}

// Balance returns total income minus total expenses.
func (uc *GetTotalsUseCase) Balance(ctx context.Context) (decimal.Decimal, error) {
	income, err := uc.TotalByType(ctx, entity.TransactionTypeIncome)
	if err != nil {
		return decimal.Zero, err
	}
	expenses, err := uc.TotalByType(ctx, entity.TransactionTypeExpense)
	if err != nil {
		return decimal.Zero, err
	}
	return income.Sub(expenses), nil
}

// Count returns the number of transactions.
func (uc *GetTotalsUseCase) Count(ctx context.Context) (int64, error) {
	count, err := uc.transactionRepo.Count(ctx, adapter.TransactionFilter{})
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
