package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/application/stream"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// DefaultRecentLimit is used for recent listings when no positive limit is given.
const DefaultRecentLimit = 10

// ListTransactionsInput represents the input for listing transactions.
// Results are ordered by date descending, ties in insertion order.
type ListTransactionsInput struct {
	Type       *entity.TransactionType // Optional filter by type
	CategoryID *uuid.UUID              // Optional filter by category
	Limit      int                     // 0 means no limit
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase lists transactions, optionally joined with their category.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
	recentLimit     int
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
// recentLimit is the default size of recent listings; DefaultRecentLimit applies when it is not positive.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	notifier adapter.ChangeNotifier,
	recentLimit int,
) *ListTransactionsUseCase {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
		recentLimit:     recentLimit,
	}
}

// Execute lists transactions matching the input.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.list(ctx, input)
	if err != nil {
		return nil, err
	}
	return &ListTransactionsOutput{Transactions: transactions}, nil
}

// Recent returns the newest transactions, limit defaulting to the configured size when not positive.
func (uc *ListTransactionsUseCase) Recent(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	return uc.list(ctx, ListTransactionsInput{Limit: uc.recentSize(limit)})
}

// WithCategory lists transactions joined with their category. A transaction
// whose category is missing is reported as domainerror.ErrIntegrityViolation.
func (uc *ListTransactionsUseCase) WithCategory(ctx context.Context, input ListTransactionsInput) ([]*entity.TransactionWithCategory, error) {
	transactions, err := uc.transactionRepo.FindByFilterWithCategory(ctx, toFilter(input))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions with category: %w", err)
	}

	for _, t := range transactions {
		if t.Category == nil {
			slog.Error("Transaction references a missing category",
				"transaction_id", t.Transaction.ID,
				"category_id", t.Transaction.CategoryID,
			)
			return nil, fmt.Errorf("transaction %s references category %s: %w",
				t.Transaction.ID, t.Transaction.CategoryID, domainerror.ErrIntegrityViolation)
		}
	}
	return transactions, nil
}

// RecentWithCategory returns the newest transactions joined with their category.
func (uc *ListTransactionsUseCase) RecentWithCategory(ctx context.Context, limit int) ([]*entity.TransactionWithCategory, error) {
	return uc.WithCategory(ctx, ListTransactionsInput{Limit: uc.recentSize(limit)})
}

// Watch streams Execute, re-emitting after every transaction change.
func (uc *ListTransactionsUseCase) Watch(ctx context.Context, input ListTransactionsInput) (<-chan []*entity.Transaction, error) {
	query := func(ctx context.Context) ([]*entity.Transaction, error) {
		return uc.list(ctx, input)
	}
	return stream.Watch(ctx, uc.notifier, query, adapter.TopicTransactions)
}

// WatchRecentWithCategory streams RecentWithCategory. Category edits re-emit too,
// since the joined names and colors change.
func (uc *ListTransactionsUseCase) WatchRecentWithCategory(ctx context.Context, limit int) (<-chan []*entity.TransactionWithCategory, error) {
	limit = uc.recentSize(limit)
	query := func(ctx context.Context) ([]*entity.TransactionWithCategory, error) {
		return uc.RecentWithCategory(ctx, limit)
	}
	return stream.Watch(ctx, uc.notifier, query, adapter.TopicTransactions, adapter.TopicCategories)
}

func (uc *ListTransactionsUseCase) list(ctx context.Context, input ListTransactionsInput) ([]*entity.Transaction, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, toFilter(input))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (uc *ListTransactionsUseCase) recentSize(limit int) int {
	if limit <= 0 {
		return uc.recentLimit
	}
	return limit
}

func toFilter(input ListTransactionsInput) adapter.TransactionFilter {
	return adapter.TransactionFilter{
		Type:       input.Type,
		CategoryID: input.CategoryID,
		Limit:      input.Limit,
	}
}
