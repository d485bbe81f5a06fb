package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-buddy/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing and aggregating transactions.
// Zero values mean "no restriction".
type TransactionFilter struct {
	Type       *entity.TransactionType
	CategoryID *uuid.UUID
	StartDate  *time.Time // Inclusive
	EndDate    *time.Time // Inclusive
	Limit      int
}

// TransactionTotals represents aggregated totals for transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence operations.
// Lists are ordered by date descending, then by insertion order.
type TransactionRepository interface {
	// Create assigns the next sequence number and inserts the transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	// Returns domainerror.ErrTransactionNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// FindByFilterWithCategory retrieves transactions matching the filter joined with their category.
	// Category is nil when the referenced category does not exist.
	FindByFilterWithCategory(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// GetTotals sums income and expense amounts of transactions matching the filter.
	GetTotals(ctx context.Context, filter TransactionFilter) (*TransactionTotals, error)

	// Count returns the number of transactions matching the filter.
	Count(ctx context.Context, filter TransactionFilter) (int64, error)

	// Update updates an existing transaction in the database.
	// Returns domainerror.ErrTransactionNotFound when it does not exist.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction from the database.
	// Returns domainerror.ErrTransactionNotFound when it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
