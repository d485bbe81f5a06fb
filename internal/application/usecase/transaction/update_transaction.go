package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields keep their current value; a blank Note removes the note.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	CategoryID    *uuid.UUID
	Date          *time.Time
	Note          *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
	Category    *entity.Category
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute merges the changes and re-validates the result with the creation rules.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := findTransaction(ctx, uc.transactionRepo, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.CategoryID != nil {
		transaction.CategoryID = *input.CategoryID
	}
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"date is required",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		transaction.Date = entity.Day(*input.Date)
	}
	if input.Note != nil {
		note, err := normaliseNote(input.Note)
		if err != nil {
			return nil, err
		}
		transaction.Note = note
	}

	category, err := validateTransaction(ctx, uc.categoryRepo, transaction.Amount, transaction.Type, transaction.CategoryID)
	if err != nil {
		return nil, err
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
		Category:    category,
	}, nil
}
