// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// MaxNoteLength is the maximum allowed length for transaction notes, in characters.
const MaxNoteLength = 500

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Amount     decimal.Decimal
	Type       entity.TransactionType
	CategoryID uuid.UUID
	Date       time.Time
	Note       *string // Optional; blank means no note
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
	Category    *entity.Category
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute validates and stores a new transaction. Nothing is written when validation fails.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	note, err := normaliseNote(input.Note)
	if err != nil {
		return nil, err
	}

	category, err := validateTransaction(ctx, uc.categoryRepo, input.Amount, input.Type, input.CategoryID)
	if err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(input.Amount, input.Type, input.CategoryID, input.Date, note)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
		Category:    category,
	}, nil
}

// validateTransaction checks amount, type and category, and returns the referenced category.
func validateTransaction(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	amount decimal.Decimal,
	transactionType entity.TransactionType,
	categoryID uuid.UUID,
) (*entity.Category, error) {
	if !amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !entity.FitsMoneyScale(amount) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			fmt.Sprintf("amount must have at most %d decimal places", entity.MoneyPlaces),
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !transactionType.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if categoryID == uuid.Nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"category is required",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeCategoryNotFoundForTxn,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.Type != transactionType {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			fmt.Sprintf("category %q is for %s transactions", category.Name, category.Type),
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	return category, nil
}

// normaliseNote trims the note and turns a blank one into no note.
func normaliseNote(note *string) (*string, error) {
	if note == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > MaxNoteLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			domainerror.ErrNoteTooLong,
		)
	}
	return &trimmed, nil
}
