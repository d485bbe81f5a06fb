package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-buddy/backend/internal/application/adapter"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute deletes the transaction with the given ID.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
