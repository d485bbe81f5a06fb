package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-buddy/backend/internal/application/adapter"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute soft-deletes the goal.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.goalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
