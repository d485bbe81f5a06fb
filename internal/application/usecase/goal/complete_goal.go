package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// CompleteGoalUseCase marks a goal completed by hand.
type CompleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCompleteGoalUseCase creates a new CompleteGoalUseCase instance.
func NewCompleteGoalUseCase(goalRepo adapter.GoalRepository) *CompleteGoalUseCase {
	return &CompleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute sets the completion flag. Completing a completed goal is a no-op.
func (uc *CompleteGoalUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	if err := uc.goalRepo.MarkCompleted(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to complete goal: %w", err)
	}
	return findGoal(ctx, uc.goalRepo, id)
}
