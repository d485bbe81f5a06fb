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

// GetGoalUseCase loads a single goal.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute returns the goal with the given ID.
func (uc *GetGoalUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	return findGoal(ctx, uc.goalRepo, id)
}

func findGoal(ctx context.Context, goalRepo adapter.GoalRepository, id uuid.UUID) (*entity.Goal, error) {
	goal, err := goalRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return goal, nil
}

func notFound() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}
