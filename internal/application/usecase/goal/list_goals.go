package goal

import (
	"context"
	"fmt"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/application/stream"
	"github.com/budget-buddy/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	ActiveOnly bool
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase lists goals by deadline, goals without one last.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	notifier adapter.ChangeNotifier
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, notifier adapter.ChangeNotifier) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		notifier: notifier,
	}
}

// Execute lists all goals, or only those not completed.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.list(ctx, input)
	if err != nil {
		return nil, err
	}
	return &ListGoalsOutput{Goals: goals}, nil
}

// Watch streams the listing, re-emitting after every goal change.
func (uc *ListGoalsUseCase) Watch(ctx context.Context, input ListGoalsInput) (<-chan []*entity.Goal, error) {
	query := func(ctx context.Context) ([]*entity.Goal, error) {
		return uc.list(ctx, input)
	}
	return stream.Watch(ctx, uc.notifier, query, adapter.TopicGoals)
}

func (uc *ListGoalsUseCase) list(ctx context.Context, input ListGoalsInput) ([]*entity.Goal, error) {
	goals, err := uc.goalRepo.FindAll(ctx, input.ActiveOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}
