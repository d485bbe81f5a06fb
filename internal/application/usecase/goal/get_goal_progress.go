package goal

import (
	"context"
	"fmt"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/application/stream"
	"github.com/budget-buddy/backend/internal/domain/entity"
)

// GetGoalProgressUseCase derives progress figures for active goals.
type GetGoalProgressUseCase struct {
	goalRepo adapter.GoalRepository
	notifier adapter.ChangeNotifier
	clock    Clock
}

// NewGetGoalProgressUseCase creates a new GetGoalProgressUseCase instance.
func NewGetGoalProgressUseCase(goalRepo adapter.GoalRepository, notifier adapter.ChangeNotifier, clock Clock) *GetGoalProgressUseCase {
	return &GetGoalProgressUseCase{
		goalRepo: goalRepo,
		notifier: notifier,
		clock:    clock,
	}
}

// Execute returns every active goal with its progress relative to today.
func (uc *GetGoalProgressUseCase) Execute(ctx context.Context) ([]*entity.GoalWithProgress, error) {
	goals, err := uc.goalRepo.FindAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list active goals: %w", err)
	}

	today := uc.clock.today()
	result := make([]*entity.GoalWithProgress, len(goals))
	for i, g := range goals {
		result[i] = entity.NewGoalWithProgress(g, today)
	}
	return result, nil
}

// Watch streams Execute. Day rollover re-emits too, since days until deadline shift.
func (uc *GetGoalProgressUseCase) Watch(ctx context.Context) (<-chan []*entity.GoalWithProgress, error) {
	return stream.Watch(ctx, uc.notifier, uc.Execute, adapter.TopicGoals, adapter.TopicClock)
}
