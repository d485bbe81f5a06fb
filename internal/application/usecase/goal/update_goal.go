package goal

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

// UpdateGoalInput represents the input for goal update.
// The saved amount is never changed here. Lowering the target to or below it
// completes the goal; raising it never reopens one.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	Title         *string          // Optional
	TargetAmount  *decimal.Decimal // Optional
	Deadline      *time.Time       // Optional
	ClearDeadline bool             // Removes the deadline, ignored when Deadline is set
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    Clock
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, clock Clock) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findGoal(ctx, uc.goalRepo, input.GoalID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title, err := validateTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		goal.Title = title
	}

	if input.TargetAmount != nil {
		if err := validateTarget(*input.TargetAmount); err != nil {
			return nil, err
		}
		goal.TargetAmount = *input.TargetAmount
	}

	switch {
	case input.Deadline != nil:
		if err := validateDeadline(*input.Deadline, uc.clock.today()); err != nil {
			return nil, err
		}
		deadline := entity.Day(*input.Deadline)
		goal.Deadline = &deadline
	case input.ClearDeadline:
		goal.Deadline = nil
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
