package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// AddGoalAmountInput represents a contribution towards a goal.
type AddGoalAmountInput struct {
	GoalID uuid.UUID
	Amount decimal.Decimal
}

// AddGoalAmountOutput represents the goal after the contribution.
type AddGoalAmountOutput struct {
	Goal *entity.Goal
}

// AddGoalAmountUseCase adds money to an active goal.
type AddGoalAmountUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewAddGoalAmountUseCase creates a new AddGoalAmountUseCase instance.
func NewAddGoalAmountUseCase(goalRepo adapter.GoalRepository) *AddGoalAmountUseCase {
	return &AddGoalAmountUseCase{
		goalRepo: goalRepo,
	}
}

// Execute adds the amount and completes the goal once the target is covered.
// The new amount and the completion flag are written together.
func (uc *AddGoalAmountUseCase) Execute(ctx context.Context, input AddGoalAmountInput) (*AddGoalAmountOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"amount must be greater than zero",
			domainerror.ErrInvalidContribution,
		)
	}
	if !entity.FitsMoneyScale(input.Amount) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			fmt.Sprintf("amount must have at most %d decimal places", entity.MoneyPlaces),
			domainerror.ErrInvalidContribution,
		)
	}

	if err := uc.goalRepo.AddAmount(ctx, input.GoalID, input.Amount); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrGoalNotFound):
			return nil, notFound()
		case errors.Is(err, domainerror.ErrGoalAlreadyCompleted):
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalAlreadyCompleted,
				"goal is already completed",
				domainerror.ErrGoalAlreadyCompleted,
			)
		}
		return nil, fmt.Errorf("failed to add amount to goal: %w", err)
	}

	goal, err := findGoal(ctx, uc.goalRepo, input.GoalID)
	if err != nil {
		return nil, err
	}

	return &AddGoalAmountOutput{
		Goal: goal,
	}, nil
}
