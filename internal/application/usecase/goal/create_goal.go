// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal // Defaults to zero
	Deadline      *time.Time      // Optional
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, clock Clock) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}

	if err := validateTarget(input.TargetAmount); err != nil {
		return nil, err
	}

	if input.CurrentAmount.IsNegative() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrInvalidCurrentAmount,
		)
	}
	if !entity.FitsMoneyScale(input.CurrentAmount) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCurrentAmount,
			fmt.Sprintf("current amount must have at most %d decimal places", entity.MoneyPlaces),
			domainerror.ErrInvalidCurrentAmount,
		)
	}

	if input.CurrentAmount.GreaterThan(input.TargetAmount) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeCurrentExceedsTarget,
			"current amount must not exceed the target amount",
			domainerror.ErrCurrentExceedsTarget,
		)
	}

	if input.Deadline != nil {
		if err := validateDeadline(*input.Deadline, uc.clock.today()); err != nil {
			return nil, err
		}
	}

	goal := entity.NewGoal(title, input.TargetAmount, input.CurrentAmount, input.Deadline)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalTitle,
			"title is required",
			domainerror.ErrInvalidGoalTitle,
		)
	}
	return title, nil
}

func validateTarget(target decimal.Decimal) error {
	if !target.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if !entity.FitsMoneyScale(target) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			fmt.Sprintf("target amount must have at most %d decimal places", entity.MoneyPlaces),
			domainerror.ErrInvalidTargetAmount,
		)
	}
	return nil
}

// validateDeadline requires a calendar day strictly after today.
func validateDeadline(deadline, today time.Time) error {
	if !entity.Day(deadline).After(today) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidDeadline,
			"deadline must be after today",
			domainerror.ErrInvalidDeadline,
		)
	}
	return nil
}
