package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-buddy/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
// Lists are ordered by deadline ascending with missing deadlines last, then by creation time.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	// Returns domainerror.ErrGoalNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindAll retrieves goals, only those not completed when activeOnly is set.
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Goal, error)

	// Update updates title, target amount and deadline of an existing goal, and completes
	// it when the saved amount covers the new target. goal.CurrentAmount and
	// goal.IsCompleted are refreshed from the stored row.
	// Returns domainerror.ErrGoalNotFound when it does not exist.
	Update(ctx context.Context, goal *entity.Goal) error

	// AddAmount adds amount to the current amount of an active goal and sets the
	// completion flag from the new total. Both are written together in one transaction.
	// Returns domainerror.ErrGoalNotFound or domainerror.ErrGoalAlreadyCompleted.
	AddAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	// MarkCompleted sets the completion flag and leaves every other column untouched.
	// Returns domainerror.ErrGoalNotFound when it does not exist.
	MarkCompleted(ctx context.Context, id uuid.UUID) error

	// Delete soft-deletes a goal from the database.
	// Returns domainerror.ErrGoalNotFound when it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
