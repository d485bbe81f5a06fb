package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
	"github.com/budget-buddy/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db       *gorm.DB
	notifier adapter.ChangeNotifier
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB, notifier adapter.ChangeNotifier) adapter.GoalRepository {
	return &goalRepository{
		db:       db,
		notifier: notifier,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	publish(ctx, r.notifier, adapter.TopicGoals)
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindAll retrieves goals ordered by deadline, goals without one last.
func (r *goalRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Goal, error) {
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_completed = ?", false)
	}

	var goalModels []model.GoalModel
	result := query.
		Order("deadline IS NULL").
		Order("deadline ASC").
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}

// Update updates title, target amount and deadline of an existing goal. A goal
// whose saved amount already covers the new target becomes completed.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stored, err := findGoalForUpdate(tx, goal.ID)
		if err != nil {
			return err
		}

		completed := stored.IsCompleted || stored.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)
		result := tx.Model(&model.GoalModel{}).
			Where("id = ?", goal.ID).
			Updates(map[string]any{
				"title":         goal.Title,
				"target_amount": goal.TargetAmount,
				"deadline":      goal.Deadline,
				"is_completed":  completed,
				"updated_at":    goal.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}

		goal.CurrentAmount = stored.CurrentAmount
		goal.IsCompleted = completed
		return nil
	})
	if err != nil {
		return err
	}
	publish(ctx, r.notifier, adapter.TopicGoals)
	return nil
}

// AddAmount adds to the current amount of an active goal and derives the
// completion flag from the new total. Both columns are computed in decimal
// arithmetic and written by one UPDATE inside a locked transaction.
func (r *goalRepository) AddAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stored, err := findGoalForUpdate(tx, id)
		if err != nil {
			return err
		}
		if stored.IsCompleted {
			return domainerror.ErrGoalAlreadyCompleted
		}

		current := stored.CurrentAmount.Add(amount)
		return tx.Model(&model.GoalModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"current_amount": current,
				"is_completed":   current.GreaterThanOrEqual(stored.TargetAmount),
				"updated_at":     time.Now().UTC(),
			}).Error
	})
	if err != nil {
		return err
	}
	publish(ctx, r.notifier, adapter.TopicGoals)
	return nil
}

func findGoalForUpdate(tx *gorm.DB, id uuid.UUID) (*model.GoalModel, error) {
	var goalModel model.GoalModel
	result := lockRows(tx, lockUpdate).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return &goalModel, nil
}

// MarkCompleted sets the completion flag without touching any other column.
func (r *goalRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", id).
		UpdateColumn("is_completed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	publish(ctx, r.notifier, adapter.TopicGoals)
	return nil
}

// Delete soft-deletes a goal from the database.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	publish(ctx, r.notifier, adapter.TopicGoals)
	return nil
}
