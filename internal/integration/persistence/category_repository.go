// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
	"github.com/budget-buddy/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db       *gorm.DB
	notifier adapter.ChangeNotifier
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB, notifier adapter.ChangeNotifier) adapter.CategoryRepository {
	return &categoryRepository{
		db:       db,
		notifier: notifier,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	publish(ctx, r.notifier, adapter.TopicCategories)
	return nil
}

// CreateMany inserts several categories in one database transaction.
func (r *categoryRepository) CreateMany(ctx context.Context, categories []*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}

	categoryModels := make([]*model.CategoryModel, len(categories))
	for i, c := range categories {
		categoryModels[i] = model.CategoryFromEntity(c)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&categoryModels).Error
	})
	if err != nil {
		return err
	}
	publish(ctx, r.notifier, adapter.TopicCategories)
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindAll retrieves every category.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return r.find(r.db.WithContext(ctx))
}

// FindByType retrieves the categories of one type.
func (r *categoryRepository) FindByType(ctx context.Context, categoryType entity.TransactionType) ([]*entity.Category, error) {
	return r.find(r.db.WithContext(ctx).Where("type = ?", string(categoryType)))
}

func (r *categoryRepository) find(query *gorm.DB) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := query.Order("name ASC").Order("created_at ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

// Count returns the number of categories.
func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing category in the database. The type only changes
// while no transaction references the category; the check and the write share
// one database transaction.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored model.CategoryModel
		if err := lockRows(tx, lockUpdate).Where("id = ?", category.ID).First(&stored).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrCategoryNotFound
			}
			return err
		}

		if stored.Type != string(category.Type) {
			count, err := countCategoryTransactions(tx, category.ID)
			if err != nil {
				return err
			}
			if count > 0 {
				return domainerror.ErrCategoryTypeLocked
			}
		}

		return tx.Model(&model.CategoryModel{}).
			Where("id = ?", category.ID).
			Updates(map[string]any{
				"name":       category.Name,
				"icon":       category.Icon,
				"color":      category.Color,
				"type":       string(category.Type),
				"updated_at": category.UpdatedAt,
			}).Error
	})
	if err != nil {
		return err
	}
	publish(ctx, r.notifier, adapter.TopicCategories)
	return nil
}

// Delete removes a category in one database transaction. With cascade its
// transactions go with it; without, a category that has transactions is kept
// and domainerror.ErrCategoryInUse is returned.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID, cascade bool) (int64, error) {
	var removedTransactions int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRows(tx, lockUpdate).Where("id = ?", id).First(&model.CategoryModel{}).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrCategoryNotFound
			}
			return err
		}

		if !cascade {
			count, err := countCategoryTransactions(tx, id)
			if err != nil {
				return err
			}
			if count > 0 {
				return domainerror.ErrCategoryInUse
			}
		}

		result := tx.Where("category_id = ?", id).Delete(&model.TransactionModel{})
		if result.Error != nil {
			return result.Error
		}
		removedTransactions = result.RowsAffected

		return tx.Delete(&model.CategoryModel{}, "id = ?", id).Error
	})
	if err != nil {
		return 0, err
	}

	if removedTransactions > 0 {
		publish(ctx, r.notifier, adapter.TopicCategories, adapter.TopicTransactions)
	} else {
		publish(ctx, r.notifier, adapter.TopicCategories)
	}
	return removedTransactions, nil
}

func countCategoryTransactions(tx *gorm.DB, id uuid.UUID) (int64, error) {
	var count int64
	err := tx.Model(&model.TransactionModel{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}
