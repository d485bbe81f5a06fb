// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-buddy/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// Lists are ordered by name ascending.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// CreateMany inserts several categories in one database transaction.
	CreateMany(ctx context.Context, categories []*entity.Category) error

	// FindByID retrieves a category by its ID.
	// Returns domainerror.ErrCategoryNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves every category.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByType retrieves the categories of one type.
	FindByType(ctx context.Context, categoryType entity.TransactionType) ([]*entity.Category, error)

	// Count returns the number of categories.
	Count(ctx context.Context) (int64, error)

	// Update updates name, icon, color and type of an existing category.
	// A type change is refused with ErrCategoryTypeLocked while transactions reference it.
	// Returns domainerror.ErrCategoryNotFound when it does not exist.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category in one database transaction. With cascade its
	// transactions are removed too; otherwise a category in use yields ErrCategoryInUse.
	// Returns the number of transactions removed, or domainerror.ErrCategoryNotFound.
	Delete(ctx context.Context, id uuid.UUID, cascade bool) (int64, error)
}
