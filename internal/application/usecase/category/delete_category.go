package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/budget-buddy/backend/internal/application/adapter"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
)

// DeletePolicy decides what happens to the transactions of a deleted category.
type DeletePolicy string

const (
	// DeletePolicyCascade deletes the category together with its transactions.
	DeletePolicyCascade DeletePolicy = "cascade"
	// DeletePolicyRestrict refuses to delete a category that has transactions.
	DeletePolicyRestrict DeletePolicy = "restrict"
)

// ParseDeletePolicy parses a policy name, falling back to cascade for unknown values.
func ParseDeletePolicy(s string) DeletePolicy {
	if DeletePolicy(s) == DeletePolicyRestrict {
		return DeletePolicyRestrict
	}
	return DeletePolicyCascade
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	DeletedTransactions int64
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	policy       DeletePolicy
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	policy DeletePolicy,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		policy:       policy,
	}
}

// Execute deletes the category according to the configured policy.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, id uuid.UUID) (*DeleteCategoryOutput, error) {
	if _, err := findCategory(ctx, uc.categoryRepo, id); err != nil {
		return nil, err
	}

	removed, err := uc.categoryRepo.Delete(ctx, id, uc.policy != DeletePolicyRestrict)
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrCategoryNotFound):
			return nil, notFound()
		case errors.Is(err, domainerror.ErrCategoryInUse):
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				"category has transactions",
				domainerror.ErrCategoryInUse,
			)
		}
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	if removed > 0 {
		slog.Info("Category deleted with its transactions",
			"category_id", id,
			"transactions", removed,
		)
	}

	return &DeleteCategoryOutput{
		DeletedTransactions: removed,
	}, nil
}
