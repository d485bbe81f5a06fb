package dto

import (
	"time"

	"github.com/budget-buddy/backend/internal/application/usecase/category"
	"github.com/budget-buddy/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon" binding:"required"`
	Color string `json:"color" binding:"required"`
	Type  string `json:"type" binding:"required"`
}

// ToInput converts the request into use case input.
func (r CreateCategoryRequest) ToInput() category.CreateCategoryInput {
	t, _ := entity.ParseTransactionType(r.Type)
	return category.CreateCategoryInput{
		Name:  r.Name,
		Icon:  r.Icon,
		Color: r.Color,
		Type:  t,
	}
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty"`
	Type  *string `json:"type,omitempty"`
}

// ToInput converts the request into use case input.
func (r UpdateCategoryRequest) ToInput() category.UpdateCategoryInput {
	input := category.UpdateCategoryInput{
		Name:  r.Name,
		Icon:  r.Icon,
		Color: r.Color,
	}
	if r.Type != nil {
		t, _ := entity.ParseTransactionType(*r.Type)
		input.Type = &t
	}
	return input
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// DeleteCategoryResponse reports what a category deletion removed.
type DeleteCategoryResponse struct {
	DeletedTransactions int64 `json:"deleted_transactions"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		Type:      string(c.Type),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of categories to CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{
		Categories: items,
	}
}
