// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups transactions of a single type.
type Category struct {
	ID        uuid.UUID
	Name      string
	Icon      string
	Color     string // #RRGGBB, upper-case
	Type      TransactionType
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
// Name trimming and color normalisation happen in the use case before this is called.
func NewCategory(name, icon, color string, categoryType TransactionType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Icon:      icon,
		Color:     color,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CountByType returns how many of the given categories are income and expense categories.
func CountByType(categories []*Category) (income, expense int) {
	for _, c := range categories {
		switch c.Type {
		case TransactionTypeIncome:
			income++
		case TransactionTypeExpense:
			expense++
		}
	}
	return income, expense
}
