package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-buddy/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type       string          `gorm:"type:varchar(10);not null;index"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	Note       *string         `gorm:"type:text"`
	Sequence   int64           `gorm:"not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:         m.ID,
		Amount:     m.Amount,
		Type:       entity.TransactionType(m.Type),
		CategoryID: m.CategoryID,
		Date:       entity.Day(m.Date),
		Note:       m.Note,
		Sequence:   m.Sequence,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// ToEntityWithCategory converts a TransactionModel with its preloaded category.
// Category is nil when the referenced row is missing.
func (m *TransactionModel) ToEntityWithCategory() *entity.TransactionWithCategory {
	result := &entity.TransactionWithCategory{
		Transaction: m.ToEntity(),
	}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:         transaction.ID,
		Amount:     transaction.Amount,
		Type:       string(transaction.Type),
		CategoryID: transaction.CategoryID,
		Date:       entity.Day(transaction.Date),
		Note:       transaction.Note,
		Sequence:   transaction.Sequence,
		CreatedAt:  transaction.CreatedAt,
		UpdatedAt:  transaction.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
