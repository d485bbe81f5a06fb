package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-buddy/backend/internal/application/usecase/transaction"
	"github.com/budget-buddy/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Amount     *decimal.Decimal `json:"amount" binding:"required"`
	Type       string           `json:"type" binding:"required"`
	CategoryID string           `json:"category_id" binding:"required,uuid"`
	Date       string           `json:"date" binding:"required"`
	Note       *string          `json:"note,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Type       *string          `json:"type,omitempty"`
	CategoryID *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Date       *string          `json:"date,omitempty"`
	Note       *string          `json:"note,omitempty"`
}

// TransactionCategoryResponse represents category information in transaction response.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID         string                       `json:"id"`
	Amount     Money                        `json:"amount"`
	Type       string                       `json:"type"`
	CategoryID string                       `json:"category_id"`
	Category   *TransactionCategoryResponse `json:"category,omitempty"`
	Date       string                       `json:"date"`
	Note       *string                      `json:"note,omitempty"`
	CreatedAt  time.Time                    `json:"created_at"`
	UpdatedAt  time.Time                    `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	TotalIncome   Money `json:"total_income"`
	TotalExpenses Money `json:"total_expenses"`
	Balance       Money `json:"balance"`
	Count         int64 `json:"count"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
// category may be nil.
func ToTransactionResponse(t *entity.Transaction, c *entity.Category) TransactionResponse {
	response := TransactionResponse{
		ID:         t.ID.String(),
		Amount:     Money(t.Amount),
		Type:       string(t.Type),
		CategoryID: t.CategoryID.String(),
		Date:       FormatDate(t.Date),
		Note:       t.Note,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}

	if c != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    c.ID.String(),
			Name:  c.Name,
			Icon:  c.Icon,
			Color: c.Color,
			Type:  string(c.Type),
		}
	}

	return response
}

// ToTransactionListResponse converts transactions without category details.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		items[i] = ToTransactionResponse(t, nil)
	}
	return TransactionListResponse{
		Transactions: items,
	}
}

// ToTransactionWithCategoryListResponse converts transactions joined with their category.
func ToTransactionWithCategoryListResponse(transactions []*entity.TransactionWithCategory) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		items[i] = ToTransactionResponse(t.Transaction, t.Category)
	}
	return TransactionListResponse{
		Transactions: items,
	}
}

// ToTransactionTotalsResponse converts totals to TransactionTotalsResponse.
func ToTransactionTotalsResponse(out *transaction.GetTotalsOutput) TransactionTotalsResponse {
	return TransactionTotalsResponse{
		TotalIncome:   Money(out.TotalIncome),
		TotalExpenses: Money(out.TotalExpenses),
		Balance:       Money(out.Balance),
		Count:         out.Count,
	}
}
