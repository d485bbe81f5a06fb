// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of a transaction or category (income or expense).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// ParseTransactionType parses a transaction type case-insensitively.
func ParseTransactionType(s string) (TransactionType, bool) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// Transaction represents a single income or expense entry.
type Transaction struct {
	ID         uuid.UUID
	Amount     decimal.Decimal // Always positive; Type gives the sign
	Type       TransactionType
	CategoryID uuid.UUID
	Date       time.Time // Calendar day at 00:00 UTC
	Note       *string
	Sequence   int64 // Insertion order, assigned by the store
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity. The date is truncated to its calendar day.
func NewTransaction(
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID uuid.UUID,
	date time.Time,
	note *string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:         uuid.New(),
		Amount:     amount,
		Type:       transactionType,
		CategoryID: categoryID,
		Date:       Day(date),
		Note:       note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SignedAmount returns +Amount for income and -Amount for expenses.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionWithCategory pairs a transaction with the category it references.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
