package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
	"github.com/budget-buddy/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db       *gorm.DB
	notifier adapter.ChangeNotifier
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB, notifier adapter.ChangeNotifier) adapter.TransactionRepository {
	return &transactionRepository{
		db:       db,
		notifier: notifier,
	}
}

// Create assigns the next sequence number and inserts the transaction.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int64
		result := tx.Unscoped().
			Model(&model.TransactionModel{}).
			Select("COALESCE(MAX(sequence), 0)").
			Scan(&last)
		if result.Error != nil {
			return result.Error
		}

		transaction.Sequence = last + 1
		return tx.Create(model.TransactionFromEntity(transaction)).Error
	})
	if err != nil {
		return err
	}
	publish(ctx, r.notifier, adapter.TopicTransactions)
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves transactions matching the filter.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	transactionModels, err := r.list(r.db.WithContext(ctx), filter)
	if err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// FindByFilterWithCategory retrieves transactions matching the filter joined with their category.
func (r *transactionRepository) FindByFilterWithCategory(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	transactionModels, err := r.list(r.db.WithContext(ctx).Preload("Category"), filter)
	if err != nil {
		return nil, err
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntityWithCategory()
	}
	return transactions, nil
}

func (r *transactionRepository) list(query *gorm.DB, filter adapter.TransactionFilter) ([]model.TransactionModel, error) {
	query = applyTransactionFilter(query.Model(&model.TransactionModel{}), filter).
		Order("date DESC").
		Order("sequence ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var transactionModels []model.TransactionModel
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return transactionModels, nil
}

// GetTotals sums income and expense amounts of transactions matching the filter.
func (r *transactionRepository) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
	}

	result := applyTransactionFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Group("type").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := &adapter.TransactionTotals{
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}
	for _, row := range rows {
		// Stored amounts never exceed MoneyPlaces, so rounding only strips the
		// binary noise of engines that sum REAL columns.
		total := row.Total.Round(entity.MoneyPlaces)
		switch entity.TransactionType(row.Type) {
		case entity.TransactionTypeIncome:
			totals.IncomeTotal = total
		case entity.TransactionTypeExpense:
			totals.ExpenseTotal = total
		}
	}
	totals.NetTotal = totals.IncomeTotal.Sub(totals.ExpenseTotal)

	return totals, nil
}

// Count returns the number of transactions matching the filter.
func (r *transactionRepository) Count(ctx context.Context, filter adapter.TransactionFilter) (int64, error) {
	var count int64
	result := applyTransactionFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]any{
			"amount":      transaction.Amount,
			"type":        string(transaction.Type),
			"category_id": transaction.CategoryID,
			"date":        entity.Day(transaction.Date),
			"note":        transaction.Note,
			"updated_at":  transaction.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	publish(ctx, r.notifier, adapter.TopicTransactions)
	return nil
}

// Delete soft-deletes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	publish(ctx, r.notifier, adapter.TopicTransactions)
	return nil
}

// applyTransactionFilter adds the filter's WHERE clauses. Limit is applied by the caller.
func applyTransactionFilter(query *gorm.DB, filter adapter.TransactionFilter) *gorm.DB {
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", entity.Day(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", entity.Day(*filter.EndDate))
	}
	return query
}
