package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
	"github.com/budget-buddy/backend/internal/integration/persistence/model"
	"github.com/budget-buddy/backend/internal/testutil"
)

func ptr[T any](v T) *T { return &v }

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	stores  *testutil.Stores
	salary  *entity.Category
	food    *entity.Category
	create  *CreateTransactionUseCase
	update  *UpdateTransactionUseCase
	list    *ListTransactionsUseCase
	totals  *GetTotalsUseCase
	deleter *DeleteTransactionUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := testutil.NewStores(t)

	salary := entity.NewCategory("Salary", "💰", "#4CAF50", entity.TransactionTypeIncome)
	food := entity.NewCategory("Groceries", "🛒", "#FF5722", entity.TransactionTypeExpense)
	require.NoError(t, s.Categories.CreateMany(context.Background(), []*entity.Category{salary, food}))

	return &fixture{
		stores:  s,
		salary:  salary,
		food:    food,
		create:  NewCreateTransactionUseCase(s.Transactions, s.Categories),
		update:  NewUpdateTransactionUseCase(s.Transactions, s.Categories),
		list:    NewListTransactionsUseCase(s.Transactions, s.Notifier, 0),
		totals:  NewGetTotalsUseCase(s.Transactions),
		deleter: NewDeleteTransactionUseCase(s.Transactions),
	}
}

func (f *fixture) add(t *testing.T, c *entity.Category, amount string, date time.Time) *entity.Transaction {
	t.Helper()
	out, err := f.create.Execute(context.Background(), CreateTransactionInput{
		Amount:     money(amount),
		Type:       c.Type,
		CategoryID: c.ID,
		Date:       date,
	})
	require.NoError(t, err)
	return out.Transaction
}

func assertTransactionCode(t *testing.T, err error, code domainerror.TransactionErrorCode) {
	t.Helper()
	var txErr *domainerror.TransactionError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, code, txErr.Code)
}

func TestCreateTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("expense today lowers the balance", func(t *testing.T) {
		f := newFixture(t)
		f.add(t, f.food, "25.50", time.Now())

		expenses, err := f.totals.TotalByType(ctx, entity.TransactionTypeExpense)
		require.NoError(t, err)
		assert.True(t, expenses.Equal(money("25.50")), expenses.String())

		balance, err := f.totals.Balance(ctx)
		require.NoError(t, err)
		assert.True(t, balance.Equal(money("-25.50")), balance.String())
	})

	t.Run("smallest positive amount is accepted", func(t *testing.T) {
		f := newFixture(t)
		tx := f.add(t, f.food, "0.01", time.Now())
		assert.True(t, tx.Amount.Equal(money("0.01")))
	})

	t.Run("note is trimmed and blank note dropped", func(t *testing.T) {
		f := newFixture(t)
		out, err := f.create.Execute(ctx, CreateTransactionInput{
			Amount: money("3"), Type: entity.TransactionTypeExpense, CategoryID: f.food.ID,
			Date: time.Now(), Note: ptr("  coffee  "),
		})
		require.NoError(t, err)
		require.NotNil(t, out.Transaction.Note)
		assert.Equal(t, "coffee", *out.Transaction.Note)

		out, err = f.create.Execute(ctx, CreateTransactionInput{
			Amount: money("3"), Type: entity.TransactionTypeExpense, CategoryID: f.food.ID,
			Date: time.Now(), Note: ptr("   "),
		})
		require.NoError(t, err)
		assert.Nil(t, out.Transaction.Note)
	})

	t.Run("date is truncated to the calendar day", func(t *testing.T) {
		f := newFixture(t)
		tx := f.add(t, f.food, "1", time.Date(2026, 6, 1, 23, 15, 0, 0, time.UTC))
		assert.Equal(t, day(2026, 6, 1), tx.Date)
	})

	tests := []struct {
		name  string
		input func(f *fixture) CreateTransactionInput
		code  domainerror.TransactionErrorCode
	}{
		{
			name: "zero amount",
			input: func(f *fixture) CreateTransactionInput {
				return CreateTransactionInput{Amount: decimal.Zero, Type: entity.TransactionTypeExpense, CategoryID: f.food.ID, Date: time.Now()}
			},
			code: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "negative amount",
			input: func(f *fixture) CreateTransactionInput {
				return CreateTransactionInput{Amount: money("-5"), Type: entity.TransactionTypeExpense, CategoryID: f.food.ID, Date: time.Now()}
			},
			code: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "sub-cent amount",
			input: func(f *fixture) CreateTransactionInput {
				return CreateTransactionInput{Amount: money("0.001"), Type: entity.TransactionTypeExpense, CategoryID: f.food.ID, Date: time.Now()}
			},
			code: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "unknown type",
			input: func(f *fixture) CreateTransactionInput {
				return CreateTransactionInput{Amount: money("5"), Type: "transfer", CategoryID: f.food.ID, Date: time.Now()}
			},
			code: domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name: "missing category",
			input: func(f *fixture) CreateTransactionInput {
				return CreateTransactionInput{Amount: money("5"), Type: entity.TransactionTypeExpense, CategoryID: uuid.New(), Date: time.Now()}
			},
			code: domainerror.ErrCodeCategoryNotFoundForTxn,
		},
		{
			name: "category type mismatch",
			input: func(f *fixture) CreateTransactionInput {
				return CreateTransactionInput{Amount: money("100"), Type: entity.TransactionTypeExpense, CategoryID: f.salary.ID, Date: time.Now()}
			},
			code: domainerror.ErrCodeCategoryTypeMismatch,
		},
		{
			name: "missing date",
			input: func(f *fixture) CreateTransactionInput {
				return CreateTransactionInput{Amount: money("5"), Type: entity.TransactionTypeExpense, CategoryID: f.food.ID}
			},
			code: domainerror.ErrCodeInvalidTransactionDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.create.Execute(ctx, tt.input(f))
			assertTransactionCode(t, err, tt.code)
			assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))

			count, err := f.totals.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, count, "store must be untouched")
		})
	}
}

func TestBalanceMatchesTotals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.add(t, f.salary, "2500", day(2026, 1, 27))
	f.add(t, f.food, "80.40", day(2026, 1, 28))
	f.add(t, f.food, "19.60", day(2026, 2, 2))

	income, err := f.totals.TotalByType(ctx, entity.TransactionTypeIncome)
	require.NoError(t, err)
	expenses, err := f.totals.TotalByType(ctx, entity.TransactionTypeExpense)
	require.NoError(t, err)
	balance, err := f.totals.Balance(ctx)
	require.NoError(t, err)

	assert.True(t, balance.Equal(income.Sub(expenses)))
	assert.True(t, balance.Equal(money("2400")), balance.String())

	out, err := f.totals.Execute(ctx)
	require.NoError(t, err)
	assert.True(t, out.Balance.Equal(balance))
	assert.Equal(t, int64(3), out.Count)

	between, err := f.totals.TotalsBetween(ctx, day(2026, 2, 1), day(2026, 2, 28))
	require.NoError(t, err)
	assert.True(t, between.IncomeTotal.IsZero())
	assert.True(t, between.ExpenseTotal.Equal(money("19.60")))
}

func TestListTransactionsUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.add(t, f.food, "1", day(2026, 5, 1))
	b := f.add(t, f.salary, "2", day(2026, 5, 3))
	c := f.add(t, f.food, "3", day(2026, 5, 1))

	t.Run("newest first with stable ties", func(t *testing.T) {
		out, err := f.list.Execute(ctx, ListTransactionsInput{})
		require.NoError(t, err)
		require.Len(t, out.Transactions, 3)
		assert.Equal(t, []uuid.UUID{b.ID, a.ID, c.ID}, []uuid.UUID{
			out.Transactions[0].ID, out.Transactions[1].ID, out.Transactions[2].ID,
		})
	})

	t.Run("by type and by category", func(t *testing.T) {
		out, err := f.list.Execute(ctx, ListTransactionsInput{Type: ptr(entity.TransactionTypeIncome)})
		require.NoError(t, err)
		require.Len(t, out.Transactions, 1)
		assert.Equal(t, b.ID, out.Transactions[0].ID)

		out, err = f.list.Execute(ctx, ListTransactionsInput{CategoryID: &f.food.ID})
		require.NoError(t, err)
		assert.Len(t, out.Transactions, 2)
	})

	t.Run("recent defaults and truncates", func(t *testing.T) {
		recent, err := f.list.Recent(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, recent, 3)

		recent, err = f.list.Recent(ctx, 1)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, b.ID, recent[0].ID)
	})

	t.Run("joined with category", func(t *testing.T) {
		joined, err := f.list.RecentWithCategory(ctx, 2)
		require.NoError(t, err)
		require.Len(t, joined, 2)
		assert.Equal(t, "Salary", joined[0].Category.Name)
		assert.Equal(t, "Groceries", joined[1].Category.Name)
	})
}

func TestListWithMissingCategoryIsIntegrityViolation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.add(t, f.food, "9", day(2026, 5, 1))

	// Remove the category behind the store's back.
	require.NoError(t, f.stores.DB.Delete(&model.CategoryModel{}, "id = ?", f.food.ID).Error)

	_, err := f.list.WithCategory(ctx, ListTransactionsInput{})
	assert.ErrorIs(t, err, domainerror.ErrIntegrityViolation)
	assert.Equal(t, domainerror.KindIntegrityViolation, domainerror.KindOf(err))
}

func TestWatchRecentWithCategory(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture(t)

	updates, err := f.list.WatchRecentWithCategory(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, <-updates)

	f.add(t, f.food, "12", day(2026, 7, 1))

	select {
	case next := <-updates:
		require.Len(t, next, 1)
		assert.Equal(t, "Groceries", next[0].Category.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot after transaction insert")
	}
}

func TestFractionalTotalsStayExact(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.add(t, f.salary, "0.10", day(2026, 4, 1))
	f.add(t, f.salary, "0.20", day(2026, 4, 2))
	f.add(t, f.salary, "1000.3", day(2026, 4, 3))
	f.add(t, f.food, "0.7", day(2026, 4, 4))
	f.add(t, f.food, "0.1", day(2026, 4, 5))
	f.add(t, f.food, "100.1", day(2026, 4, 6))
	f.add(t, f.food, "200.2", day(2026, 4, 7))

	income, err := f.totals.TotalByType(ctx, entity.TransactionTypeIncome)
	require.NoError(t, err)
	assert.True(t, income.Equal(money("1000.6")), income.String())

	expenses, err := f.totals.TotalByType(ctx, entity.TransactionTypeExpense)
	require.NoError(t, err)
	assert.True(t, expenses.Equal(money("301.1")), expenses.String())

	balance, err := f.totals.Balance(ctx)
	require.NoError(t, err)
	assert.True(t, balance.Equal(income.Sub(expenses)), balance.String())
	assert.True(t, balance.Equal(money("699.5")), balance.String())
}

func TestUpdateTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("re-validates merged values", func(t *testing.T) {
		f := newFixture(t)
		tx := f.add(t, f.food, "10", day(2026, 3, 3))

		_, err := f.update.Execute(ctx, UpdateTransactionInput{TransactionID: tx.ID, Amount: ptr(decimal.Zero)})
		assertTransactionCode(t, err, domainerror.ErrCodeInvalidTransactionAmount)

		_, err = f.update.Execute(ctx, UpdateTransactionInput{TransactionID: tx.ID, Amount: ptr(money("9.999"))})
		assertTransactionCode(t, err, domainerror.ErrCodeInvalidTransactionAmount)

		_, err = f.update.Execute(ctx, UpdateTransactionInput{TransactionID: tx.ID, Type: ptr(entity.TransactionTypeIncome)})
		assertTransactionCode(t, err, domainerror.ErrCodeCategoryTypeMismatch)

		stored, err := f.stores.Transactions.FindByID(ctx, tx.ID)
		require.NoError(t, err)
		assert.True(t, stored.Amount.Equal(money("10")))
	})

	t.Run("moves a transaction to another category and type", func(t *testing.T) {
		f := newFixture(t)
		tx := f.add(t, f.food, "10", day(2026, 3, 3))

		out, err := f.update.Execute(ctx, UpdateTransactionInput{
			TransactionID: tx.ID,
			Type:          ptr(entity.TransactionTypeIncome),
			CategoryID:    &f.salary.ID,
			Note:          ptr("refund"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Salary", out.Category.Name)

		income, err := f.totals.TotalByType(ctx, entity.TransactionTypeIncome)
		require.NoError(t, err)
		assert.True(t, income.Equal(money("10")))
	})

	t.Run("missing transaction", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.update.Execute(ctx, UpdateTransactionInput{TransactionID: uuid.New()})
		assertTransactionCode(t, err, domainerror.ErrCodeTransactionNotFound)
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tx := f.add(t, f.food, "10", day(2026, 3, 3))

	require.NoError(t, f.deleter.Execute(ctx, tx.ID))

	err := f.deleter.Execute(ctx, tx.ID)
	assertTransactionCode(t, err, domainerror.ErrCodeTransactionNotFound)

	_, err = NewGetTransactionUseCase(f.stores.Transactions).Execute(ctx, tx.ID)
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))

	count, err := f.stores.Transactions.Count(ctx, adapter.TransactionFilter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}
