package category

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
	"github.com/budget-buddy/backend/internal/testutil"
)

func ptr[T any](v T) *T { return &v }

func assertCategoryCode(t *testing.T, err error, code domainerror.CategoryErrorCode) {
	t.Helper()
	var categoryErr *domainerror.CategoryError
	require.ErrorAs(t, err, &categoryErr)
	assert.Equal(t, code, categoryErr.Code)
}

func mustCreate(t *testing.T, uc *CreateCategoryUseCase, name string, categoryType entity.TransactionType) *entity.Category {
	t.Helper()
	out, err := uc.Execute(context.Background(), CreateCategoryInput{
		Name:  name,
		Icon:  "🏷",
		Color: "#123456",
		Type:  categoryType,
	})
	require.NoError(t, err)
	return out.Category
}

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("normalises name and color", func(t *testing.T) {
		s := testutil.NewStores(t)
		uc := NewCreateCategoryUseCase(s.Categories)

		out, err := uc.Execute(ctx, CreateCategoryInput{
			Name:  "  Groceries ",
			Icon:  "🛒",
			Color: "#ff5722",
			Type:  entity.TransactionTypeExpense,
		})
		require.NoError(t, err)
		assert.Equal(t, "Groceries", out.Category.Name)
		assert.Equal(t, "#FF5722", out.Category.Color)

		stored, err := s.Categories.FindByID(ctx, out.Category.ID)
		require.NoError(t, err)
		assert.Equal(t, "#FF5722", stored.Color)
	})

	tests := []struct {
		name  string
		input CreateCategoryInput
		code  domainerror.CategoryErrorCode
	}{
		{
			name:  "blank name",
			input: CreateCategoryInput{Name: "   ", Icon: "🛒", Color: "#FF5722", Type: entity.TransactionTypeExpense},
			code:  domainerror.ErrCodeInvalidCategoryName,
		},
		{
			name:  "blank icon",
			input: CreateCategoryInput{Name: "Food", Icon: " ", Color: "#FF5722", Type: entity.TransactionTypeExpense},
			code:  domainerror.ErrCodeInvalidCategoryIcon,
		},
		{
			name:  "short color",
			input: CreateCategoryInput{Name: "Food", Icon: "🛒", Color: "#FFF", Type: entity.TransactionTypeExpense},
			code:  domainerror.ErrCodeInvalidColorFormat,
		},
		{
			name:  "color without hash",
			input: CreateCategoryInput{Name: "Food", Icon: "🛒", Color: "FF5722", Type: entity.TransactionTypeExpense},
			code:  domainerror.ErrCodeInvalidColorFormat,
		},
		{
			name:  "unknown type",
			input: CreateCategoryInput{Name: "Food", Icon: "🛒", Color: "#FF5722", Type: "transfer"},
			code:  domainerror.ErrCodeInvalidCategoryType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.NewStores(t)
			uc := NewCreateCategoryUseCase(s.Categories)

			_, err := uc.Execute(ctx, tt.input)
			assertCategoryCode(t, err, tt.code)
			assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))

			count, err := s.Categories.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestGetCategoryUseCase(t *testing.T) {
	s := testutil.NewStores(t)
	uc := NewGetCategoryUseCase(s.Categories)

	_, err := uc.Execute(context.Background(), uuid.New())
	assertCategoryCode(t, err, domainerror.ErrCodeCategoryNotFound)
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
}

func TestListCategoriesUseCase(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewStores(t)
	create := NewCreateCategoryUseCase(s.Categories)
	mustCreate(t, create, "Transport", entity.TransactionTypeExpense)
	mustCreate(t, create, "Salary", entity.TransactionTypeIncome)
	mustCreate(t, create, "Groceries", entity.TransactionTypeExpense)

	uc := NewListCategoriesUseCase(s.Categories, s.Notifier)

	t.Run("all sorted by name", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListCategoriesInput{})
		require.NoError(t, err)
		require.Len(t, out.Categories, 3)
		assert.Equal(t, "Groceries", out.Categories[0].Name)
		assert.Equal(t, "Salary", out.Categories[1].Name)
		assert.Equal(t, "Transport", out.Categories[2].Name)
	})

	t.Run("filtered by type", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListCategoriesInput{Type: ptr(entity.TransactionTypeIncome)})
		require.NoError(t, err)
		require.Len(t, out.Categories, 1)
		assert.Equal(t, "Salary", out.Categories[0].Name)
	})

	t.Run("watch re-emits after a change", func(t *testing.T) {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		updates, err := uc.Watch(watchCtx, ListCategoriesInput{})
		require.NoError(t, err)

		initial := <-updates
		assert.Len(t, initial, 3)

		mustCreate(t, create, "Bonus", entity.TransactionTypeIncome)

		select {
		case next := <-updates:
			require.Len(t, next, 4)
			assert.Equal(t, "Bonus", next[0].Name)
		case <-time.After(2 * time.Second):
			t.Fatal("no snapshot after category change")
		}
	})
}

func TestUpdateCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("validates and normalises changes", func(t *testing.T) {
		s := testutil.NewStores(t)
		c := mustCreate(t, NewCreateCategoryUseCase(s.Categories), "Food", entity.TransactionTypeExpense)
		uc := NewUpdateCategoryUseCase(s.Categories)

		out, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: c.ID, Name: ptr(" Groceries "), Color: ptr("#abcdef")})
		require.NoError(t, err)
		assert.Equal(t, "Groceries", out.Category.Name)
		assert.Equal(t, "#ABCDEF", out.Category.Color)

		_, err = uc.Execute(ctx, UpdateCategoryInput{CategoryID: c.ID, Color: ptr("blue")})
		assertCategoryCode(t, err, domainerror.ErrCodeInvalidColorFormat)
	})

	t.Run("missing category", func(t *testing.T) {
		s := testutil.NewStores(t)
		uc := NewUpdateCategoryUseCase(s.Categories)

		_, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: uuid.New(), Name: ptr("x")})
		assertCategoryCode(t, err, domainerror.ErrCodeCategoryNotFound)
	})

	t.Run("type change denied while transactions exist", func(t *testing.T) {
		s := testutil.NewStores(t)
		c := mustCreate(t, NewCreateCategoryUseCase(s.Categories), "Food", entity.TransactionTypeExpense)
		tx := entity.NewTransaction(decimal.NewFromInt(5), c.Type, c.ID, time.Now(), nil)
		require.NoError(t, s.Transactions.Create(ctx, tx))
		uc := NewUpdateCategoryUseCase(s.Categories)

		_, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: c.ID, Type: ptr(entity.TransactionTypeIncome)})
		assertCategoryCode(t, err, domainerror.ErrCodeCategoryTypeLocked)
		assert.Equal(t, domainerror.KindReferentialIntegrity, domainerror.KindOf(err))
	})

	t.Run("type change allowed without transactions", func(t *testing.T) {
		s := testutil.NewStores(t)
		c := mustCreate(t, NewCreateCategoryUseCase(s.Categories), "Gifts", entity.TransactionTypeExpense)
		uc := NewUpdateCategoryUseCase(s.Categories)

		out, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: c.ID, Type: ptr(entity.TransactionTypeIncome)})
		require.NoError(t, err)
		assert.Equal(t, entity.TransactionTypeIncome, out.Category.Type)
	})
}

func TestDeleteCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*testutil.Stores, *entity.Category) {
		s := testutil.NewStores(t)
		c := mustCreate(t, NewCreateCategoryUseCase(s.Categories), "Food", entity.TransactionTypeExpense)
		tx := entity.NewTransaction(decimal.NewFromInt(5), c.Type, c.ID, time.Now(), nil)
		require.NoError(t, s.Transactions.Create(ctx, tx))
		return s, c
	}

	t.Run("cascade removes transactions", func(t *testing.T) {
		s, c := setup(t)
		uc := NewDeleteCategoryUseCase(s.Categories, DeletePolicyCascade)

		out, err := uc.Execute(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), out.DeletedTransactions)

		count, err := s.Transactions.Count(ctx, adapter.TransactionFilter{})
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("restrict refuses while transactions exist", func(t *testing.T) {
		s, c := setup(t)
		uc := NewDeleteCategoryUseCase(s.Categories, DeletePolicyRestrict)

		_, err := uc.Execute(ctx, c.ID)
		assertCategoryCode(t, err, domainerror.ErrCodeCategoryInUse)

		_, err = s.Categories.FindByID(ctx, c.ID)
		assert.NoError(t, err)
	})

	t.Run("restrict deletes an unused category", func(t *testing.T) {
		s := testutil.NewStores(t)
		c := mustCreate(t, NewCreateCategoryUseCase(s.Categories), "Gifts", entity.TransactionTypeExpense)
		uc := NewDeleteCategoryUseCase(s.Categories, DeletePolicyRestrict)

		out, err := uc.Execute(ctx, c.ID)
		require.NoError(t, err)
		assert.Zero(t, out.DeletedTransactions)

		_, err = s.Categories.FindByID(ctx, c.ID)
		assertCategoryCode(t, err, domainerror.ErrCodeCategoryNotFound)
	})

	t.Run("missing category", func(t *testing.T) {
		s := testutil.NewStores(t)
		uc := NewDeleteCategoryUseCase(s.Categories, DeletePolicyCascade)

		_, err := uc.Execute(ctx, uuid.New())
		assertCategoryCode(t, err, domainerror.ErrCodeCategoryNotFound)
	})
}

func TestSeedDefaultCategoriesUseCase(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewStores(t)
	uc := NewSeedDefaultCategoriesUseCase(s.Categories)

	out, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultCategories), out.Created)

	out, err = uc.Execute(ctx)
	require.NoError(t, err)
	assert.Zero(t, out.Created)

	income, err := s.Categories.FindByType(ctx, entity.TransactionTypeIncome)
	require.NoError(t, err)
	assert.Len(t, income, 4)

	expense, err := s.Categories.FindByType(ctx, entity.TransactionTypeExpense)
	require.NoError(t, err)
	assert.Len(t, expense, 6)
}

func TestParseDeletePolicy(t *testing.T) {
	assert.Equal(t, DeletePolicyRestrict, ParseDeletePolicy("restrict"))
	assert.Equal(t, DeletePolicyCascade, ParseDeletePolicy("cascade"))
	assert.Equal(t, DeletePolicyCascade, ParseDeletePolicy(""))
}
