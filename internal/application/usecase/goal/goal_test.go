package goal

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

var fixedNow = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func assertGoalCode(t *testing.T, err error, code domainerror.GoalErrorCode) {
	t.Helper()
	var goalErr *domainerror.GoalError
	require.ErrorAs(t, err, &goalErr)
	assert.Equal(t, code, goalErr.Code)
}

func createGoal(t *testing.T, s *testutil.Stores, input CreateGoalInput) *entity.Goal {
	t.Helper()
	out, err := NewCreateGoalUseCase(s.Goals, fixedClock).Execute(context.Background(), input)
	require.NoError(t, err)
	return out.Goal
}

func TestCreateGoalUseCase(t *testing.T) {
	ctx := context.Background()
	tomorrow := fixedNow.AddDate(0, 0, 1)

	tests := []struct {
		name  string
		input CreateGoalInput
		code  domainerror.GoalErrorCode
	}{
		{
			name:  "blank title",
			input: CreateGoalInput{Title: "   ", TargetAmount: money("100")},
			code:  domainerror.ErrCodeInvalidGoalTitle,
		},
		{
			name:  "zero target",
			input: CreateGoalInput{Title: "Bike", TargetAmount: decimal.Zero},
			code:  domainerror.ErrCodeInvalidTargetAmount,
		},
		{
			name:  "negative current",
			input: CreateGoalInput{Title: "Bike", TargetAmount: money("100"), CurrentAmount: money("-1")},
			code:  domainerror.ErrCodeInvalidCurrentAmount,
		},
		{
			name:  "current above target",
			input: CreateGoalInput{Title: "Bike", TargetAmount: money("100"), CurrentAmount: money("100.01")},
			code:  domainerror.ErrCodeCurrentExceedsTarget,
		},
		{
			name:  "sub-cent target",
			input: CreateGoalInput{Title: "Bike", TargetAmount: money("0.001")},
			code:  domainerror.ErrCodeInvalidTargetAmount,
		},
		{
			name:  "sub-cent current",
			input: CreateGoalInput{Title: "Bike", TargetAmount: money("100"), CurrentAmount: money("0.001")},
			code:  domainerror.ErrCodeInvalidCurrentAmount,
		},
		{
			name:  "deadline today",
			input: CreateGoalInput{Title: "Bike", TargetAmount: money("100"), Deadline: ptr(fixedNow)},
			code:  domainerror.ErrCodeInvalidDeadline,
		},
		{
			name:  "deadline in the past",
			input: CreateGoalInput{Title: "Bike", TargetAmount: money("100"), Deadline: ptr(fixedNow.AddDate(0, -1, 0))},
			code:  domainerror.ErrCodeInvalidDeadline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.NewStores(t)

			_, err := NewCreateGoalUseCase(s.Goals, fixedClock).Execute(ctx, tt.input)
			assertGoalCode(t, err, tt.code)
			assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))

			goals, err := s.Goals.FindAll(ctx, false)
			require.NoError(t, err)
			assert.Empty(t, goals)
		})
	}

	t.Run("deadline tomorrow is accepted", func(t *testing.T) {
		s := testutil.NewStores(t)
		goal := createGoal(t, s, CreateGoalInput{Title: " Bike ", TargetAmount: money("100"), Deadline: &tomorrow})
		assert.Equal(t, "Bike", goal.Title)
		assert.Equal(t, entity.Day(tomorrow), *goal.Deadline)
		assert.False(t, goal.IsCompleted)
	})

	t.Run("starting at the target is completed", func(t *testing.T) {
		s := testutil.NewStores(t)
		goal := createGoal(t, s, CreateGoalInput{Title: "Bike", TargetAmount: money("100"), CurrentAmount: money("100")})
		assert.True(t, goal.IsCompleted)
	})
}

func TestGoalProgressAndContribution(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewStores(t)
	deadline := fixedNow.AddDate(0, 6, 0)

	goal := createGoal(t, s, CreateGoalInput{
		Title:         "Vacation",
		TargetAmount:  money("1500"),
		CurrentAmount: money("250"),
		Deadline:      &deadline,
	})

	progress, err := NewGetGoalProgressUseCase(s.Goals, s.Notifier, fixedClock).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.InDelta(t, 16.67, progress[0].ProgressPercentage, 0.01)
	assert.True(t, progress[0].RemainingAmount.Equal(money("1250")))
	require.NotNil(t, progress[0].DaysUntilDeadline)
	assert.Equal(t, 181, *progress[0].DaysUntilDeadline)

	add := NewAddGoalAmountUseCase(s.Goals)
	out, err := add.Execute(ctx, AddGoalAmountInput{GoalID: goal.ID, Amount: money("1300")})
	require.NoError(t, err)
	assert.True(t, out.Goal.CurrentAmount.Equal(money("1550")), out.Goal.CurrentAmount.String())
	assert.True(t, out.Goal.IsCompleted)

	_, err = add.Execute(ctx, AddGoalAmountInput{GoalID: goal.ID, Amount: money("1")})
	assertGoalCode(t, err, domainerror.ErrCodeGoalAlreadyCompleted)

	progress, err = NewGetGoalProgressUseCase(s.Goals, s.Notifier, fixedClock).Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, progress, "completed goals are not active")
}

func TestAddGoalAmountUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("reaching the target exactly", func(t *testing.T) {
		s := testutil.NewStores(t)
		goal := createGoal(t, s, CreateGoalInput{Title: "Laptop", TargetAmount: money("1000"), CurrentAmount: money("400")})

		out, err := NewAddGoalAmountUseCase(s.Goals).Execute(ctx, AddGoalAmountInput{GoalID: goal.ID, Amount: money("600")})
		require.NoError(t, err)
		assert.True(t, out.Goal.IsCompleted)
		assert.True(t, out.Goal.RemainingAmount().IsZero())
	})

	t.Run("fractional amounts reach the target exactly", func(t *testing.T) {
		tests := []struct {
			target, current, add string
		}{
			{target: "0.8", current: "0.7", add: "0.1"},
			{target: "300.3", current: "100.1", add: "200.2"},
			{target: "1000.3", current: "1000.2", add: "0.1"},
		}

		for _, tt := range tests {
			t.Run(tt.target, func(t *testing.T) {
				s := testutil.NewStores(t)
				goal := createGoal(t, s, CreateGoalInput{Title: "Jar", TargetAmount: money(tt.target), CurrentAmount: money(tt.current)})
				require.False(t, goal.IsCompleted)

				out, err := NewAddGoalAmountUseCase(s.Goals).Execute(ctx, AddGoalAmountInput{GoalID: goal.ID, Amount: money(tt.add)})
				require.NoError(t, err)
				assert.True(t, out.Goal.IsCompleted)
				assert.True(t, out.Goal.CurrentAmount.Equal(money(tt.target)), out.Goal.CurrentAmount.String())
				assert.True(t, out.Goal.RemainingAmount().IsZero())
			})
		}
	})

	t.Run("below the target stays active", func(t *testing.T) {
		s := testutil.NewStores(t)
		goal := createGoal(t, s, CreateGoalInput{Title: "Laptop", TargetAmount: money("1000")})

		out, err := NewAddGoalAmountUseCase(s.Goals).Execute(ctx, AddGoalAmountInput{GoalID: goal.ID, Amount: money("999.99")})
		require.NoError(t, err)
		assert.False(t, out.Goal.IsCompleted)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		s := testutil.NewStores(t)
		goal := createGoal(t, s, CreateGoalInput{Title: "Laptop", TargetAmount: money("1000")})

		for _, amount := range []string{"0", "-10"} {
			_, err := NewAddGoalAmountUseCase(s.Goals).Execute(ctx, AddGoalAmountInput{GoalID: goal.ID, Amount: money(amount)})
			assertGoalCode(t, err, domainerror.ErrCodeInvalidContribution)
		}
	})

	t.Run("rejects sub-cent amounts", func(t *testing.T) {
		s := testutil.NewStores(t)
		goal := createGoal(t, s, CreateGoalInput{Title: "Laptop", TargetAmount: money("1000")})

		_, err := NewAddGoalAmountUseCase(s.Goals).Execute(ctx, AddGoalAmountInput{GoalID: goal.ID, Amount: money("0.001")})
		assertGoalCode(t, err, domainerror.ErrCodeInvalidContribution)
		assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))

		stored, err := s.Goals.FindByID(ctx, goal.ID)
		require.NoError(t, err)
		assert.True(t, stored.CurrentAmount.IsZero())
	})

	t.Run("missing goal", func(t *testing.T) {
		s := testutil.NewStores(t)
		_, err := NewAddGoalAmountUseCase(s.Goals).Execute(ctx, AddGoalAmountInput{GoalID: uuid.New(), Amount: money("5")})
		assertGoalCode(t, err, domainerror.ErrCodeGoalNotFound)
		assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
	})
}

func TestCompleteGoalUseCase(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewStores(t)
	goal := createGoal(t, s, CreateGoalInput{Title: "Car", TargetAmount: money("8000"), CurrentAmount: money("120")})
	before, err := s.Goals.FindByID(ctx, goal.ID)
	require.NoError(t, err)

	complete := NewCompleteGoalUseCase(s.Goals)
	for i := 0; i < 2; i++ {
		done, err := complete.Execute(ctx, goal.ID)
		require.NoError(t, err)
		assert.True(t, done.IsCompleted)
		assert.True(t, done.CurrentAmount.Equal(money("120")))
		assert.Equal(t, before.Title, done.Title)
		assert.True(t, done.UpdatedAt.Equal(before.UpdatedAt))
	}

	_, err = complete.Execute(ctx, uuid.New())
	assertGoalCode(t, err, domainerror.ErrCodeGoalNotFound)
}

func TestUpdateGoalUseCase(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewStores(t)
	deadline := fixedNow.AddDate(0, 2, 0)
	goal := createGoal(t, s, CreateGoalInput{Title: "Car", TargetAmount: money("8000"), CurrentAmount: money("120"), Deadline: &deadline})
	update := NewUpdateGoalUseCase(s.Goals, fixedClock)

	_, err := update.Execute(ctx, UpdateGoalInput{GoalID: goal.ID, TargetAmount: ptr(money("-1"))})
	assertGoalCode(t, err, domainerror.ErrCodeInvalidTargetAmount)

	_, err = update.Execute(ctx, UpdateGoalInput{GoalID: goal.ID, Deadline: ptr(fixedNow)})
	assertGoalCode(t, err, domainerror.ErrCodeInvalidDeadline)

	_, err = update.Execute(ctx, UpdateGoalInput{GoalID: goal.ID, Title: ptr("")})
	assertGoalCode(t, err, domainerror.ErrCodeInvalidGoalTitle)

	out, err := update.Execute(ctx, UpdateGoalInput{GoalID: goal.ID, Title: ptr("New car"), ClearDeadline: true})
	require.NoError(t, err)
	assert.Nil(t, out.Goal.Deadline)

	stored, err := s.Goals.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "New car", stored.Title)
	assert.Nil(t, stored.Deadline)
	assert.True(t, stored.TargetAmount.Equal(money("8000")))
	assert.True(t, stored.CurrentAmount.Equal(money("120")))

	_, err = update.Execute(ctx, UpdateGoalInput{GoalID: goal.ID, TargetAmount: ptr(money("100.001"))})
	assertGoalCode(t, err, domainerror.ErrCodeInvalidTargetAmount)

	_, err = update.Execute(ctx, UpdateGoalInput{GoalID: uuid.New(), Title: ptr("x")})
	assertGoalCode(t, err, domainerror.ErrCodeGoalNotFound)
}

func TestUpdateGoalTargetCompletion(t *testing.T) {
	ctx := context.Background()

	t.Run("lowering the target to the saved amount completes the goal", func(t *testing.T) {
		s := testutil.NewStores(t)
		goal := createGoal(t, s, CreateGoalInput{Title: "Phone", TargetAmount: money("900"), CurrentAmount: money("300.3")})

		out, err := NewUpdateGoalUseCase(s.Goals, fixedClock).Execute(ctx, UpdateGoalInput{GoalID: goal.ID, TargetAmount: ptr(money("300.3"))})
		require.NoError(t, err)
		assert.True(t, out.Goal.IsCompleted)
		assert.True(t, out.Goal.CurrentAmount.Equal(money("300.3")))

		stored, err := s.Goals.FindByID(ctx, goal.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsCompleted)
	})

	t.Run("lowering the target below the saved amount completes the goal", func(t *testing.T) {
		s := testutil.NewStores(t)
		goal := createGoal(t, s, CreateGoalInput{Title: "Phone", TargetAmount: money("900"), CurrentAmount: money("500")})

		out, err := NewUpdateGoalUseCase(s.Goals, fixedClock).Execute(ctx, UpdateGoalInput{GoalID: goal.ID, TargetAmount: ptr(money("200"))})
		require.NoError(t, err)
		assert.True(t, out.Goal.IsCompleted)
	})

	t.Run("a target above the saved amount keeps the goal active", func(t *testing.T) {
		s := testutil.NewStores(t)
		goal := createGoal(t, s, CreateGoalInput{Title: "Phone", TargetAmount: money("900"), CurrentAmount: money("500")})

		out, err := NewUpdateGoalUseCase(s.Goals, fixedClock).Execute(ctx, UpdateGoalInput{GoalID: goal.ID, TargetAmount: ptr(money("500.01"))})
		require.NoError(t, err)
		assert.False(t, out.Goal.IsCompleted)
	})
}

func TestListGoalsUseCase(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewStores(t)
	late := fixedNow.AddDate(0, 3, 0)
	soon := fixedNow.AddDate(0, 0, 10)

	noDeadline := createGoal(t, s, CreateGoalInput{Title: "Someday", TargetAmount: money("10")})
	lateGoal := createGoal(t, s, CreateGoalInput{Title: "Late", TargetAmount: money("10"), Deadline: &late})
	soonGoal := createGoal(t, s, CreateGoalInput{Title: "Soon", TargetAmount: money("10"), Deadline: &soon})
	done := createGoal(t, s, CreateGoalInput{Title: "Done", TargetAmount: money("10"), CurrentAmount: money("10")})

	list := NewListGoalsUseCase(s.Goals, s.Notifier)

	all, err := list.Execute(ctx, ListGoalsInput{})
	require.NoError(t, err)
	require.Len(t, all.Goals, 4)
	assert.Equal(t, soonGoal.ID, all.Goals[0].ID)
	assert.Equal(t, lateGoal.ID, all.Goals[1].ID)
	assert.ElementsMatch(t, []uuid.UUID{noDeadline.ID, done.ID}, []uuid.UUID{all.Goals[2].ID, all.Goals[3].ID})

	active, err := list.Execute(ctx, ListGoalsInput{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active.Goals, 3)
	assert.Equal(t, noDeadline.ID, active.Goals[2].ID)
}

func TestDeleteGoalUseCase(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewStores(t)
	goal := createGoal(t, s, CreateGoalInput{Title: "Car", TargetAmount: money("8000")})

	del := NewDeleteGoalUseCase(s.Goals)
	require.NoError(t, del.Execute(ctx, goal.ID))

	err := del.Execute(ctx, goal.ID)
	assertGoalCode(t, err, domainerror.ErrCodeGoalNotFound)

	_, err = NewGetGoalUseCase(s.Goals).Execute(ctx, goal.ID)
	assertGoalCode(t, err, domainerror.ErrCodeGoalNotFound)
}

func TestWatchProgressReemitsOnClockAndChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := testutil.NewStores(t)

	updates, err := NewGetGoalProgressUseCase(s.Goals, s.Notifier, fixedClock).Watch(ctx)
	require.NoError(t, err)
	assert.Empty(t, <-updates)

	createGoal(t, s, CreateGoalInput{Title: "Bike", TargetAmount: money("300")})
	select {
	case next := <-updates:
		require.Len(t, next, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot after goal insert")
	}

	require.NoError(t, s.Notifier.Publish(ctx, adapter.TopicClock))
	select {
	case next := <-updates:
		assert.Len(t, next, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot after day rollover")
	}
}
