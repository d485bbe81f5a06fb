package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoal(t *testing.T) {
	t.Run("starts incomplete below target", func(t *testing.T) {
		g := NewGoal("Vacation", decimal.NewFromInt(1500), decimal.NewFromInt(250), nil)
		assert.False(t, g.IsCompleted)
		assert.Nil(t, g.Deadline)
	})

	t.Run("starts completed when current covers target", func(t *testing.T) {
		g := NewGoal("Laptop", decimal.NewFromInt(100), decimal.NewFromInt(100), nil)
		assert.True(t, g.IsCompleted)
	})

	t.Run("truncates deadline to a calendar day", func(t *testing.T) {
		deadline := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
		g := NewGoal("Car", decimal.NewFromInt(10), decimal.Zero, &deadline)
		require.NotNil(t, g.Deadline)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *g.Deadline)
	})
}

func TestGoalProgressPercentage(t *testing.T) {
	tests := []struct {
		name    string
		target  decimal.Decimal
		current decimal.Decimal
		want    float64
	}{
		{"partial", decimal.NewFromInt(1500), decimal.NewFromInt(250), 16.666666},
		{"exact", decimal.NewFromInt(200), decimal.NewFromInt(200), 100},
		{"overshoot clamps to 100", decimal.NewFromInt(1500), decimal.NewFromInt(1550), 100},
		{"zero target", decimal.Zero, decimal.NewFromInt(10), 0},
		{"negative current clamps to 0", decimal.NewFromInt(10), decimal.NewFromInt(-5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Goal{TargetAmount: tt.target, CurrentAmount: tt.current}
			assert.InDelta(t, tt.want, g.ProgressPercentage(), 0.001)
		})
	}
}

func TestGoalRemainingAmount(t *testing.T) {
	g := &Goal{TargetAmount: decimal.NewFromInt(1500), CurrentAmount: decimal.NewFromInt(1550)}
	assert.True(t, g.RemainingAmount().Equal(decimal.NewFromInt(-50)))
}

func TestGoalDaysUntilDeadline(t *testing.T) {
	today := time.Date(2026, 1, 10, 22, 0, 0, 0, time.UTC)

	t.Run("no deadline", func(t *testing.T) {
		g := &Goal{}
		assert.Nil(t, g.DaysUntilDeadline(today))
	})

	t.Run("future deadline", func(t *testing.T) {
		deadline := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
		g := &Goal{Deadline: &deadline}
		require.NotNil(t, g.DaysUntilDeadline(today))
		assert.Equal(t, 10, *g.DaysUntilDeadline(today))
	})

	t.Run("overdue deadline is negative", func(t *testing.T) {
		deadline := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
		g := &Goal{Deadline: &deadline}
		assert.Equal(t, -3, *g.DaysUntilDeadline(today))
	})
}

func TestNewGoalWithProgress(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	deadline := today.AddDate(0, 6, 0)
	g := NewGoal("Emergency fund", decimal.NewFromInt(1500), decimal.NewFromInt(250), &deadline)

	p := NewGoalWithProgress(g, today)

	assert.InDelta(t, 16.67, p.ProgressPercentage, 0.01)
	assert.True(t, p.RemainingAmount.Equal(decimal.NewFromInt(1250)))
	require.NotNil(t, p.DaysUntilDeadline)
	assert.Equal(t, 181, *p.DaysUntilDeadline)
}
