package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDay(t *testing.T) {
	rome := time.FixedZone("CET", 3600)
	at := time.Date(2026, 5, 3, 0, 30, 0, 0, rome)

	assert.Equal(t, time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC), Day(at))
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2026, 3, 28, 23, 59, 0, 0, time.UTC)
	to := time.Date(2026, 4, 2, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 5, DaysBetween(from, to))
	assert.Equal(t, -5, DaysBetween(to, from))
	assert.Equal(t, 0, DaysBetween(from, from))
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2024, 2, 17, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)
}

func TestParseTransactionType(t *testing.T) {
	got, ok := ParseTransactionType("INCOME")
	assert.True(t, ok)
	assert.Equal(t, TransactionTypeIncome, got)

	_, ok = ParseTransactionType("transfer")
	assert.False(t, ok)
}
