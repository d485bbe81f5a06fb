// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Goal represents a savings target.
type Goal struct {
	ID            uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time // Calendar day at 00:00 UTC, optional
	IsCompleted   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewGoal creates a new Goal entity. The goal starts completed when the
// current amount already covers the target.
func NewGoal(title string, targetAmount, currentAmount decimal.Decimal, deadline *time.Time) *Goal {
	now := time.Now().UTC()

	if deadline != nil {
		d := Day(*deadline)
		deadline = &d
	}

	return &Goal{
		ID:            uuid.New(),
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
		IsCompleted:   currentAmount.GreaterThanOrEqual(targetAmount),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Reached reports whether the current amount covers the target.
func (g *Goal) Reached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// RemainingAmount returns target minus current. It is negative when the goal was overshot.
func (g *Goal) RemainingAmount() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

// ProgressPercentage returns current/target*100 clamped to [0, 100], or 0 when the target is not positive.
func (g *Goal) ProgressPercentage() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	p := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred).InexactFloat64()
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// DaysUntilDeadline returns the whole days from today to the deadline, or nil without a deadline.
func (g *Goal) DaysUntilDeadline(today time.Time) *int {
	if g.Deadline == nil {
		return nil
	}
	days := DaysBetween(today, *g.Deadline)
	return &days
}

// GoalWithProgress is a goal together with its derived progress figures.
type GoalWithProgress struct {
	Goal               *Goal
	ProgressPercentage float64
	RemainingAmount    decimal.Decimal
	DaysUntilDeadline  *int
}

// NewGoalWithProgress derives the progress view of g relative to today.
func NewGoalWithProgress(g *Goal, today time.Time) *GoalWithProgress {
	return &GoalWithProgress{
		Goal:               g,
		ProgressPercentage: g.ProgressPercentage(),
		RemainingAmount:    g.RemainingAmount(),
		DaysUntilDeadline:  g.DaysUntilDeadline(today),
	}
}
