package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-buddy/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title         string           `json:"title" binding:"required"`
	TargetAmount  *decimal.Decimal `json:"target_amount" binding:"required"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	Deadline      *string          `json:"deadline,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title         *string          `json:"title,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	Deadline      *string          `json:"deadline,omitempty"`
	ClearDeadline bool             `json:"clear_deadline,omitempty"`
}

// AddGoalAmountRequest represents the request body for a goal contribution.
type AddGoalAmountRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	TargetAmount  Money     `json:"target_amount"`
	CurrentAmount Money     `json:"current_amount"`
	Deadline      *string   `json:"deadline,omitempty"`
	IsCompleted   bool      `json:"is_completed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GoalProgressResponse represents an active goal with its progress figures.
type GoalProgressResponse struct {
	GoalResponse
	ProgressPercentage float64 `json:"progress_percentage"`
	RemainingAmount    Money   `json:"remaining_amount"`
	DaysUntilDeadline  *int    `json:"days_until_deadline,omitempty"`
}

// GoalProgressListResponse represents the response for goal progress.
type GoalProgressListResponse struct {
	Goals []GoalProgressResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		Title:         g.Title,
		TargetAmount:  Money(g.TargetAmount),
		CurrentAmount: Money(g.CurrentAmount),
		Deadline:      FormatOptionalDate(g.Deadline),
		IsCompleted:   g.IsCompleted,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of goals to GoalListResponse.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	items := make([]GoalResponse, len(goals))
	for i, g := range goals {
		items[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals: items,
	}
}

// ToGoalProgressResponse converts a goal with progress to GoalProgressResponse.
func ToGoalProgressResponse(g *entity.GoalWithProgress) GoalProgressResponse {
	return GoalProgressResponse{
		GoalResponse:       ToGoalResponse(g.Goal),
		ProgressPercentage: g.ProgressPercentage,
		RemainingAmount:    Money(g.RemainingAmount),
		DaysUntilDeadline:  g.DaysUntilDeadline,
	}
}

// ToGoalProgressListResponse converts goals with progress to GoalProgressListResponse.
func ToGoalProgressListResponse(goals []*entity.GoalWithProgress) GoalProgressListResponse {
	items := make([]GoalProgressResponse, len(goals))
	for i, g := range goals {
		items[i] = ToGoalProgressResponse(g)
	}
	return GoalProgressListResponse{
		Goals: items,
	}
}
