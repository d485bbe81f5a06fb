package dto

import (
	"github.com/budget-buddy/backend/internal/domain/entity"
)

// BudgetOverviewResponse represents the all-time budget summary.
type BudgetOverviewResponse struct {
	Balance          Money `json:"balance"`
	TotalIncome      Money `json:"total_income"`
	TotalExpenses    Money `json:"total_expenses"`
	TransactionCount int64 `json:"transaction_count"`
}

// MonthlyStatsResponse represents income and expense figures for a period.
type MonthlyStatsResponse struct {
	Period      string  `json:"period"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Income      Money   `json:"income"`
	Expenses    Money   `json:"expenses"`
	Balance     Money   `json:"balance"`
	SavingsRate float64 `json:"savings_rate"`
}

// DashboardResponse represents the combined home-screen view.
type DashboardResponse struct {
	RecentTransactions []TransactionResponse  `json:"recent_transactions"`
	ActiveGoals        []GoalProgressResponse `json:"active_goals"`
	CategoriesCount    int                    `json:"categories_count"`
	IncomeCategories   int                    `json:"income_categories"`
	ExpenseCategories  int                    `json:"expense_categories"`
}

// ToBudgetOverviewResponse converts an overview to BudgetOverviewResponse.
func ToBudgetOverviewResponse(o *entity.BudgetOverview) BudgetOverviewResponse {
	return BudgetOverviewResponse{
		Balance:          Money(o.Balance),
		TotalIncome:      Money(o.TotalIncome),
		TotalExpenses:    Money(o.TotalExpenses),
		TransactionCount: o.TransactionCount,
	}
}

// ToMonthlyStatsResponse converts monthly stats to MonthlyStatsResponse.
func ToMonthlyStatsResponse(s *entity.MonthlyStats) MonthlyStatsResponse {
	return MonthlyStatsResponse{
		Period:      s.Period,
		StartDate:   FormatDate(s.StartDate),
		EndDate:     FormatDate(s.EndDate),
		Income:      Money(s.Income),
		Expenses:    Money(s.Expenses),
		Balance:     Money(s.Balance),
		SavingsRate: s.SavingsRate,
	}
}

// ToDashboardResponse converts dashboard data to DashboardResponse.
func ToDashboardResponse(d *entity.DashboardData) DashboardResponse {
	return DashboardResponse{
		RecentTransactions: ToTransactionWithCategoryListResponse(d.RecentTransactions).Transactions,
		ActiveGoals:        ToGoalProgressListResponse(d.ActiveGoals).Goals,
		CategoriesCount:    d.CategoriesCount,
		IncomeCategories:   d.IncomeCategories,
		ExpenseCategories:  d.ExpenseCategories,
	}
}
