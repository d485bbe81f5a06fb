package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetOverview summarises all transactions.
type BudgetOverview struct {
	Balance          decimal.Decimal
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	TransactionCount int64
}

// MonthlyStats holds income and expense figures for a date range.
type MonthlyStats struct {
	Period      string
	StartDate   time.Time
	EndDate     time.Time
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	Balance     decimal.Decimal
	SavingsRate float64
}

// NewMonthlyStats builds the stats for [start, end] from its income and expense totals.
func NewMonthlyStats(start, end time.Time, income, expenses decimal.Decimal) *MonthlyStats {
	return &MonthlyStats{
		Period:      PeriodLabel(start, end),
		StartDate:   start,
		EndDate:     end,
		Income:      income,
		Expenses:    expenses,
		Balance:     income.Sub(expenses),
		SavingsRate: SavingsRate(income, expenses),
	}
}

// PeriodLabel renders a date range as "YYYY-MM-DD - YYYY-MM-DD".
func PeriodLabel(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format(time.DateOnly), end.Format(time.DateOnly))
}

// SavingsRate returns (income-expenses)/income*100, or 0 without income.
// The result is not clamped and goes negative when expenses exceed income.
func SavingsRate(income, expenses decimal.Decimal) float64 {
	if income.IsZero() {
		return 0
	}
	return income.Sub(expenses).Div(income).Mul(hundred).InexactFloat64()
}

// DashboardData is the combined home-screen view.
type DashboardData struct {
	RecentTransactions []*TransactionWithCategory
	ActiveGoals        []*GoalWithProgress
	CategoriesCount    int
	IncomeCategories   int
	ExpenseCategories  int
}

// NewDashboardData assembles dashboard data from its three sources.
func NewDashboardData(recent []*TransactionWithCategory, goals []*GoalWithProgress, categories []*Category) *DashboardData {
	income, expense := CountByType(categories)
	return &DashboardData{
		RecentTransactions: recent,
		ActiveGoals:        goals,
		CategoriesCount:    len(categories),
		IncomeCategories:   income,
		ExpenseCategories:  expense,
	}
}
