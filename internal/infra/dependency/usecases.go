package dependency

import (
	"gorm.io/gorm"

	"github.com/budget-buddy/backend/config"
	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/application/usecase/budget"
	"github.com/budget-buddy/backend/internal/application/usecase/category"
	"github.com/budget-buddy/backend/internal/application/usecase/goal"
	"github.com/budget-buddy/backend/internal/application/usecase/transaction"
	"github.com/budget-buddy/backend/internal/integration/persistence"
)

// UseCases holds every use case of the application, shared by the API and the CLI.
type UseCases struct {
	// Category
	ListCategories *category.ListCategoriesUseCase
	GetCategory    *category.GetCategoryUseCase
	CreateCategory *category.CreateCategoryUseCase
	UpdateCategory *category.UpdateCategoryUseCase
	DeleteCategory *category.DeleteCategoryUseCase
	SeedCategories *category.SeedDefaultCategoriesUseCase

	// Transaction
	ListTransactions  *transaction.ListTransactionsUseCase
	GetTransaction    *transaction.GetTransactionUseCase
	CreateTransaction *transaction.CreateTransactionUseCase
	UpdateTransaction *transaction.UpdateTransactionUseCase
	DeleteTransaction *transaction.DeleteTransactionUseCase
	TransactionTotals *transaction.GetTotalsUseCase

	// Goal
	ListGoals    *goal.ListGoalsUseCase
	GoalProgress *goal.GetGoalProgressUseCase
	GetGoal      *goal.GetGoalUseCase
	CreateGoal   *goal.CreateGoalUseCase
	UpdateGoal   *goal.UpdateGoalUseCase
	AddGoal      *goal.AddGoalAmountUseCase
	CompleteGoal *goal.CompleteGoalUseCase
	DeleteGoal   *goal.DeleteGoalUseCase

	// Budget
	Overview     *budget.GetOverviewUseCase
	MonthlyStats *budget.GetMonthlyStatsUseCase
	Dashboard    *budget.GetDashboardUseCase
}

// NewUseCases wires repositories and use cases over db. Every repository
// publishes its changes through notifier.
func NewUseCases(cfg *config.Config, db *gorm.DB, notifier adapter.ChangeNotifier) *UseCases {
	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db, notifier)
	transactionRepo := persistence.NewTransactionRepository(db, notifier)
	goalRepo := persistence.NewGoalRepository(db, notifier)

	// Create category use cases
	listCategories := category.NewListCategoriesUseCase(categoryRepo, notifier)

	// Create transaction use cases
	listTransactions := transaction.NewListTransactionsUseCase(transactionRepo, notifier, cfg.Budget.RecentTransactionsLimit)
	totals := transaction.NewGetTotalsUseCase(transactionRepo)

	// Create goal use cases
	goalProgress := goal.NewGetGoalProgressUseCase(goalRepo, notifier, nil)

	return &UseCases{
		ListCategories: listCategories,
		GetCategory:    category.NewGetCategoryUseCase(categoryRepo),
		CreateCategory: category.NewCreateCategoryUseCase(categoryRepo),
		UpdateCategory: category.NewUpdateCategoryUseCase(categoryRepo),
		DeleteCategory: category.NewDeleteCategoryUseCase(
			categoryRepo,
			category.ParseDeletePolicy(cfg.Budget.CategoryDeletePolicy),
		),
		SeedCategories: category.NewSeedDefaultCategoriesUseCase(categoryRepo),

		ListTransactions:  listTransactions,
		GetTransaction:    transaction.NewGetTransactionUseCase(transactionRepo),
		CreateTransaction: transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo),
		UpdateTransaction: transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo),
		DeleteTransaction: transaction.NewDeleteTransactionUseCase(transactionRepo),
		TransactionTotals: totals,

		ListGoals:    goal.NewListGoalsUseCase(goalRepo, notifier),
		GoalProgress: goalProgress,
		GetGoal:      goal.NewGetGoalUseCase(goalRepo),
		CreateGoal:   goal.NewCreateGoalUseCase(goalRepo, nil),
		UpdateGoal:   goal.NewUpdateGoalUseCase(goalRepo, nil),
		AddGoal:      goal.NewAddGoalAmountUseCase(goalRepo),
		CompleteGoal: goal.NewCompleteGoalUseCase(goalRepo),
		DeleteGoal:   goal.NewDeleteGoalUseCase(goalRepo),

		Overview:     budget.NewGetOverviewUseCase(totals, notifier),
		MonthlyStats: budget.NewGetMonthlyStatsUseCase(totals, nil),
		Dashboard:    budget.NewGetDashboardUseCase(listTransactions, goalProgress, listCategories, cfg.Budget.DashboardRecentLimit),
	}
}
