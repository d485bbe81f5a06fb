// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/budget-buddy/backend/config"
	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/infra/db"
	"github.com/budget-buddy/backend/internal/infra/server/router"
	"github.com/budget-buddy/backend/internal/integration/entrypoint/controller"
	"github.com/budget-buddy/backend/internal/integration/entrypoint/middleware"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	DB       *db.Database
	UseCases *UseCases
	Router   *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, database *db.Database, notifier adapter.ChangeNotifier) *Injector {
	uc := NewUseCases(cfg, database.DB(), notifier)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck, cfg.Notifier.Backend)

	categoryController := controller.NewCategoryController(
		uc.ListCategories,
		uc.GetCategory,
		uc.CreateCategory,
		uc.UpdateCategory,
		uc.DeleteCategory,
	)

	transactionController := controller.NewTransactionController(
		uc.ListTransactions,
		uc.GetTransaction,
		uc.CreateTransaction,
		uc.UpdateTransaction,
		uc.DeleteTransaction,
		uc.TransactionTotals,
	)

	goalController := controller.NewGoalController(
		uc.ListGoals,
		uc.GoalProgress,
		uc.GetGoal,
		uc.CreateGoal,
		uc.UpdateGoal,
		uc.AddGoal,
		uc.CompleteGoal,
		uc.DeleteGoal,
	)

	budgetController := controller.NewBudgetController(
		uc.Overview,
		uc.MonthlyStats,
		uc.Dashboard,
	)

	// Create middleware
	writeLimiter := middleware.NewWriteLimiter(cfg.RateLimit.WriteRequestsPerMinute)

	// Create router
	r := router.NewRouter(healthController, categoryController, transactionController, goalController, budgetController, writeLimiter)

	return &Injector{
		Config:   cfg,
		DB:       database,
		UseCases: uc,
		Router:   r,
	}
}
