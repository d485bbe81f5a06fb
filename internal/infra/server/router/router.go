// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-buddy/backend/internal/integration/entrypoint/controller"
	"github.com/budget-buddy/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	budgetController      *controller.BudgetController
	writeLimiter          *middleware.WriteLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	budgetController *controller.BudgetController,
	writeLimiter *middleware.WriteLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		categoryController:    categoryController,
		transactionController: transactionController,
		goalController:        goalController,
		budgetController:      budgetController,
		writeLimiter:          writeLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.writeLimiter != nil {
		v1.Use(r.writeLimiter.Middleware())
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.GET("/:id", r.categoryController.Get)
		categories.PATCH("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.GET("/recent", r.transactionController.Recent)
		transactions.GET("/totals", r.transactionController.Totals)
		transactions.GET("/:id", r.transactionController.Get)
		transactions.PATCH("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	goals := v1.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.GET("/progress", r.goalController.Progress)
		goals.GET("/:id", r.goalController.Get)
		goals.PATCH("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
		goals.POST("/:id/contributions", r.goalController.AddAmount)
		goals.POST("/:id/complete", r.goalController.Complete)
	}

	budget := v1.Group("/budget")
	{
		budget.GET("/overview", r.budgetController.Overview)
		budget.GET("/stats", r.budgetController.Stats)
		budget.GET("/stats/current-month", r.budgetController.CurrentMonthStats)
		budget.GET("/dashboard", r.budgetController.Dashboard)
		budget.GET("/dashboard/stream", r.budgetController.DashboardStream)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
