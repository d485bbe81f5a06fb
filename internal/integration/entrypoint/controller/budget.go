package controller

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budget-buddy/backend/internal/application/usecase/budget"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
	"github.com/budget-buddy/backend/internal/integration/entrypoint/dto"
)

// dashboardEvent is the SSE event name of dashboard snapshots.
const dashboardEvent = "dashboard"

// BudgetController handles budget aggregation endpoints.
type BudgetController struct {
	overviewUseCase  *budget.GetOverviewUseCase
	statsUseCase     *budget.GetMonthlyStatsUseCase
	dashboardUseCase *budget.GetDashboardUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	overviewUseCase *budget.GetOverviewUseCase,
	statsUseCase *budget.GetMonthlyStatsUseCase,
	dashboardUseCase *budget.GetDashboardUseCase,
) *BudgetController {
	return &BudgetController{
		overviewUseCase:  overviewUseCase,
		statsUseCase:     statsUseCase,
		dashboardUseCase: dashboardUseCase,
	}
}

// Overview handles GET /budget/overview requests.
func (c *BudgetController) Overview(ctx *gin.Context) {
	overview, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetOverviewResponse(overview))
}

// CurrentMonthStats handles GET /budget/stats/current-month requests.
func (c *BudgetController) CurrentMonthStats(ctx *gin.Context) {
	stats, err := c.statsUseCase.CurrentMonth(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyStatsResponse(stats))
}

// Stats handles GET /budget/stats?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD requests.
func (c *BudgetController) Stats(ctx *gin.Context) {
	startStr, endStr := ctx.Query("start_date"), ctx.Query("end_date")
	if startStr == "" || endStr == "" {
		respondError(ctx, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingPeriod,
			"start_date and end_date are required",
			domainerror.ErrInvalidPeriod,
		))
		return
	}

	start, startErr := dto.ParseDate(startStr)
	end, endErr := dto.ParseDate(endStr)
	if startErr != nil || endErr != nil {
		respondError(ctx, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidDateFormat,
			"dates must be formatted as YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		))
		return
	}

	stats, err := c.statsUseCase.Execute(ctx.Request.Context(), start, end)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyStatsResponse(stats))
}

// Dashboard handles GET /budget/dashboard requests.
func (c *BudgetController) Dashboard(ctx *gin.Context) {
	data, err := c.dashboardUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(data))
}

// DashboardStream handles GET /budget/dashboard/stream requests.
// It sends a "dashboard" Server-Sent Event per snapshot until the client leaves.
func (c *BudgetController) DashboardStream(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()

	updates, err := c.dashboardUseCase.Watch(reqCtx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// The stream outlives the server write timeout.
	if err := http.NewResponseController(ctx.Writer).SetWriteDeadline(time.Time{}); err != nil {
		slog.Warn("Dashboard stream is bound by the server write timeout", "error", err)
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")

	ctx.Stream(func(io.Writer) bool {
		select {
		case <-reqCtx.Done():
			return false
		case data, ok := <-updates:
			if !ok {
				return false
			}
			ctx.SSEvent(dashboardEvent, dto.ToDashboardResponse(data))
			return true
		}
	})
}
