package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budget-buddy/backend/internal/application/usecase/goal"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
	"github.com/budget-buddy/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase      *goal.ListGoalsUseCase
	progressUseCase  *goal.GetGoalProgressUseCase
	getUseCase       *goal.GetGoalUseCase
	createUseCase    *goal.CreateGoalUseCase
	updateUseCase    *goal.UpdateGoalUseCase
	addAmountUseCase *goal.AddGoalAmountUseCase
	completeUseCase  *goal.CompleteGoalUseCase
	deleteUseCase    *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	progressUseCase *goal.GetGoalProgressUseCase,
	getUseCase *goal.GetGoalUseCase,
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	addAmountUseCase *goal.AddGoalAmountUseCase,
	completeUseCase *goal.CompleteGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:      listUseCase,
		progressUseCase:  progressUseCase,
		getUseCase:       getUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		addAmountUseCase: addAmountUseCase,
		completeUseCase:  completeUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// List handles GET /goals requests. active=true hides completed goals.
func (c *GoalController) List(ctx *gin.Context) {
	input := goal.ListGoalsInput{
		ActiveOnly: ctx.Query("active") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Progress handles GET /goals/progress requests.
func (c *GoalController) Progress(ctx *gin.Context) {
	goals, err := c.progressUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalProgressListResponse(goals))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	g, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(g))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	deadline, err := dto.ParseOptionalDate(req.Deadline)
	if err != nil {
		badRequest(ctx, domainerror.ErrCodeInvalidRequestBody, "deadline must be formatted as YYYY-MM-DD")
		return
	}

	input := goal.CreateGoalInput{
		Title:         req.Title,
		TargetAmount:  *req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
	}
	if req.CurrentAmount != nil {
		input.CurrentAmount = *req.CurrentAmount
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	deadline, err := dto.ParseOptionalDate(req.Deadline)
	if err != nil {
		badRequest(ctx, domainerror.ErrCodeInvalidRequestBody, "deadline must be formatted as YYYY-MM-DD")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		GoalID:        id,
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		Deadline:      deadline,
		ClearDeadline: req.ClearDeadline,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// AddAmount handles POST /goals/:id/contributions requests.
func (c *GoalController) AddAmount(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.AddGoalAmountRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.addAmountUseCase.Execute(ctx.Request.Context(), goal.AddGoalAmountInput{
		GoalID: id,
		Amount: *req.Amount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Complete handles POST /goals/:id/complete requests.
func (c *GoalController) Complete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	g, err := c.completeUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(g))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
