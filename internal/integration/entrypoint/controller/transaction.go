package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-buddy/backend/internal/application/usecase/transaction"
	"github.com/budget-buddy/backend/internal/domain/entity"
	domainerror "github.com/budget-buddy/backend/internal/domain/error"
	"github.com/budget-buddy/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	getUseCase    *transaction.GetTransactionUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	totalsUseCase *transaction.GetTotalsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	totalsUseCase *transaction.GetTotalsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		totalsUseCase: totalsUseCase,
	}
}

// List handles GET /transactions requests.
// Optional query: type, category_id and with_category=true.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{}

	if typeStr := ctx.Query("type"); typeStr != "" {
		t, ok := entity.ParseTransactionType(typeStr)
		if !ok {
			badRequest(ctx, domainerror.ErrCodeInvalidQuery, "type must be 'expense' or 'income'")
			return
		}
		input.Type = &t
	}

	if categoryStr := ctx.Query("category_id"); categoryStr != "" {
		categoryID, err := uuid.Parse(categoryStr)
		if err != nil {
			badRequest(ctx, domainerror.ErrCodeInvalidQuery, "Invalid category ID format")
			return
		}
		input.CategoryID = &categoryID
	}

	if ctx.Query("with_category") == "true" {
		transactions, err := c.listUseCase.WithCategory(ctx.Request.Context(), input)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.ToTransactionWithCategoryListResponse(transactions))
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Recent handles GET /transactions/recent requests.
func (c *TransactionController) Recent(ctx *gin.Context) {
	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			badRequest(ctx, domainerror.ErrCodeInvalidQuery, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	transactions, err := c.listUseCase.RecentWithCategory(ctx.Request.Context(), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionWithCategoryListResponse(transactions))
}

// Totals handles GET /transactions/totals requests.
func (c *TransactionController) Totals(ctx *gin.Context) {
	output, err := c.totalsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionTotalsResponse(output))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	txn, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(txn, nil))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		badRequest(ctx, domainerror.ErrCodeInvalidRequestBody, "date must be formatted as YYYY-MM-DD")
		return
	}

	txType, _ := entity.ParseTransactionType(req.Type)
	input := transaction.CreateTransactionInput{
		Amount:     *req.Amount,
		Type:       txType,
		CategoryID: uuid.MustParse(req.CategoryID),
		Date:       date,
		Note:       req.Note,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction, output.Category))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	date, err := dto.ParseOptionalDate(req.Date)
	if err != nil {
		badRequest(ctx, domainerror.ErrCodeInvalidRequestBody, "date must be formatted as YYYY-MM-DD")
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: id,
		Amount:        req.Amount,
		Date:          date,
		Note:          req.Note,
	}
	if req.Type != nil {
		t, _ := entity.ParseTransactionType(*req.Type)
		input.Type = &t
	}
	if req.CategoryID != nil {
		categoryID := uuid.MustParse(*req.CategoryID)
		input.CategoryID = &categoryID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction, output.Category))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
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
