package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/budget-buddy/backend/internal/domain/error"
	"github.com/budget-buddy/backend/internal/integration/entrypoint/dto"
)

// respondError writes err as an ErrorResponse with the status of its kind.
// Store failures and integrity violations are logged; client errors are not.
func respondError(ctx *gin.Context, err error) {
	kind := domainerror.KindOf(err)

	switch kind {
	case domainerror.KindValidation, domainerror.KindNotFound, domainerror.KindReferentialIntegrity:
		code, message := describe(err)
		ctx.JSON(statusFor(kind), dto.ErrorResponse{
			Error: message,
			Code:  code,
		})
		return
	case domainerror.KindIntegrityViolation:
		slog.Error("Stored data is inconsistent",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Stored data is inconsistent",
			Code:  string(domainerror.ErrCodeIntegrityViolation),
		})
		return
	}

	slog.Error("Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "An internal error occurred",
		Code:    string(domainerror.ErrCodeInternal),
		Details: "the operation may be retried",
	})
}

func statusFor(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindValidation:
		return http.StatusBadRequest
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindReferentialIntegrity:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// describe extracts the code and message of a coded domain error.
func describe(err error) (code, message string) {
	var (
		categoryErr    *domainerror.CategoryError
		transactionErr *domainerror.TransactionError
		goalErr        *domainerror.GoalError
		budgetErr      *domainerror.BudgetError
	)
	switch {
	case errors.As(err, &categoryErr):
		return string(categoryErr.Code), categoryErr.Message
	case errors.As(err, &transactionErr):
		return string(transactionErr.Code), transactionErr.Message
	case errors.As(err, &goalErr):
		return string(goalErr.Code), goalErr.Message
	case errors.As(err, &budgetErr):
		return string(budgetErr.Code), budgetErr.Message
	}
	return "", err.Error()
}

// badRequest writes a 400 for a malformed request.
func badRequest(ctx *gin.Context, code domainerror.RequestErrorCode, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// bindJSON decodes the request body, answering 400 on failure.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		badRequest(ctx, domainerror.ErrCodeInvalidRequestBody, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// pathID parses the :id path parameter, answering 400 on failure.
func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		badRequest(ctx, domainerror.ErrCodeInvalidID, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
