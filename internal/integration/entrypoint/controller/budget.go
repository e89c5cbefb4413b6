package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-guard/backend/internal/application/usecase/budget"
	"github.com/budget-guard/backend/internal/domain/entity"
	domainerror "github.com/budget-guard/backend/internal/domain/error"
	"github.com/budget-guard/backend/internal/domain/valueobject"
	"github.com/budget-guard/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	evaluateUseCase *budget.EvaluateBudgetUseCase
	periods         *budget.PeriodCalculator
	limits          *budget.LimitStore
	completions     *budget.CompletionRecorder
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	evaluateUseCase *budget.EvaluateBudgetUseCase,
	periods *budget.PeriodCalculator,
	limits *budget.LimitStore,
	completions *budget.CompletionRecorder,
) *BudgetController {
	return &BudgetController{
		evaluateUseCase: evaluateUseCase,
		periods:         periods,
		limits:          limits,
		completions:     completions,
	}
}

// Summary handles GET /accounts/:accountId/budget/summary requests. It runs
// one full evaluation pass for the requested scope.
func (c *BudgetController) Summary(ctx *gin.Context) {
	scope, ok := c.scopeFromRequest(ctx, ctx.Query("category_id"), ctx.Query("category_name"))
	if !ok {
		return
	}
	kind, ok := periodKindFromRequest(ctx, ctx.Query("kind"))
	if !ok {
		return
	}

	output, err := c.evaluateUseCase.Execute(ctx.Request.Context(), budget.EvaluateBudgetInput{
		Scope: scope,
		Kind:  kind,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to evaluate budget",
			Code:  errorCode(err),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(output))
}

// GetLimit handles GET /accounts/:accountId/budget/limit requests.
func (c *BudgetController) GetLimit(ctx *gin.Context) {
	scope, ok := c.scopeFromRequest(ctx, ctx.Query("category_id"), ctx.Query("category_name"))
	if !ok {
		return
	}

	limit, err := c.limits.GetLimit(ctx.Request.Context(), scope)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read limit",
			Code:  errorCode(err),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.LimitResponse{
		Amount: limit.Amount.StringFixed(2),
		IsSet:  limit.IsSet(),
	})
}

// SetLimit handles PUT /accounts/:accountId/budget/limit requests.
func (c *BudgetController) SetLimit(ctx *gin.Context) {
	var req dto.SetLimitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidLimitAmount),
		})
		return
	}

	scope, ok := c.scopeFromRequest(ctx, stringOrEmpty(req.CategoryID), req.CategoryName)
	if !ok {
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid limit amount",
			Code:  string(domainerror.ErrCodeInvalidLimitAmount),
		})
		return
	}

	if err := c.limits.SetLimit(ctx.Request.Context(), scope, amount); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to persist limit",
			Code:  errorCode(err),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.LimitResponse{
		Amount: amount.StringFixed(2),
		IsSet:  amount.IsPositive(),
	})
}

// ClearLimit handles DELETE /accounts/:accountId/budget/limit requests. The
// scope's persisted windows are removed together with the limit.
func (c *BudgetController) ClearLimit(ctx *gin.Context) {
	scope, ok := c.scopeFromRequest(ctx, ctx.Query("category_id"), ctx.Query("category_name"))
	if !ok {
		return
	}

	if err := c.limits.ClearLimit(ctx.Request.Context(), scope); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to clear limit",
			Code:  errorCode(err),
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetWindow handles PUT /accounts/:accountId/budget/window requests.
func (c *BudgetController) SetWindow(ctx *gin.Context) {
	var req dto.SetWindowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidWindowBounds),
		})
		return
	}

	scope, ok := c.scopeFromRequest(ctx, stringOrEmpty(req.CategoryID), req.CategoryName)
	if !ok {
		return
	}
	kind, ok := periodKindFromRequest(ctx, req.Kind)
	if !ok {
		return
	}

	start, err := dto.ParseDate(req.Start)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid window start",
			Code:  string(domainerror.ErrCodeInvalidWindowBounds),
		})
		return
	}
	var end time.Time
	if req.End != "" {
		end, err = dto.ParseDate(req.End)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid window end",
				Code:  string(domainerror.ErrCodeInvalidWindowBounds),
			})
			return
		}
	}

	window, err := c.periods.SetWindow(ctx.Request.Context(), scope, kind, start, end)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to persist window",
			Code:  errorCode(err),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.WindowResponse{
		Start:     dto.FormatDate(window.Start),
		End:       dto.FormatDate(window.End),
		PeriodKey: window.PeriodKey(),
	})
}

// ShiftWindow handles POST /accounts/:accountId/budget/window/shift requests.
func (c *BudgetController) ShiftWindow(ctx *gin.Context) {
	var req dto.ShiftWindowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidWindowBounds),
		})
		return
	}

	scope, ok := c.scopeFromRequest(ctx, stringOrEmpty(req.CategoryID), req.CategoryName)
	if !ok {
		return
	}
	kind, ok := periodKindFromRequest(ctx, req.Kind)
	if !ok {
		return
	}

	var (
		window entity.PeriodWindow
		err    error
	)
	if req.Direction == "start_forward" {
		window, err = c.periods.ShiftStartForward(ctx.Request.Context(), scope, kind)
	} else {
		window, err = c.periods.ShiftEndBackward(ctx.Request.Context(), scope, kind)
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to shift window",
			Code:  errorCode(err),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.WindowResponse{
		Start:     dto.FormatDate(window.Start),
		End:       dto.FormatDate(window.End),
		PeriodKey: window.PeriodKey(),
	})
}

// Medals handles GET /accounts/:accountId/medals requests.
func (c *BudgetController) Medals(ctx *gin.Context) {
	accountID, ok := accountIDFromRequest(ctx)
	if !ok {
		return
	}

	counters, err := c.completions.Counters(ctx.Request.Context(), accountID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to read completion counters",
			Code:  errorCode(err),
		})
		return
	}

	breakdown := budget.MedalBreakdown(counters.Total())
	ctx.JSON(http.StatusOK, dto.MedalsResponse{
		Bronze:      breakdown.Bronze,
		Silver:      breakdown.Silver,
		Gold:        breakdown.Gold,
		Perfect:     breakdown.Perfect,
		Completions: counters.Total(),
	})
}

// scopeFromRequest builds the budget scope from the account path parameter
// and optional category identity.
func (c *BudgetController) scopeFromRequest(ctx *gin.Context, categoryID, categoryName string) (valueobject.BudgetScope, bool) {
	accountID, ok := accountIDFromRequest(ctx)
	if !ok {
		return valueobject.BudgetScope{}, false
	}

	if categoryID == "" && categoryName == "" {
		return valueobject.OverallScope(accountID), true
	}

	catID := uuid.Nil
	if categoryID != "" {
		parsed, err := uuid.Parse(categoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category id",
				Code:  string(domainerror.ErrCodeInvalidCategoryID),
			})
			return valueobject.BudgetScope{}, false
		}
		catID = parsed
	}
	return valueobject.CategoryScope(accountID, catID, categoryName), true
}

func accountIDFromRequest(ctx *gin.Context) (uuid.UUID, bool) {
	accountID, err := uuid.Parse(ctx.Param("accountId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account id",
			Code:  string(domainerror.ErrCodeInvalidAccountID),
		})
		return uuid.Nil, false
	}
	return accountID, true
}

func periodKindFromRequest(ctx *gin.Context, raw string) (valueobject.PeriodKind, bool) {
	if raw == "" {
		return valueobject.PeriodKindMonthly, true
	}
	kind := valueobject.PeriodKind(raw)
	if !kind.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid period kind",
			Code:  string(domainerror.ErrCodeInvalidPeriodKind),
		})
		return "", false
	}
	return kind, true
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// errorCode extracts the domain error code from a use case failure.
func errorCode(err error) string {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		return string(budgetErr.Code)
	}
	return string(domainerror.ErrCodeBudgetStoreFailure)
}
