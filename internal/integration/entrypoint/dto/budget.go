// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-guard/backend/internal/application/usecase/budget"
)

// ErrorResponse represents an API error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// SetLimitRequest represents the request body for setting a budget limit.
type SetLimitRequest struct {
	Amount       string  `json:"amount" binding:"required"`
	CategoryID   *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	CategoryName string  `json:"category_name,omitempty"`
}

// SetWindowRequest represents the request body for setting a budget window.
type SetWindowRequest struct {
	Start        string  `json:"start" binding:"required"`
	End          string  `json:"end,omitempty"`
	Kind         string  `json:"kind,omitempty" binding:"omitempty,oneof=monthly weekly yearly"`
	CategoryID   *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	CategoryName string  `json:"category_name,omitempty"`
}

// ShiftWindowRequest represents the request body for shifting a window bound.
type ShiftWindowRequest struct {
	Direction    string  `json:"direction" binding:"required,oneof=start_forward end_backward"`
	Kind         string  `json:"kind,omitempty" binding:"omitempty,oneof=monthly weekly yearly"`
	CategoryID   *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	CategoryName string  `json:"category_name,omitempty"`
}

// WindowResponse represents a period window in API responses.
type WindowResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	PeriodKey string `json:"period_key"`
}

// LimitResponse represents a configured limit in API responses.
type LimitResponse struct {
	Amount string `json:"amount"`
	IsSet  bool   `json:"is_set"`
}

// MedalsResponse represents the medal tier breakdown in API responses.
type MedalsResponse struct {
	Bronze      int `json:"bronze"`
	Silver      int `json:"silver"`
	Gold        int `json:"gold"`
	Perfect     int `json:"perfect"`
	Completions int `json:"completions"`
}

// BudgetSummaryResponse represents one full evaluation pass in API responses.
type BudgetSummaryResponse struct {
	Window             WindowResponse `json:"window"`
	Spend              string         `json:"spend"`
	Limit              LimitResponse  `json:"limit"`
	FiredThreshold     *int           `json:"fired_threshold,omitempty"`
	CompletionRecorded bool           `json:"completion_recorded"`
	Medals             MedalsResponse `json:"medals"`
}

// dateLayout is the wire format for window bounds.
const dateLayout = "2006-01-02"

// FormatDate renders a window bound for API responses.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a window bound from an API request.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, raw)
}

// ToBudgetSummaryResponse converts an evaluation output to its DTO.
func ToBudgetSummaryResponse(output *budget.EvaluateBudgetOutput) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		Window: WindowResponse{
			Start:     FormatDate(output.Window.Start),
			End:       FormatDate(output.Window.End),
			PeriodKey: output.Window.PeriodKey(),
		},
		Spend: output.Spend.StringFixed(2),
		Limit: LimitResponse{
			Amount: output.Limit.Amount.StringFixed(2),
			IsSet:  output.Limit.IsSet(),
		},
		FiredThreshold:     output.FiredThreshold,
		CompletionRecorded: output.CompletionRecorded,
		Medals: MedalsResponse{
			Bronze:      output.Medals.Bronze,
			Silver:      output.Medals.Silver,
			Gold:        output.Medals.Gold,
			Perfect:     output.Medals.Perfect,
			Completions: output.CompletionCounters.Total(),
		},
	}
}
