// Package error defines domain-specific errors for the Budget Guard application.
package error

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAccountID    BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidCategoryID   BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidLimitAmount  BudgetErrorCode = "BGT-010003"
	ErrCodeInvalidWindowBounds BudgetErrorCode = "BGT-010004"
	ErrCodeInvalidPeriodKind   BudgetErrorCode = "BGT-010005"

	// Infrastructure errors (02XXXX)
	ErrCodeBudgetStoreFailure BudgetErrorCode = "BGT-020001"
	ErrCodeLedgerQueryFailure BudgetErrorCode = "BGT-020002"
)

// BudgetError represents a budget error with code and message. Use cases
// wrap key-value store and ledger failures into it; the HTTP layer matches
// it with errors.As to pick the response code.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
