package notifier

import (
	"context"
	"log/slog"

	"github.com/budget-guard/backend/internal/application/adapter"
	"github.com/budget-guard/backend/internal/domain/entity"
)

// LogDispatcher implements the adapter.NotificationDispatcher interface by
// logging the alert. Used when no Resend API key is configured.
type LogDispatcher struct{}

// NewLogDispatcher creates a new log-backed dispatcher.
func NewLogDispatcher() adapter.NotificationDispatcher {
	return &LogDispatcher{}
}

// Dispatch logs the threshold alert.
func (d *LogDispatcher) Dispatch(_ context.Context, notification entity.ThresholdNotification) error {
	slog.Info("budget threshold crossed",
		"account_id", notification.Scope.AccountID,
		"category", notification.Scope.CategoryName,
		"period_key", notification.PeriodKey,
		"threshold", notification.Threshold,
		"spend", notification.Spend.StringFixed(2),
		"limit", notification.Limit.StringFixed(2),
	)
	return nil
}
