// Package notifier implements threshold notification delivery.
package notifier

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/budget-guard/backend/internal/application/adapter"
	"github.com/budget-guard/backend/internal/domain/entity"
)

// ResendDispatcher implements the adapter.NotificationDispatcher interface by
// sending threshold alerts as email via Resend.
type ResendDispatcher struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	toEmail   string
}

// NewResendDispatcher creates a new Resend-backed dispatcher.
func NewResendDispatcher(apiKey, fromName, fromEmail, toEmail string) adapter.NotificationDispatcher {
	return &ResendDispatcher{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// Dispatch sends the threshold alert email.
func (d *ResendDispatcher) Dispatch(ctx context.Context, notification entity.ThresholdNotification) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", d.fromName, d.fromEmail),
		To:      []string{d.toEmail},
		Subject: subjectFor(notification),
		Text:    bodyFor(notification),
	}

	if _, err := d.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send threshold alert: %w", err)
	}
	return nil
}

func subjectFor(n entity.ThresholdNotification) string {
	if n.Threshold >= 100 {
		return "Budget limit reached"
	}
	return fmt.Sprintf("Budget at %d%%", n.Threshold)
}

func bodyFor(n entity.ThresholdNotification) string {
	scope := "overall budget"
	if n.Scope.IsCategory() {
		scope = "category budget"
		if n.Scope.CategoryName != "" {
			scope = fmt.Sprintf("budget for %q", n.Scope.CategoryName)
		}
	}
	return fmt.Sprintf(
		"Your %s has reached %d%% of its limit: %s spent of %s (period %s).",
		scope, n.Threshold, n.Spend.StringFixed(2), n.Limit.StringFixed(2), n.PeriodKey,
	)
}
