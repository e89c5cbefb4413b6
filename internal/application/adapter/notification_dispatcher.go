package adapter

import (
	"context"

	"github.com/budget-guard/backend/internal/domain/entity"
)

// NotificationDispatcher delivers a threshold notification to the user.
// The budget core decides that and what to send; delivery mechanics and
// permission handling belong to the implementation.
type NotificationDispatcher interface {
	// Dispatch delivers the notification. A delivery failure must not undo the
	// threshold claim; the core treats dispatch as fire-and-forget.
	Dispatch(ctx context.Context, notification entity.ThresholdNotification) error
}
