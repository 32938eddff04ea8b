package notification

import (
	"context"

	"zora/models"
)

// NotificationService fans lifecycle events out as in-app notifications and
// simulated emails. Email delivery goes through the asynq queue so a slow
// "send" never blocks a lifecycle mutation.
type NotificationService interface {
	// Notify stores an in-app notification for a role.
	Notify(ctx context.Context, role, message, category, requestID string) error
	// QueueEmail enqueues a simulated email for background delivery.
	QueueEmail(ctx context.Context, email models.SimulatedEmail) error
	// NotificationsFor lists a role's notifications, newest first.
	NotificationsFor(ctx context.Context, role string) ([]models.AppNotification, error)
	// Emails lists the simulated email outbox, newest first.
	Emails(ctx context.Context) ([]models.SimulatedEmail, error)
	// MarkRead marks all of a role's notifications as read.
	MarkRead(ctx context.Context, role string) error
}
