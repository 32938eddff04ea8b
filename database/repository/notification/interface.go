package notificationRepo

import (
	"context"

	"zora/models"
)

// NotificationRepository stores in-app notifications and the simulated
// outbound email log.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *models.AppNotification) error
	GetNotificationsByRole(ctx context.Context, role string) ([]models.AppNotification, error)
	MarkRoleNotificationsRead(ctx context.Context, role string) error

	RecordEmail(ctx context.Context, email *models.SimulatedEmail) error
	GetEmails(ctx context.Context) ([]models.SimulatedEmail, error)
}
