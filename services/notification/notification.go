package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	notificationRepo "zora/database/repository/notification"
	"zora/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeEmailSend is the asynq task type for simulated email delivery.
const TypeEmailSend = "email:send"

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo   notificationRepo.NotificationRepository
	Queue  *asynq.Client
	Logger *zap.Logger
}

// Notify stores an in-app notification for a role.
func (s *DefaultNotificationService) Notify(ctx context.Context, role, message, category, requestID string) error {
	n := &models.AppNotification{
		ID:         "N-" + uuid.New().String(),
		Message:    message,
		Timestamp:  time.Now(),
		IsRead:     false,
		TargetRole: role,
		RequestID:  requestID,
		Category:   category,
	}
	if err := s.Repo.CreateNotification(ctx, n); err != nil {
		return err
	}
	s.Logger.Debug("Notification stored", zap.String("role", role), zap.String("category", category))
	return nil
}

// QueueEmail enqueues a simulated email for background delivery. With no
// queue configured the email is recorded synchronously instead.
func (s *DefaultNotificationService) QueueEmail(ctx context.Context, email models.SimulatedEmail) error {
	if email.ID == "" {
		email.ID = "EM-" + uuid.New().String()
	}

	if s.Queue == nil {
		email.SentAt = time.Now()
		return s.Repo.RecordEmail(ctx, &email)
	}

	payload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to encode email task: %w", err)
	}
	task := asynq.NewTask(TypeEmailSend, payload)
	if _, err := s.Queue.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}
	return nil
}

// NotificationsFor lists a role's notifications, newest first.
func (s *DefaultNotificationService) NotificationsFor(ctx context.Context, role string) ([]models.AppNotification, error) {
	return s.Repo.GetNotificationsByRole(ctx, role)
}

// Emails lists the simulated email outbox, newest first.
func (s *DefaultNotificationService) Emails(ctx context.Context) ([]models.SimulatedEmail, error) {
	return s.Repo.GetEmails(ctx)
}

// MarkRead marks all of a role's notifications as read.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, role string) error {
	return s.Repo.MarkRoleNotificationsRead(ctx, role)
}
