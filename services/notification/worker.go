package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"zora/config"
	notificationRepo "zora/database/repository/notification"
	"zora/models"

	"github.com/hibiken/asynq"
)

// NewQueueClient returns the asynq client used to enqueue email tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// InitEmailWorker runs the async email worker in background.
func InitEmailWorker(repo notificationRepo.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeEmailSend, handleEmailTask(repo))

	go func() {
		log.Println("[EmailWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[EmailWorker] worker stopped: %v", err)
		}
	}()
}

// handleEmailTask "delivers" the email by recording it. Delivery is
// simulated; there is no real SMTP hop.
func handleEmailTask(repo notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var email models.SimulatedEmail
		if err := json.Unmarshal(t.Payload(), &email); err != nil {
			return fmt.Errorf("failed to decode email task: %w", err)
		}
		email.SentAt = time.Now()
		if err := repo.RecordEmail(ctx, &email); err != nil {
			return fmt.Errorf("failed to record email: %w", err)
		}
		return nil
	}
}
