package notificationRepo

import (
	"context"
	"fmt"

	"zora/database"
	"zora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	notifications *mongo.Collection
	emails        *mongo.Collection
}

// NewMongoNotificationRepo creates a new NotificationRepository backed by MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	db := database.MongoClient.Database(database.DBName)
	return &MongoNotificationRepo{
		notifications: db.Collection("notifications"),
		emails:        db.Collection("simulated_emails"),
	}
}

func (r *MongoNotificationRepo) CreateNotification(ctx context.Context, n *models.AppNotification) error {
	if _, err := r.notifications.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *MongoNotificationRepo) GetNotificationsByRole(ctx context.Context, role string) ([]models.AppNotification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.notifications.Find(ctx, bson.M{"targetRole": role}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.AppNotification
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return out, nil
}

func (r *MongoNotificationRepo) MarkRoleNotificationsRead(ctx context.Context, role string) error {
	_, err := r.notifications.UpdateMany(ctx,
		bson.M{"targetRole": role, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *MongoNotificationRepo) RecordEmail(ctx context.Context, email *models.SimulatedEmail) error {
	if _, err := r.emails.InsertOne(ctx, email); err != nil {
		return fmt.Errorf("failed to record email: %w", err)
	}
	return nil
}

func (r *MongoNotificationRepo) GetEmails(ctx context.Context) ([]models.SimulatedEmail, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sentAt", Value: -1}})
	cursor, err := r.emails.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve emails: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.SimulatedEmail
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode emails: %w", err)
	}
	return out, nil
}
