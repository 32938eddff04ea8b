package settingsRepo

import (
	"context"
	"fmt"

	"zora/config"
	"zora/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const commissionKey = "platform_commission_rate"

type settingDoc struct {
	Key   string  `bson:"key"`
	Value float64 `bson:"value"`
}

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new SettingsRepository backed by MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("settings")
	return &MongoSettingsRepo{coll: coll}
}

// GetCommissionRate returns the stored rate, falling back to the configured
// default when none has been set yet.
func (r *MongoSettingsRepo) GetCommissionRate(ctx context.Context) (float64, error) {
	var doc settingDoc
	err := r.coll.FindOne(ctx, bson.M{"key": commissionKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return config.AppConfig.DefaultCommissionRate, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to fetch commission rate: %w", err)
	}
	return doc.Value, nil
}

// SetCommissionRate stores a new platform commission rate.
func (r *MongoSettingsRepo) SetCommissionRate(ctx context.Context, rate float64) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"key": commissionKey},
		bson.M{"$set": bson.M{"key": commissionKey, "value": rate}},
		opts,
	)
	if err != nil {
		return fmt.Errorf("failed to store commission rate: %w", err)
	}
	return nil
}
