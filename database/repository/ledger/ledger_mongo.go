package ledgerRepo

import (
	"context"
	"fmt"
	"time"

	"zora/database"
	"zora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLedgerRepo implements LedgerRepository using MongoDB.
type MongoLedgerRepo struct {
	coll *mongo.Collection
}

// NewMongoLedgerRepo creates a new LedgerRepository backed by MongoDB.
func NewMongoLedgerRepo() LedgerRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("legal_ledger")
	repo := &MongoLedgerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoLedgerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "recordId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "eventType", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Append inserts a new ledger record and returns its record ID.
func (r *MongoLedgerRepo) Append(ctx context.Context, record models.LedgerRecord) (string, error) {
	if record.RecordID == "" {
		record.RecordID = "REC-" + uuid.New().String()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return "", fmt.Errorf("failed to append ledger record: %w", err)
	}
	return record.RecordID, nil
}

// GetAll returns every ledger record in insertion order.
func (r *MongoLedgerRepo) GetAll(ctx context.Context) ([]models.LedgerRecord, error) {
	return r.find(ctx, bson.M{})
}

// GetByEventType returns records of one event type in insertion order.
func (r *MongoLedgerRepo) GetByEventType(ctx context.Context, eventType string) ([]models.LedgerRecord, error) {
	return r.find(ctx, bson.M{"eventType": eventType})
}

func (r *MongoLedgerRepo) find(ctx context.Context, filter bson.M) ([]models.LedgerRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve ledger records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.LedgerRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode ledger records: %w", err)
	}
	return records, nil
}
