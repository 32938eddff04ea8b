package requestRepo

import (
	"context"
	"fmt"
	"time"

	"zora/database"
	"zora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo creates a new RequestRepository backed by MongoDB.
func NewMongoRequestRepo() RequestRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("requests")
	repo := &MongoRequestRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoRequestRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "clientId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new request document.
func (r *MongoRequestRepo) Create(ctx context.Context, req *models.TravelRequest) error {
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

// Update replaces the stored document for the request. Every mutation goes
// through here, so updatedAt is always refreshed.
func (r *MongoRequestRepo) Update(ctx context.Context, req *models.TravelRequest) error {
	req.UpdatedAt = time.Now()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": req.ID}, req)
	if err != nil {
		return fmt.Errorf("failed to update request %s: %w", req.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("request with id %s not found", req.ID)
	}
	return nil
}

// GetByID retrieves a request by its unique ID.
func (r *MongoRequestRepo) GetByID(ctx context.Context, id string) (*models.TravelRequest, error) {
	var req models.TravelRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to fetch request with id %s: %w", id, err)
	}
	return &req, nil
}

// GetAll retrieves all requests, newest first.
func (r *MongoRequestRepo) GetAll(ctx context.Context) ([]models.TravelRequest, error) {
	return r.find(ctx, bson.M{})
}

// GetByClientID retrieves all requests belonging to a client.
func (r *MongoRequestRepo) GetByClientID(ctx context.Context, clientID string) ([]models.TravelRequest, error) {
	return r.find(ctx, bson.M{"clientId": clientID})
}

// GetByStatus retrieves all requests in the given status.
func (r *MongoRequestRepo) GetByStatus(ctx context.Context, status models.RequestStatus) ([]models.TravelRequest, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *MongoRequestRepo) find(ctx context.Context, filter bson.M) ([]models.TravelRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.TravelRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode requests: %w", err)
	}
	return requests, nil
}
