package clientRepo

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

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo creates a new ClientRepository backed by MongoDB.
func NewMongoClientRepo() ClientRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("clients")
	repo := &MongoClientRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoClientRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoClientRepo) Create(ctx context.Context, client *models.Client) error {
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *MongoClientRepo) Update(ctx context.Context, client *models.Client) error {
	client.UpdatedAt = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": client.ID}, bson.M{"$set": client})
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", client.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("client with id %s not found", client.ID)
	}
	return nil
}

func (r *MongoClientRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("client with id %s not found", id)
	}
	return nil
}

func (r *MongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		return nil, fmt.Errorf("failed to fetch client with id %s: %w", id, err)
	}
	return &client, nil
}

func (r *MongoClientRepo) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	var client models.Client
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&client)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client with email %s: %w", email, err)
	}
	return &client, nil
}

func (r *MongoClientRepo) GetAll(ctx context.Context) ([]models.Client, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve clients: %w", err)
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("failed to decode clients: %w", err)
	}
	return clients, nil
}
