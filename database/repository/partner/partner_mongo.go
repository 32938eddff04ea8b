package partnerRepo

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

// MongoPartnerRepo implements PartnerRepository using MongoDB.
type MongoPartnerRepo struct {
	coll *mongo.Collection
}

// NewMongoPartnerRepo creates a new PartnerRepository backed by MongoDB.
func NewMongoPartnerRepo() PartnerRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("partners")
	repo := &MongoPartnerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoPartnerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "contactEmail", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPartnerRepo) Create(ctx context.Context, partner *models.Partner) error {
	now := time.Now()
	partner.CreatedAt = now
	partner.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, partner); err != nil {
		return fmt.Errorf("failed to create partner: %w", err)
	}
	return nil
}

func (r *MongoPartnerRepo) Update(ctx context.Context, partner *models.Partner) error {
	partner.UpdatedAt = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": partner.ID}, bson.M{"$set": partner})
	if err != nil {
		return fmt.Errorf("failed to update partner %s: %w", partner.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("partner with id %s not found", partner.ID)
	}
	return nil
}

func (r *MongoPartnerRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete partner %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("partner with id %s not found", id)
	}
	return nil
}

func (r *MongoPartnerRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	var partner models.Partner
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&partner); err != nil {
		return nil, fmt.Errorf("failed to fetch partner with id %s: %w", id, err)
	}
	return &partner, nil
}

func (r *MongoPartnerRepo) GetByEmail(ctx context.Context, email string) (*models.Partner, error) {
	var partner models.Partner
	err := r.coll.FindOne(ctx, bson.M{"contactEmail": email}).Decode(&partner)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch partner with email %s: %w", email, err)
	}
	return &partner, nil
}

func (r *MongoPartnerRepo) GetAll(ctx context.Context) ([]models.Partner, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve partners: %w", err)
	}
	defer cursor.Close(ctx)

	var partners []models.Partner
	if err := cursor.All(ctx, &partners); err != nil {
		return nil, fmt.Errorf("failed to decode partners: %w", err)
	}
	return partners, nil
}
