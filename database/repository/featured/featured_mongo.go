package featuredRepo

import (
	"context"
	"fmt"

	"zora/database"
	"zora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoFeaturedOfferRepo implements FeaturedOfferRepository using MongoDB.
type MongoFeaturedOfferRepo struct {
	coll *mongo.Collection
}

// NewMongoFeaturedOfferRepo creates a new FeaturedOfferRepository backed by MongoDB.
func NewMongoFeaturedOfferRepo() FeaturedOfferRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("featured_offers")
	return &MongoFeaturedOfferRepo{coll: coll}
}

func (r *MongoFeaturedOfferRepo) Create(ctx context.Context, offer *models.FeaturedOffer) error {
	if _, err := r.coll.InsertOne(ctx, offer); err != nil {
		return fmt.Errorf("failed to create featured offer: %w", err)
	}
	return nil
}

func (r *MongoFeaturedOfferRepo) Update(ctx context.Context, offer *models.FeaturedOffer) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": offer.ID}, bson.M{"$set": offer})
	if err != nil {
		return fmt.Errorf("failed to update featured offer %s: %w", offer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("featured offer with id %s not found", offer.ID)
	}
	return nil
}

func (r *MongoFeaturedOfferRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete featured offer %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("featured offer with id %s not found", id)
	}
	return nil
}

func (r *MongoFeaturedOfferRepo) GetByID(ctx context.Context, id string) (*models.FeaturedOffer, error) {
	var offer models.FeaturedOffer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&offer); err != nil {
		return nil, fmt.Errorf("failed to fetch featured offer with id %s: %w", id, err)
	}
	return &offer, nil
}

func (r *MongoFeaturedOfferRepo) GetAll(ctx context.Context) ([]models.FeaturedOffer, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoFeaturedOfferRepo) GetByPartnerID(ctx context.Context, partnerID string) ([]models.FeaturedOffer, error) {
	return r.find(ctx, bson.M{"partnerId": partnerID})
}

func (r *MongoFeaturedOfferRepo) find(ctx context.Context, filter bson.M) ([]models.FeaturedOffer, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve featured offers: %w", err)
	}
	defer cursor.Close(ctx)

	var offers []models.FeaturedOffer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("failed to decode featured offers: %w", err)
	}
	return offers, nil
}
