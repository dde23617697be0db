package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Daniellmm/3D-backend/models"
)

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

func (s *MongoStore) InsertListing(ctx context.Context, listing models.Listing) (string, error) {
	listing.ID = primitive.NewObjectID()

	if _, err := s.collection.InsertOne(ctx, listing); err != nil {
		return "", fmt.Errorf("error inserting listing: %v", err)
	}
	return listing.ID.Hex(), nil
}

func (s *MongoStore) GetAllListings(ctx context.Context) ([]models.Listing, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching listings: %v", err)
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("error decoding listings: %v", err)
	}
	return listings, nil
}

func (s *MongoStore) GetListingByID(ctx context.Context, id string) (models.Listing, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Listing{}, ErrNotFound
	}

	var listing models.Listing
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Listing{}, ErrNotFound
		}
		return models.Listing{}, fmt.Errorf("error fetching listing %s: %v", id, err)
	}
	return listing, nil
}
