package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectDB(uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGOURI not set in environment")
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %v", err)
	}

	log.Println("Connected to MongoDB")
	return client, nil
}

func ListingCollection(client *mongo.Client, cfg *Config) *mongo.Collection {
	return client.Database(cfg.DBName).Collection(cfg.Collection)
}

func CloseDBConnection(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		log.Fatalf("Error closing database connection: %v", err)
	}
	log.Println("MongoDB connection closed")
}
