package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoConfig struct {
	URL              string
	Database         string
	EventsCollection string
	ConnectTimeout   time.Duration
	MaxPoolSize      uint64
}

func DefaultMongoConfig() *MongoConfig {
	return &MongoConfig{
		URL:              getEnvOrDefault("MONGODB_URL", "mongodb://localhost:27017"),
		Database:         getEnvOrDefault("MONGODB_DATABASE", "ai_replies_db"),
		EventsCollection: getEnvOrDefault("MONGODB_EVENTS_COLLECTION", "ai_replies"),
		ConnectTimeout:   getEnvDurationWithDefault("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		MaxPoolSize:      uint64(getEnvIntWithDefault("MONGODB_MAX_POOL_SIZE", 100)),
	}
}

// GetClient connects and pings the primary. The caller owns Disconnect.
func (c *MongoConfig) GetClient(ctx context.Context) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, c.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(c.URL).
		SetMaxPoolSize(c.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}
