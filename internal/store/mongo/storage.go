package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const ordersCollection = "orders"

type Storage struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func New(cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(50).
		SetMinPoolSize(5)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Storage{
		client:   client,
		database: client.Database(cfg.Database),
		config:   cfg,
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Database() *mongo.Database {
	return s.database
}

func (s *Storage) CreateIndexes(ctx context.Context) error {
	ordersIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "phone", Value: 1}},
		},
	}
	if _, err := s.database.Collection(ordersCollection).Indexes().CreateMany(ctx, ordersIndexes); err != nil {
		return fmt.Errorf("failed to create orders indexes: %w", err)
	}

	return nil
}
