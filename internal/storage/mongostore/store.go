package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crypto-fraud-detector/internal/config"
	"crypto-fraud-detector/internal/logger"
	"crypto-fraud-detector/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const serverSelectionTimeout = 5 * time.Second

// Store хранилище транзакций в MongoDB
type Store struct {
	client     *mongo.Client
	db         *mongo.Database
	collection *mongo.Collection
	name       string
}

// New подключается к MongoDB и подготавливает коллекцию с уникальным индексом по id
func New(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	logger.Log.Infow("Connecting to MongoDB", "database", cfg.MongoDatabase, "collection", cfg.Collection)

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(serverSelectionTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	store := NewFromDatabase(client, client.Database(cfg.MongoDatabase), cfg.Collection)
	if err := store.ensureCollection(ctx); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	logger.Log.Infow("MongoDB connection established")
	return store, nil
}

// NewFromDatabase оборачивает готовую базу без проверок соединения
func NewFromDatabase(client *mongo.Client, db *mongo.Database, collection string) *Store {
	return &Store{
		client:     client,
		db:         db,
		collection: db.Collection(collection),
		name:       collection,
	}
}

func (s *Store) ensureCollection(ctx context.Context) error {
	names, err := s.db.ListCollectionNames(ctx, bson.M{"name": s.name})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	if len(names) == 0 {
		if err := s.db.CreateCollection(ctx, s.name); err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
	}

	_, err = s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create id index: %w", err)
	}
	return nil
}

// Save сохраняет запись анализа
func (s *Store) Save(ctx context.Context, record *models.TransactionRecord) error {
	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetByID возвращает запись без служебного поля _id или nil, если записи нет
func (s *Store) GetByID(ctx context.Context, id string) (*models.TransactionRecord, error) {
	var record models.TransactionRecord
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	err := s.collection.FindOne(ctx, bson.M{"id": id}, opts).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if record.RiskFactors == nil {
		record.RiskFactors = models.RiskFactors{}
	}
	return &record, nil
}

// Ping проверяет соединение
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// CollectionAvailable проверяет наличие коллекции транзакций
func (s *Store) CollectionAvailable(ctx context.Context) bool {
	names, err := s.db.ListCollectionNames(ctx, bson.M{"name": s.name})
	return err == nil && len(names) > 0
}

func (s *Store) Driver() string {
	return config.DriverMongoDB
}

// Close отключается от MongoDB
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
