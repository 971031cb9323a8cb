package database

import (
	"context"
	"fmt"
	"time"

	"cheesecatalog/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// positionField keeps the catalog row order inside the collection.
const positionField = "position"

type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	logger   *zap.Logger
}

func NewMongoDB(uri, dbName string, logger *zap.Logger) (*MongoDB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info("Connected to MongoDB", zap.String("uri", uri), zap.String("database", dbName))

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
		logger:   logger,
	}, nil
}

func (m *MongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

func (m *MongoDB) ListCollections(ctx context.Context) ([]string, error) {
	names, err := m.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// ReplaceCatalog drops the collection and inserts one document per record.
func (m *MongoDB) ReplaceCatalog(ctx context.Context, collectionName string, catalog models.Catalog) (int, error) {
	collection := m.Database.Collection(collectionName)

	if err := collection.Drop(ctx); err != nil {
		return 0, fmt.Errorf("failed to drop collection %s: %w", collectionName, err)
	}
	if len(catalog) == 0 {
		m.logger.Info("Catalog is empty, collection left empty", zap.String("collection", collectionName))
		return 0, nil
	}

	documents := make([]interface{}, 0, len(catalog))
	for i, record := range catalog {
		documents = append(documents, ToDocument(i, record))
	}

	result, err := collection.InsertMany(ctx, documents)
	if err != nil {
		return 0, fmt.Errorf("failed to insert records: %w", err)
	}

	m.logger.Info("Inserted catalog", zap.String("collection", collectionName), zap.Int("documents", len(result.InsertedIDs)))
	return len(result.InsertedIDs), nil
}

// FetchCatalog reads the collection back in row order.
func (m *MongoDB) FetchCatalog(ctx context.Context, collectionName string) (models.Catalog, error) {
	collection := m.Database.Collection(collectionName)

	opts := options.Find().SetSort(bson.D{{Key: positionField, Value: 1}})
	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	catalog := models.Catalog{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		catalog = append(catalog, FromDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	m.logger.Info("Fetched catalog", zap.String("collection", collectionName), zap.Int("documents", len(catalog)))
	return catalog, nil
}

// ToDocument keeps the column order so the collection reads like the JSON file.
func ToDocument(position int, record models.Record) bson.D {
	doc := make(bson.D, 0, models.ColumnCount+1)
	doc = append(doc, bson.E{Key: positionField, Value: position})
	for i, heading := range models.Columns {
		doc = append(doc, bson.E{Key: heading, Value: record[i]})
	}
	return doc
}

// FromDocument ignores _id, the position and any field that is not a string.
func FromDocument(doc bson.M) models.Record {
	var record models.Record
	for i, heading := range models.Columns {
		if value, ok := doc[heading].(string); ok {
			record[i] = value
		}
	}
	return record
}
