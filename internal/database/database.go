package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// findLimit caps how many documents a single Find may return.
const findLimit = 1000

// Store is a thin wrapper around a MongoDB database. It is constructed once at
// process start and shared by all handlers; the driver's connection pool makes
// it safe for concurrent use.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(mongoURL, dbName string) (*Store, error) {
	// Use longer timeout for Atlas connections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURL)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the database with a separate context
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	log.Println("✅ Connected to MongoDB")
	return &Store{client: client, db: client.Database(dbName)}, nil
}

// InsertOne inserts a single document and returns the store-assigned id.
func (s *Store) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// Find returns matching documents, never more than 1000 regardless of limit.
func (s *Store) Find(ctx context.Context, collection string, filter, projection bson.M, limit int64) ([]bson.M, error) {
	if limit <= 0 || limit > findLimit {
		limit = findLimit
	}

	findOptions := options.Find()
	findOptions.SetLimit(limit)
	if projection != nil {
		findOptions.SetProjection(projection)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *Store) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
