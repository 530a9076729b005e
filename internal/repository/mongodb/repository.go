package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
)

// Repository defines the interface for snapshot archiving. The entity store
// itself is in-memory by design; only the nightly aggregates are persisted.
type Repository interface {
	SaveSnapshot(ctx context.Context, snapshot models.HerdSnapshot) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "herd_snapshots",
	}, nil
}

// SaveSnapshot archives one day's aggregate, replacing any snapshot already
// stored for the same date so the nightly job can safely re-run.
func (r *MongoDBRepository) SaveSnapshot(ctx context.Context, snapshot models.HerdSnapshot) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)

	filter := bson.M{"date": snapshot.Date}
	opts := options.Replace().SetUpsert(true)

	if _, err := collection.ReplaceOne(ctx, filter, snapshot, opts); err != nil {
		return fmt.Errorf("failed to upsert herd snapshot for %s: %w", snapshot.Date, err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
