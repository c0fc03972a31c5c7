package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Mongo wraps the document-store client and exposes the collections the
// intake service uses.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo connects to the document store and verifies the connection.
func ConnectMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	slog.Info("document store connected", "database", database)

	return &Mongo{
		client: client,
		db:     client.Database(database),
	}, nil
}

// SubmissionsCollection returns the timeline submissions collection.
func (m *Mongo) SubmissionsCollection() *mongo.Collection {
	return m.db.Collection("timeline_submissions")
}

// Ping verifies the document store is still reachable; used by the health
// endpoint.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects from the document store.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// index on user_id backstops the query-then-upsert flow: a concurrent double
// submit from two tabs degrades to a duplicate-key error instead of a second
// aggregate root.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.SubmissionsCollection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    map[string]int{"user_id": 1},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create submissions index: %w", err)
	}
	return nil
}
