// Package mongostore keeps health documents (entries, streaks, tips) in
// MongoDB. Users stay in Postgres.
package mongostore

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/limbo/healthtracker/pkg/cleanup"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EntriesCollection = "daily_entries"
	StreaksCollection = "streaks"
	TipsCollection    = "health_tips"
)

// Connect opens a client, pings it and returns the named database. The
// disconnect is registered as a cleanup job.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	connCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(10 * time.Second).
		SetMaxPoolSize(50)
	client, err := mongo.Connect(connCtx, opts)
	if err != nil {
		return nil, errors.New("connecting to mongo error: " + err.Error())
	}
	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err = client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, errors.New("pinging mongo error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "disconnecting mongo client",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return client.Disconnect(ctx)
		},
	})
	log.Println("connected to mongo database " + dbName)
	return client.Database(dbName), nil
}

// EnsureIndexes creates the indexes the stores query by.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(EntriesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
	})
	if err != nil {
		return errors.New("creating entries index error: " + err.Error())
	}
	_, err = db.Collection(StreaksCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.New("creating streaks index error: " + err.Error())
	}
	_, err = db.Collection(TipsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return errors.New("creating tips index error: " + err.Error())
	}
	return nil
}
