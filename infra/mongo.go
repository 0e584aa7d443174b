package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/yander/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoDatabase connects to MongoDB, checks the primary is reachable and
// returns the configured database. Disconnect through db.Client().
func NewMongoDatabase(ctx context.Context, cnf *config.Mongo) (*mongo.Database, error) {
	if cnf == nil || cnf.URI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}
	if cnf.Database == "" {
		return nil, errors.New("MONGO_DATABASE is not set")
	}
	connectTimeout := cnf.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cnf.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client.Database(cnf.Database), nil
}
