package database

import (
	"context"
	"database/sql"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"resumeapi/internal/config"
)

// Pinger is what the health endpoint needs from a store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Store owns the process-wide connection for the configured driver. It is opened once
// at startup and closed once at shutdown.
type Store struct {
	Driver string

	SQL *sql.DB

	MongoClient *mongo.Client
	Mongo       *mongo.Database
}

// Open connects using cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.AppConfig) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return &Store{Driver: config.DriverPostgres, SQL: db}, nil
	case config.DriverMongo:
		client, db, err := NewMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return &Store{Driver: config.DriverMongo, MongoClient: client, Mongo: db}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

// Pinger returns the health probe for the active driver.
func (s *Store) Pinger() Pinger {
	if s.SQL != nil {
		return s.SQL
	}
	return MongoPinger{Client: s.MongoClient}
}

// Close releases the pool.
func (s *Store) Close(ctx context.Context) error {
	if s.SQL != nil {
		return s.SQL.Close()
	}
	if s.MongoClient != nil {
		return s.MongoClient.Disconnect(ctx)
	}
	return nil
}
