package database

import (
	"context"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/medera/medera_backend/config"
	"github.com/medera/medera_backend/internal/repo"
)

// NewEntClient opens the application database and wraps the pooled
// connection in an ent client.
func NewEntClient(cfg config.DatabaseConfig) (*repo.Client, error) {
	return NewEntClientFromConfig(FromCentralConfig(cfg))
}

func NewEntClientFromConfig(cfg Config) (*repo.Client, error) {
	db, err := openSQLDB(cfg)
	if err != nil {
		return nil, err
	}
	return repo.NewClient(repo.Driver(entsql.OpenDB(dialect.Postgres, db))), nil
}

// MigrateEnt applies the generated schema. Idempotent, so it runs on
// every deploy before the server starts.
func MigrateEnt(ctx context.Context, client *repo.Client) error {
	return client.Schema.Create(ctx)
}
