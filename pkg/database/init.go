package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/medera/medera_backend/config"
)

// InitializeDatabases creates the application databases listed in
// server.databases when they do not exist yet. It connects through the
// stock 'postgres' database, so it runs before any migration.
func InitializeDatabases(cfg *config.Config) error {
	if len(cfg.Server.Databases) == 0 {
		return fmt.Errorf("no database names provided")
	}

	bootstrap := Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   "postgres",
		SSLMode:  cfg.Database.SSLMode,
	}

	conn, err := openSQLDB(bootstrap)
	if err != nil {
		return fmt.Errorf("connect to postgres database: %w", err)
	}
	defer conn.Close()

	for _, name := range cfg.Server.Databases {
		if err := createDatabaseIfNotExists(conn, name); err != nil {
			return fmt.Errorf("create database %q: %w", name, err)
		}
	}
	return nil
}

func createDatabaseIfNotExists(conn *sql.DB, name string) error {
	var exists bool
	err := conn.QueryRowContext(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database existence: %w", err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE cannot be parameterized; name comes from config,
	// not user input.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := conn.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE %s", name)); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	return nil
}
