package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"blogspace/internal/config"
)

type DB struct {
	*sqlx.DB
}

// ConnectDB opens the PostgreSQL pool, applies pending migrations and
// verifies the connection.
func ConnectDB(cfg *config.Config) (*DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := RunMigrations(cfg.DB.URL()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	dbStruct := &DB{db}
	if err := dbStruct.HealthCheck(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	slog.Info("connected to postgres", slog.String("host", cfg.DB.DbHOST), slog.String("dbname", cfg.DB.DbNAME))
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	return db.Ping()
}
