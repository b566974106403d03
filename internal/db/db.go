// Package db provides PostgreSQL persistence for parsed resumes, skill levels and roadmaps.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks that the database is reachable
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// schemaStatements create every table the service uses. They are idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS parsed_resumes (
		id           UUID PRIMARY KEY,
		user_id      TEXT NOT NULL,
		filename     TEXT NOT NULL DEFAULT '',
		format       TEXT NOT NULL DEFAULT '',
		content_hash TEXT NOT NULL DEFAULT '',
		success      BOOLEAN NOT NULL,
		result       JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS parsed_resumes_user_created_idx
		ON parsed_resumes (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS skill_levels (
		user_id    TEXT PRIMARY KEY,
		levels     JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS roadmaps (
		id         UUID PRIMARY KEY,
		user_id    TEXT NOT NULL,
		roadmap    JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS roadmaps_user_created_idx
		ON roadmaps (user_id, created_at DESC)`,
}

// EnsureSchema creates missing tables and indexes
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
