package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Table definitions are synchronized at startup, matching the entities
// in internal/domains. Books reference warehouses with ON DELETE
// CASCADE: removing a warehouse removes its books at the store level.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          BIGSERIAL PRIMARY KEY,
		username    VARCHAR(255) NOT NULL UNIQUE,
		password    VARCHAR(255) NOT NULL,
		role        VARCHAR(50)  NOT NULL DEFAULT 'admin',
		created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS warehouses (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(100) NOT NULL UNIQUE,
		location    VARCHAR(200) NOT NULL,
		created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id            BIGSERIAL PRIMARY KEY,
		title         VARCHAR(255) NOT NULL,
		author        VARCHAR(255) NOT NULL,
		isbn          VARCHAR(17),
		is_available  BOOLEAN      NOT NULL DEFAULT TRUE,
		warehouse_id  BIGINT       NOT NULL REFERENCES warehouses(id) ON DELETE CASCADE,
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_books_isbn ON books (isbn) WHERE isbn IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS idx_books_warehouse_id ON books (warehouse_id)`,
}

// Sync creates any missing tables and indexes.
func (db *PostgresDB) Sync(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema sync failed: %w", err)
		}
	}

	log.Info().Msg("database schema synchronized")
	return nil
}
