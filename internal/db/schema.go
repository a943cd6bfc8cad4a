package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const createPostsTable = `
	CREATE TABLE IF NOT EXISTS posts (
		id    BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		body  TEXT NOT NULL
	)
`

const dropPostsTable = `DROP TABLE IF EXISTS posts`

// CreateTables creates the posts table if it does not exist.
func CreateTables(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createPostsTable); err != nil {
		return fmt.Errorf("db: create posts table: %w", err)
	}
	return nil
}

// DropTables removes the posts table and its data. Recreating it restarts
// ids at 1.
func DropTables(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, dropPostsTable); err != nil {
		return fmt.Errorf("db: drop posts table: %w", err)
	}
	return nil
}
