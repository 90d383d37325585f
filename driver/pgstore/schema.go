package pgstore

import (
	"context"
	"database/sql"
)

// CreateSchema creates the PostgreSQL schema elements required by [Store].
func CreateSchema(
	ctx context.Context,
	db *sql.DB,
) error {
	if _, err := db.ExecContext(
		ctx,
		`CREATE SCHEMA IF NOT EXISTS perdict`,
	); err != nil {
		return err
	}

	if _, err := db.ExecContext(
		ctx,
		`CREATE TABLE IF NOT EXISTS perdict.document (
			name TEXT NOT NULL,
			data BYTEA NOT NULL,

			PRIMARY KEY (name)
		)`,
	); err != nil {
		return err
	}

	return nil
}
