package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
)

// undefinedTable is the PostgreSQL error code reported when a query
// references a table that does not exist.
const undefinedTable = "42P01"

// document is an implementation of [store.Document] that reads and writes
// a single row.
type document struct {
	db   *sql.DB
	name string
}

func (d *document) Name() string {
	return d.name
}

func (d *document) Load(ctx context.Context) ([]byte, error) {
	row := d.db.QueryRowContext(
		ctx,
		`SELECT data
		FROM perdict.document
		WHERE name = $1`,
		d.name,
	)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot scan document row: %w", describeSchemaError(err))
	}

	return data, nil
}

func (d *document) Save(ctx context.Context, data []byte) error {
	if _, err := d.db.ExecContext(
		ctx,
		`INSERT INTO perdict.document AS o (
			name,
			data
		) VALUES (
			$1, $2
		) ON CONFLICT (name) DO UPDATE SET
			data = $2`,
		d.name,
		data,
	); err != nil {
		return fmt.Errorf("cannot upsert document row: %w", describeSchemaError(err))
	}

	return nil
}

func (d *document) Close() error {
	return nil
}

// describeSchemaError adds guidance to errors caused by a missing schema,
// which otherwise surface as an opaque "relation does not exist".
func describeSchemaError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
		return fmt.Errorf("document table does not exist (has CreateSchema been called?): %w", err)
	}
	return err
}
