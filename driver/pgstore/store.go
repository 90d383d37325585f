// Package pgstore provides an implementation of [store.Store] that keeps
// each document in a PostgreSQL row.
package pgstore

import (
	"context"
	"database/sql"

	"github.com/Ricky294/perdict/store"
)

// Store is an implementation of [store.Store] that stores documents in a
// PostgreSQL database.
//
// The schema must be created first, see [CreateSchema].
type Store struct {
	DB *sql.DB
}

// Open returns the document with the given name.
func (s *Store) Open(_ context.Context, name string) (store.Document, error) {
	return &document{
		db:   s.DB,
		name: name,
	}, nil
}
