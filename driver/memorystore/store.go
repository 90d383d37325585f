// Package memorystore provides an implementation of [store.Store] that
// keeps documents in memory.
package memorystore

import (
	"context"
	"sync"

	"github.com/Ricky294/perdict/store"
)

// state is the in-memory state of a document.
type state struct {
	sync.RWMutex
	Data []byte
}

// Store is an in-memory implementation of [store.Store].
//
// Documents opened under the same name share content; the zero value is
// ready for use.
type Store struct {
	// BeforeSave, if non-nil, is called before a document is saved.
	BeforeSave func(name string, data []byte) error

	// AfterSave, if non-nil, is called after a document is saved.
	AfterSave func(name string, data []byte) error

	documents sync.Map // map[string]*state
}

// Open returns the document with the given name.
func (s *Store) Open(ctx context.Context, name string) (store.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st, ok := s.documents.Load(name)

	if !ok {
		st, _ = s.documents.LoadOrStore(
			name,
			&state{},
		)
	}

	return &document{
		name:       name,
		state:      st.(*state),
		beforeSave: s.BeforeSave,
		afterSave:  s.AfterSave,
	}, nil
}
