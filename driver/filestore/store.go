// Package filestore provides an implementation of [store.Store] that keeps
// each document in a file within a directory.
package filestore

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Ricky294/perdict/store"
)

// New returns a new [store.Store] that keeps each document in a file named
// after the document within the given directory.
func New(dir string, options ...Option) store.Store {
	if dir == "" {
		panic("directory must not be empty")
	}

	s := &fileStore{
		Dir:  dir,
		Mode: 0o644,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// Option is a functional option that changes the behavior of [New].
type Option func(*fileStore)

// WithFileMode is an [Option] that sets the permission bits used when
// creating document files.
func WithFileMode(mode fs.FileMode) Option {
	return func(s *fileStore) {
		s.Mode = mode
	}
}

// WithAtomicWrites is an [Option] that makes each save write to a temporary
// file in the same directory and rename it over the document file.
//
// A crash mid-save then leaves the previous content intact instead of a
// partially written file. Without it, saves overwrite the document file in
// place.
func WithAtomicWrites() Option {
	return func(s *fileStore) {
		s.Atomic = true
	}
}

// fileStore is an implementation of [store.Store] that persists to the
// local filesystem.
type fileStore struct {
	Dir    string
	Mode   fs.FileMode
	Atomic bool
}

// Open returns the document with the given name.
//
// The store's directory is created if it is missing, and the document file
// is created (empty) if it does not exist, so that subsequent loads never
// observe a missing file.
func (s *fileStore) Open(ctx context.Context, name string) (store.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create document directory: %w", err)
	}

	path := filepath.Join(s.Dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, s.Mode)
	if err != nil {
		return nil, fmt.Errorf("cannot create document file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	return &document{
		name:   name,
		path:   path,
		mode:   s.Mode,
		atomic: s.Atomic,
	}, nil
}
