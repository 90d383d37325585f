// Package store defines the backing-storage abstraction used by perdict.
package store

import "context"

// A Store is a collection of named documents.
type Store interface {
	// Open returns the document with the given name, creating whatever
	// underlying resources are needed for it to be loaded and saved.
	Open(ctx context.Context, name string) (Document, error)
}

// A Document is a single named blob of serialized data.
//
// Documents are always read and written whole; there are no partial
// updates.
type Document interface {
	// Name returns the name the document was opened with.
	Name() string

	// Load returns the document's current content.
	//
	// If the document is absent or empty, data is nil.
	Load(ctx context.Context) (data []byte, err error)

	// Save overwrites the document's content.
	Save(ctx context.Context, data []byte) error

	// Close closes the document.
	Close() error
}
