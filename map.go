// Package perdict provides a mutable string-keyed map that transparently
// persists its entire contents to a backing document after every mutation,
// and restores them from that document when it is reopened.
package perdict

import (
	"context"
	"fmt"
	"iter"
	"maps"
	"path/filepath"
	"slices"

	"github.com/Ricky294/perdict/codec"
	"github.com/Ricky294/perdict/driver/filestore"
	"github.com/Ricky294/perdict/store"
	"github.com/dogmatiq/dyad"
)

// Value is any value representable in the map's serialization format.
//
// For the default JSON codec that is nil, bool, float64, string, []any and
// map[string]any. Assigning an unrepresentable value succeeds in memory;
// the failure surfaces on the next save.
type Value = any

// A Map is a mutable mapping from string keys to values that mirrors its
// entire contents to a backing [store.Document].
//
// Entries retain key-insertion order. A Map is not safe for concurrent use;
// see the package documentation for the (single-writer) persistence
// contract.
type Map struct {
	doc      store.Document
	codec    codec.Codec
	autosave bool

	keys   []string
	values map[string]Value
}

// Open returns a [Map] backed by the file at the given path.
//
// The file's parent directories are created if they are missing, and the
// file itself is created (empty) if it does not exist. See [New] for the
// treatment of options, defaults and existing content.
func Open(ctx context.Context, path string, options ...Option) (*Map, error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	doc, err := filestore.New(dir).Open(ctx, name)
	if err != nil {
		return nil, err
	}

	m, err := New(ctx, doc, options...)
	if err != nil {
		doc.Close()
		return nil, err
	}

	return m, nil
}

// New returns a [Map] backed by the given document.
//
// If the document is non-empty, its content becomes the map's initial
// entries; it returns a [CorruptDocumentError] if the content does not
// parse. Defaults supplied via [WithDefaults] are then inserted for keys
// that are still absent. If autosave is enabled an initial save is
// performed, so the document reflects the seeded defaults even if no
// further mutation occurs.
func New(ctx context.Context, doc store.Document, options ...Option) (*Map, error) {
	opts := resolveOptions(options)

	m := &Map{
		doc:      doc,
		codec:    opts.codec,
		autosave: opts.autosave,
		values:   map[string]Value{},
	}

	data, err := doc.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot load document %q: %w", doc.Name(), err)
	}

	if len(data) != 0 {
		pairs, err := m.codec.Unmarshal(data)
		if err != nil {
			return nil, CorruptDocumentError{Name: doc.Name(), Cause: err}
		}

		for _, p := range pairs {
			m.put(p.Key, p.Value)
		}
	}

	// Defaults are applied in sorted key order so that the initial document
	// layout does not depend on map iteration order.
	for _, k := range slices.Sorted(maps.Keys(opts.defaults)) {
		if _, ok := m.values[k]; !ok {
			m.put(k, dyad.Clone(opts.defaults[k]))
		}
	}

	if m.autosave {
		if err := m.save(ctx); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Name returns the name of the backing document.
func (m *Map) Name() string {
	return m.doc.Name()
}

// Autosave returns true if every mutation is followed by a save.
func (m *Map) Autosave() bool {
	return m.autosave
}

// SetAutosave enables or disables autosave.
//
// Disabling autosave does not discard unsaved mutations; they remain in
// memory until [Map.Save] is called or autosave is re-enabled and a
// mutation occurs.
func (m *Map) SetAutosave(enabled bool) {
	m.autosave = enabled
}

// Get returns the value associated with k.
func (m *Map) Get(k string) (Value, bool) {
	v, ok := m.values[k]
	if !ok {
		return nil, false
	}
	return dyad.Clone(v), true
}

// Has returns true if k is present in the map.
func (m *Map) Has(k string) bool {
	_, ok := m.values[k]
	return ok
}

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the map's keys in insertion order.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// All ranges over the map's entries in key-insertion order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range m.keys {
			if !yield(k, dyad.Clone(m.values[k])) {
				return
			}
		}
	}
}

// Close closes the backing document.
//
// It does not save; unsaved mutations are discarded, exactly as when the
// map goes out of scope.
func (m *Map) Close() error {
	return m.doc.Close()
}

// put sets k to v in memory, appending k to the insertion order if it is
// new. Overwriting an existing key does not move it.
func (m *Map) put(k string, v Value) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// remove deletes k from memory. The key must be present.
func (m *Map) remove(k string) {
	i := slices.Index(m.keys, k)
	m.keys = slices.Delete(m.keys, i, i+1)
	delete(m.values, k)
}

// pairs returns the map's entries in insertion order, for serialization.
func (m *Map) pairs() []codec.Pair {
	pairs := make([]codec.Pair, len(m.keys))
	for i, k := range m.keys {
		pairs[i] = codec.Pair{Key: k, Value: m.values[k]}
	}
	return pairs
}
