package perdict

import (
	"context"
	"maps"
	"slices"

	"github.com/dogmatiq/dyad"
)

// Set associates a value with k.
func (m *Map) Set(ctx context.Context, k string, v Value) error {
	m.put(k, dyad.Clone(v))
	return m.autosaved(ctx)
}

// Delete removes the entry with the given key.
//
// It returns a [KeyNotFoundError] if k is not present in the map.
func (m *Map) Delete(ctx context.Context, k string) error {
	if _, ok := m.values[k]; !ok {
		return KeyNotFoundError{Key: k}
	}

	m.remove(k)

	return m.autosaved(ctx)
}

// Update merges the given entries into the map, overwriting values of
// existing keys.
//
// The whole merge is followed by a single save when autosave is enabled.
func (m *Map) Update(ctx context.Context, entries map[string]Value) error {
	for _, k := range slices.Sorted(maps.Keys(entries)) {
		m.put(k, dyad.Clone(entries[k]))
	}

	return m.autosaved(ctx)
}

// Clear removes all entries.
//
// With autosave enabled the backing document is rewritten as a well-formed
// empty map, never truncated to zero bytes, so that reopening it cannot
// fail with a [CorruptDocumentError].
func (m *Map) Clear(ctx context.Context) error {
	m.keys = nil
	clear(m.values)

	return m.autosaved(ctx)
}

// Pop removes the entry with the given key and returns its value.
//
// It returns a [KeyNotFoundError] if k is not present in the map.
func (m *Map) Pop(ctx context.Context, k string) (Value, error) {
	v, ok := m.values[k]
	if !ok {
		return nil, KeyNotFoundError{Key: k}
	}

	m.remove(k)

	return v, m.autosaved(ctx)
}

// PopOr removes the entry with the given key and returns its value, or
// returns fallback if k is not present.
//
// A miss does not mutate the map and therefore never triggers a save.
func (m *Map) PopOr(ctx context.Context, k string, fallback Value) (Value, error) {
	if _, ok := m.values[k]; !ok {
		return fallback, nil
	}

	return m.Pop(ctx, k)
}

// PopItem removes and returns the most recently inserted entry.
//
// It returns an [EmptyMapError] if the map has no entries.
func (m *Map) PopItem(ctx context.Context) (string, Value, error) {
	if len(m.keys) == 0 {
		return "", nil, EmptyMapError{}
	}

	k := m.keys[len(m.keys)-1]
	v := m.values[k]
	m.remove(k)

	return k, v, m.autosaved(ctx)
}

// SetDefault associates a value with k only if k is absent, returning the
// value that is in the map afterwards.
//
// A save is triggered only when the key was actually inserted; a hit is
// not a mutation.
func (m *Map) SetDefault(ctx context.Context, k string, v Value) (Value, error) {
	if existing, ok := m.values[k]; ok {
		return dyad.Clone(existing), nil
	}

	m.put(k, dyad.Clone(v))

	return v, m.autosaved(ctx)
}

// autosaved persists the map if autosave is enabled.
func (m *Map) autosaved(ctx context.Context) error {
	if !m.autosave {
		return nil
	}
	return m.save(ctx)
}
