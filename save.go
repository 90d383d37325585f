package perdict

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Save persists the map's full contents to the backing document,
// regardless of the autosave setting.
//
// This is the only way to force a write while autosave is disabled.
func (m *Map) Save(ctx context.Context) error {
	return m.save(ctx)
}

// SavePatch applies the given entries via [Map.Set] (each subject to the
// usual autosave behavior) and then saves unconditionally.
func (m *Map) SavePatch(ctx context.Context, patch map[string]Value) error {
	for _, k := range slices.Sorted(maps.Keys(patch)) {
		if err := m.Set(ctx, k, patch[k]); err != nil {
			return err
		}
	}

	return m.save(ctx)
}

// Do invokes fn with the map, then saves on every exit path, including when
// fn returns an error or panics.
//
// It bounds a block of mutations that is guaranteed to be flushed even with
// autosave disabled, without the caller having to remember to save.
func (m *Map) Do(ctx context.Context, fn func(*Map) error) (err error) {
	defer func() {
		err = errors.Join(err, m.save(ctx))
	}()

	return fn(m)
}

func (m *Map) save(ctx context.Context) error {
	data, err := m.codec.Marshal(m.pairs())
	if err != nil {
		return fmt.Errorf("cannot marshal document %q: %w", m.doc.Name(), err)
	}

	if err := m.doc.Save(ctx, data); err != nil {
		return fmt.Errorf("cannot save document %q: %w", m.doc.Name(), err)
	}

	return nil
}
