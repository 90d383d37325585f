package memorystore

import (
	"context"
	"errors"
	"slices"
)

// document is an implementation of [store.Document] that manipulates a
// document's in-memory [state].
type document struct {
	name       string
	state      *state
	beforeSave func(name string, data []byte) error
	afterSave  func(name string, data []byte) error
}

func (d *document) Name() string {
	return d.name
}

func (d *document) Load(ctx context.Context) ([]byte, error) {
	if d.state == nil {
		panic("document is closed")
	}

	d.state.RLock()
	defer d.state.RUnlock()

	return slices.Clone(d.state.Data), ctx.Err()
}

func (d *document) Save(ctx context.Context, data []byte) error {
	if d.state == nil {
		panic("document is closed")
	}

	data = slices.Clone(data)

	d.state.Lock()
	defer d.state.Unlock()

	if d.beforeSave != nil {
		if err := d.beforeSave(d.name, data); err != nil {
			return err
		}
	}

	d.state.Data = data

	if d.afterSave != nil {
		if err := d.afterSave(d.name, data); err != nil {
			return err
		}
	}

	return ctx.Err()
}

func (d *document) Close() error {
	if d.state == nil {
		return errors.New("document is already closed")
	}

	d.state = nil

	return nil
}
