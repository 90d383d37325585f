package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
)

// document is an implementation of [store.Document] that reads and writes a
// single file.
type document struct {
	name   string
	path   string
	mode   fs.FileMode
	atomic bool
}

func (d *document) Name() string {
	return d.name
}

func (d *document) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		// The file was created at open time; if it has gone missing since,
		// the document is simply absent.
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("cannot read document file: %w", err)
	}

	if len(data) == 0 {
		return nil, ctx.Err()
	}

	return data, ctx.Err()
}

func (d *document) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !d.atomic {
		if err := os.WriteFile(d.path, data, d.mode); err != nil {
			return fmt.Errorf("cannot write document file: %w", err)
		}
		return nil
	}

	temp := d.path + ".tmp-" + uuid.NewString()

	if err := os.WriteFile(temp, data, d.mode); err != nil {
		return fmt.Errorf("cannot write temporary document file: %w", err)
	}

	if err := os.Rename(temp, d.path); err != nil {
		os.Remove(temp)
		return fmt.Errorf("cannot replace document file: %w", err)
	}

	return nil
}

func (d *document) Close() error {
	return nil
}
