package filestore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Ricky294/perdict"
	. "github.com/Ricky294/perdict/driver/filestore"
	"github.com/Ricky294/perdict/store"
)

func TestStore(t *testing.T) {
	perdict.RunTests(
		t,
		func(t *testing.T) store.Store {
			return New(t.TempDir())
		},
	)
}

func TestStoreWithAtomicWrites(t *testing.T) {
	perdict.RunTests(
		t,
		func(t *testing.T) store.Store {
			return New(t.TempDir(), WithAtomicWrites())
		},
	)
}

func TestStoreOpenWithCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc, err := New(t.TempDir()).Open(ctx, "test")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected error: got %v, want %v", err, context.Canceled)
	}
	if doc != nil {
		t.Fatal("expected no document")
	}
}

func BenchmarkStore(b *testing.B) {
	perdict.RunBenchmarks(
		b,
		New(b.TempDir()),
	)
}
