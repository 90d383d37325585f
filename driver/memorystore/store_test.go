package memorystore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Ricky294/perdict"
	. "github.com/Ricky294/perdict/driver/memorystore"
	"github.com/Ricky294/perdict/store"
)

func TestStore(t *testing.T) {
	perdict.RunTests(
		t,
		func(t *testing.T) store.Store {
			return &Store{}
		},
	)
}

func TestStoreOpenWithCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc, err := (&Store{}).Open(ctx, "test")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected error: got %v, want %v", err, context.Canceled)
	}
	if doc != nil {
		t.Fatal("expected no document")
	}
}

func TestStoreSaveHooks(t *testing.T) {
	t.Run("it does not modify the document when BeforeSave fails", func(t *testing.T) {
		sentinel := errors.New("<error>")
		fail := false

		s := &Store{
			BeforeSave: func(string, []byte) error {
				if fail {
					return sentinel
				}
				return nil
			},
		}

		doc, err := s.Open(t.Context(), "test")
		if err != nil {
			t.Fatal(err)
		}
		defer doc.Close()

		if err := doc.Save(t.Context(), []byte("before")); err != nil {
			t.Fatal(err)
		}

		fail = true

		if err := doc.Save(t.Context(), []byte("after")); !errors.Is(err, sentinel) {
			t.Fatalf("unexpected error: got %v, want %v", err, sentinel)
		}

		fail = false

		data, err := doc.Load(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "before" {
			t.Fatalf("unexpected content: got %q, want %q", data, "before")
		}
	})

	t.Run("it propagates an AfterSave failure after updating the document", func(t *testing.T) {
		sentinel := errors.New("<error>")

		s := &Store{
			AfterSave: func(string, []byte) error {
				return sentinel
			},
		}

		doc, err := s.Open(t.Context(), "test")
		if err != nil {
			t.Fatal(err)
		}
		defer doc.Close()

		if err := doc.Save(t.Context(), []byte("content")); !errors.Is(err, sentinel) {
			t.Fatalf("unexpected error: got %v, want %v", err, sentinel)
		}

		data, err := doc.Load(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "content" {
			t.Fatalf("unexpected content: got %q, want %q", data, "content")
		}
	})
}

func BenchmarkStore(b *testing.B) {
	perdict.RunBenchmarks(
		b,
		&Store{},
	)
}
