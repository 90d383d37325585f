package store_test

import (
	"testing"

	"github.com/Ricky294/perdict/driver/memorystore"
	. "github.com/Ricky294/perdict/store"
)

func TestWithNamePrefix(t *testing.T) {
	var underlying memorystore.Store

	s := WithNamePrefix(&underlying, "prefix-")

	doc, err := s.Open(t.Context(), "test")
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	t.Run("it adds the prefix to the name", func(t *testing.T) {
		want := []byte(`{"key":"value"}`)

		if err := doc.Save(t.Context(), want); err != nil {
			t.Fatal(err)
		}

		u, err := underlying.Open(t.Context(), "prefix-test")
		if err != nil {
			t.Fatal(err)
		}
		defer u.Close()

		got, err := u.Load(t.Context())
		if err != nil {
			t.Fatal(err)
		}

		if string(got) != string(want) {
			t.Errorf("unexpected content: got %q, want %q", got, want)
		}
	})

	t.Run("it reports the unprefixed name", func(t *testing.T) {
		if got, want := doc.Name(), "test"; got != want {
			t.Errorf("unexpected name: got %q, want %q", got, want)
		}
	})
}
