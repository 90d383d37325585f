package perdict_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/Ricky294/perdict"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("it creates the file and any missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")

		m, err := Open(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}
		defer m.Close()

		if err := m.Set(t.Context(), "key", "value"); err != nil {
			t.Fatal(err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("it loads entries written by a previous instance", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json")

		before, err := Open(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}

		if err := before.Update(t.Context(), map[string]Value{
			"name":    "perdict",
			"version": 1.0,
		}); err != nil {
			t.Fatal(err)
		}
		if err := before.Close(); err != nil {
			t.Fatal(err)
		}

		after, err := Open(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}
		defer after.Close()

		expect := map[string]Value{
			"name":    "perdict",
			"version": 1.0,
		}

		actual := map[string]Value{}
		for k, v := range after.All() {
			actual[k] = v
		}

		if diff := cmp.Diff(expect, actual); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it preserves insertion order across instances", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json")

		before, err := Open(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}

		keys := []string{"charlie", "alpha", "bravo"}
		for i, k := range keys {
			if err := before.Set(t.Context(), k, float64(i)); err != nil {
				t.Fatal(err)
			}
		}
		if err := before.Close(); err != nil {
			t.Fatal(err)
		}

		after, err := Open(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}
		defer after.Close()

		if diff := cmp.Diff(keys, after.Keys()); diff != "" {
			t.Fatal(diff)
		}

		// The most recently inserted key is removed first.
		k, _, err := after.PopItem(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if k != "bravo" {
			t.Fatalf("unexpected key: got %q, want %q", k, "bravo")
		}
	})

	t.Run("overwriting a key does not move it", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json")

		m, err := Open(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}
		defer m.Close()

		for _, k := range []string{"a", "b", "c"} {
			if err := m.Set(t.Context(), k, "<value>"); err != nil {
				t.Fatal(err)
			}
		}
		if err := m.Set(t.Context(), "a", "<updated>"); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]string{"a", "b", "c"}, m.Keys()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it applies defaults on every open, not just the first", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json")
		defaults := WithDefaults(map[string]Value{"retries": 3.0})

		before, err := Open(t.Context(), path, defaults)
		if err != nil {
			t.Fatal(err)
		}

		if err := before.Set(t.Context(), "retries", 10.0); err != nil {
			t.Fatal(err)
		}
		if _, err := before.Pop(t.Context(), "retries"); err != nil {
			t.Fatal(err)
		}
		if err := before.Close(); err != nil {
			t.Fatal(err)
		}

		after, err := Open(t.Context(), path, defaults)
		if err != nil {
			t.Fatal(err)
		}
		defer after.Close()

		v, ok := after.Get("retries")
		if !ok {
			t.Fatal("expected the default to be re-seeded")
		}
		if v != 3.0 {
			t.Fatalf("unexpected value: got %v, want 3", v)
		}
	})

	t.Run("it fails if the file is corrupt", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json")

		if err := os.WriteFile(path, []byte(`not json`), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := Open(t.Context(), path); !IsCorrupt(err) {
			t.Fatalf("expected a corrupt-document error, got %v", err)
		}
	})
}

func TestMapSetAutosave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")

	m, err := Open(t.Context(), path, WithAutosave(false))
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	if m.Autosave() {
		t.Fatal("expected autosave to be disabled")
	}

	if err := m.Set(t.Context(), "key", "value"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Fatalf("expected the file to remain empty, got %q", data)
	}

	m.SetAutosave(true)
	if !m.Autosave() {
		t.Fatal("expected autosave to be enabled")
	}

	if err := m.Save(t.Context()); err != nil {
		t.Fatal(err)
	}

	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("expected the file to contain the saved entries")
	}
}
