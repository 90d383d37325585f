package perdict

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/Ricky294/perdict/codec"
	"github.com/Ricky294/perdict/internal/xtesting"
	"github.com/Ricky294/perdict/store"
	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

// RunTests runs tests that confirm a [store.Store] implementation behaves
// correctly when used as the backing storage of a [Map].
func RunTests(
	t *testing.T,
	newStore func(t *testing.T) store.Store,
) {
	setup := func(t *testing.T, options ...Option) (*Map, *countingStore) {
		s := &countingStore{Next: newStore(t)}
		m := openTestMap(t, s, xtesting.SequentialName("document"), options...)
		return m, s
	}

	t.Run("Open", func(t *testing.T) {
		t.Parallel()

		t.Run("it loads entries written by a previous instance", func(t *testing.T) {
			t.Parallel()

			s := newStore(t)
			name := xtesting.SequentialName("document")

			before := openTestMap(t, s, name)
			if err := before.Set(t.Context(), "answer", 42.0); err != nil {
				t.Fatal(err)
			}

			after := openTestMap(t, s, name)
			v, ok := after.Get("answer")
			if !ok {
				t.Fatal("expected key to be present")
			}
			if v != 42.0 {
				t.Fatalf("unexpected value: got %v, want 42", v)
			}
		})

		t.Run("it treats an absent or empty document as an empty map", func(t *testing.T) {
			t.Parallel()

			m, _ := setup(t)

			if m.Len() != 0 {
				t.Fatalf("expected an empty map, got %d entries", m.Len())
			}
		})

		t.Run("it fails if the document is corrupt", func(t *testing.T) {
			t.Parallel()

			cases := []struct {
				Name string
				Data []byte
			}{
				{"malformed", []byte(`{"key": `)},
				{"not a map", []byte(`[1, 2, 3]`)},
				{"trailing data", []byte(`{} {}`)},
			}

			for _, c := range cases {
				t.Run(c.Name, func(t *testing.T) {
					t.Parallel()

					s := newStore(t)

					doc, err := s.Open(t.Context(), xtesting.SequentialName("document"))
					if err != nil {
						t.Fatal(err)
					}
					defer doc.Close()

					if err := doc.Save(t.Context(), c.Data); err != nil {
						t.Fatal(err)
					}

					if _, err := New(t.Context(), doc); !IsCorrupt(err) {
						t.Fatalf("expected a corrupt-document error, got %v", err)
					}
				})
			}
		})

		t.Run("it seeds defaults without overwriting loaded entries", func(t *testing.T) {
			t.Parallel()

			s := newStore(t)
			name := xtesting.SequentialName("document")

			before := openTestMap(t, s, name)
			if err := before.Set(t.Context(), "a", 1.0); err != nil {
				t.Fatal(err)
			}

			after := openTestMap(
				t,
				s,
				name,
				WithDefaults(map[string]Value{"a": 9.0, "b": 2.0}),
			)

			expect := map[string]Value{"a": 1.0, "b": 2.0}
			if diff := cmp.Diff(expect, snapshot(after)); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it persists seeded defaults immediately when autosave is enabled", func(t *testing.T) {
			t.Parallel()

			s := newStore(t)
			name := xtesting.SequentialName("document")

			openTestMap(
				t,
				s,
				name,
				WithDefaults(map[string]Value{"seeded": true}),
			)

			expect := map[string]Value{"seeded": true}
			if diff := cmp.Diff(expect, readTestDocument(t, s, name)); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it does not write when autosave is disabled", func(t *testing.T) {
			t.Parallel()

			_, s := setup(
				t,
				WithAutosave(false),
				WithDefaults(map[string]Value{"seeded": true}),
			)

			if n := s.Saves.Load(); n != 0 {
				t.Fatalf("expected no saves, got %d", n)
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns false if the key is absent", func(t *testing.T) {
			t.Parallel()

			m, _ := setup(t)

			if _, ok := m.Get("missing"); ok {
				t.Fatal("expected key to be absent")
			}
		})

		t.Run("mutating a returned value does not affect the map", func(t *testing.T) {
			t.Parallel()

			m, _ := setup(t)

			if err := m.Set(t.Context(), "nested", map[string]any{"n": 1.0}); err != nil {
				t.Fatal(err)
			}

			v, _ := m.Get("nested")
			v.(map[string]any)["n"] = 99.0

			expect := map[string]Value{"nested": map[string]any{"n": 1.0}}
			if diff := cmp.Diff(expect, snapshot(m)); diff != "" {
				t.Fatal(diff)
			}
		})
	})

	t.Run("Set", func(t *testing.T) {
		t.Parallel()

		t.Run("it persists the mutation immediately", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t)

			if err := m.Set(t.Context(), "key", "value"); err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(
				snapshot(m),
				readTestDocument(t, s, m.Name()),
			); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it does not touch the document when autosave is disabled", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t, WithAutosave(false))

			if err := m.Set(t.Context(), "key", "value"); err != nil {
				t.Fatal(err)
			}

			if n := s.Saves.Load(); n != 0 {
				t.Fatalf("expected no saves, got %d", n)
			}
		})

		t.Run("it surfaces a failed save and keeps the in-memory mutation", func(t *testing.T) {
			t.Parallel()

			s := &failingStore{Next: newStore(t)}
			m := openTestMap(t, s, xtesting.SequentialName("document"))

			if err := m.Set(t.Context(), "stable", "value"); err != nil {
				t.Fatal(err)
			}

			sentinel := errors.New("<error>")
			s.SaveErr = sentinel

			if err := m.Set(t.Context(), "unstable", "value"); !errors.Is(err, sentinel) {
				t.Fatalf("unexpected error: got %v, want %v", err, sentinel)
			}

			// The in-memory assignment is not rolled back, so memory and
			// document now diverge.
			if !m.Has("unstable") {
				t.Fatal("expected the in-memory assignment to survive")
			}

			s.SaveErr = nil

			expect := map[string]Value{"stable": "value"}
			if diff := cmp.Diff(expect, readTestDocument(t, s, m.Name())); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it fails at save time if a value cannot be serialized", func(t *testing.T) {
			t.Parallel()

			m, _ := setup(t)

			err := m.Set(t.Context(), "ch", make(chan int))
			if !codec.IsUnsupported(err) {
				t.Fatalf("expected an unsupported-value error, got %v", err)
			}

			// The assignment itself succeeded; only the save failed.
			if !m.Has("ch") {
				t.Fatal("expected the in-memory assignment to survive")
			}
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Parallel()

		t.Run("it removes the entry and persists", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t)

			if err := m.Set(t.Context(), "key", "value"); err != nil {
				t.Fatal(err)
			}
			if err := m.Delete(t.Context(), "key"); err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(
				map[string]Value{},
				readTestDocument(t, s, m.Name()),
			); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it fails without saving if the key is absent", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t)
			saves := s.Saves.Load()

			if err := m.Delete(t.Context(), "missing"); !IsNotFound(err) {
				t.Fatalf("expected a key-not-found error, got %v", err)
			}

			if n := s.Saves.Load(); n != saves {
				t.Fatalf("expected no additional saves, got %d", n-saves)
			}
		})
	})

	t.Run("Update", func(t *testing.T) {
		t.Parallel()

		t.Run("it merges all entries with a single save", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t)

			if err := m.Set(t.Context(), "a", 1.0); err != nil {
				t.Fatal(err)
			}

			saves := s.Saves.Load()

			if err := m.Update(t.Context(), map[string]Value{
				"a": 10.0,
				"b": 2.0,
				"c": 3.0,
			}); err != nil {
				t.Fatal(err)
			}

			if n := s.Saves.Load(); n != saves+1 {
				t.Fatalf("expected exactly one additional save, got %d", n-saves)
			}

			expect := map[string]Value{"a": 10.0, "b": 2.0, "c": 3.0}
			if diff := cmp.Diff(expect, readTestDocument(t, s, m.Name())); diff != "" {
				t.Fatal(diff)
			}
		})
	})

	t.Run("Clear", func(t *testing.T) {
		t.Parallel()

		t.Run("it writes a well-formed empty map, not an empty file", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t)

			if err := m.Set(t.Context(), "key", "value"); err != nil {
				t.Fatal(err)
			}
			if err := m.Clear(t.Context()); err != nil {
				t.Fatal(err)
			}

			// readTestDocument fails on absent/empty content, so this also
			// proves the document was not truncated.
			if diff := cmp.Diff(
				map[string]Value{},
				readTestDocument(t, s, m.Name()),
			); diff != "" {
				t.Fatal(diff)
			}

			// A fresh instance must be constructible from the cleared
			// document.
			reopened := openTestMap(t, s, m.Name())
			if reopened.Len() != 0 {
				t.Fatalf("expected an empty map, got %d entries", reopened.Len())
			}
		})
	})

	t.Run("Pop", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns the removed value and persists", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t)

			if err := m.Set(t.Context(), "key", "value"); err != nil {
				t.Fatal(err)
			}

			v, err := m.Pop(t.Context(), "key")
			if err != nil {
				t.Fatal(err)
			}
			if v != "value" {
				t.Fatalf("unexpected value: got %v, want %q", v, "value")
			}

			if diff := cmp.Diff(
				map[string]Value{},
				readTestDocument(t, s, m.Name()),
			); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it fails without saving if the key is absent", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t)
			saves := s.Saves.Load()

			if _, err := m.Pop(t.Context(), "missing"); !IsNotFound(err) {
				t.Fatalf("expected a key-not-found error, got %v", err)
			}

			if n := s.Saves.Load(); n != saves {
				t.Fatalf("expected no additional saves, got %d", n-saves)
			}
		})
	})

	t.Run("PopOr", func(t *testing.T) {
		t.Parallel()

		t.Run("it returns the fallback on a miss without saving", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t)
			saves := s.Saves.Load()

			v, err := m.PopOr(t.Context(), "missing", "fallback")
			if err != nil {
				t.Fatal(err)
			}
			if v != "fallback" {
				t.Fatalf("unexpected value: got %v, want %q", v, "fallback")
			}

			if n := s.Saves.Load(); n != saves {
				t.Fatalf("expected no additional saves, got %d", n-saves)
			}
		})

		t.Run("it behaves like Pop on a hit", func(t *testing.T) {
			t.Parallel()

			m, _ := setup(t)

			if err := m.Set(t.Context(), "key", "value"); err != nil {
				t.Fatal(err)
			}

			v, err := m.PopOr(t.Context(), "key", "fallback")
			if err != nil {
				t.Fatal(err)
			}
			if v != "value" {
				t.Fatalf("unexpected value: got %v, want %q", v, "value")
			}
			if m.Has("key") {
				t.Fatal("expected key to be removed")
			}
		})
	})

	t.Run("PopItem", func(t *testing.T) {
		t.Parallel()

		t.Run("it removes entries most-recently-inserted first", func(t *testing.T) {
			t.Parallel()

			m, _ := setup(t)

			for _, k := range []string{"first", "second", "third"} {
				if err := m.Set(t.Context(), k, k); err != nil {
					t.Fatal(err)
				}
			}

			for _, expect := range []string{"third", "second", "first"} {
				k, v, err := m.PopItem(t.Context())
				if err != nil {
					t.Fatal(err)
				}
				if k != expect || v != expect {
					t.Fatalf("unexpected entry: got %q:%v, want %q", k, v, expect)
				}
			}
		})

		t.Run("it fails without saving if the map is empty", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t)
			saves := s.Saves.Load()

			if _, _, err := m.PopItem(t.Context()); !IsEmpty(err) {
				t.Fatalf("expected an empty-map error, got %v", err)
			}

			if n := s.Saves.Load(); n != saves {
				t.Fatalf("expected no additional saves, got %d", n-saves)
			}
		})
	})

	t.Run("SetDefault", func(t *testing.T) {
		t.Parallel()

		t.Run("it inserts and persists when the key is absent", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t)

			v, err := m.SetDefault(t.Context(), "key", "default")
			if err != nil {
				t.Fatal(err)
			}
			if v != "default" {
				t.Fatalf("unexpected value: got %v, want %q", v, "default")
			}

			expect := map[string]Value{"key": "default"}
			if diff := cmp.Diff(expect, readTestDocument(t, s, m.Name())); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it does not save on a hit", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t)

			if err := m.Set(t.Context(), "key", "existing"); err != nil {
				t.Fatal(err)
			}

			saves := s.Saves.Load()

			v, err := m.SetDefault(t.Context(), "key", "default")
			if err != nil {
				t.Fatal(err)
			}
			if v != "existing" {
				t.Fatalf("unexpected value: got %v, want %q", v, "existing")
			}

			if n := s.Saves.Load(); n != saves {
				t.Fatalf("expected no additional saves, got %d", n-saves)
			}
		})
	})

	t.Run("Save", func(t *testing.T) {
		t.Parallel()

		t.Run("it flushes pending mutations while autosave is disabled", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t, WithAutosave(false))

			if err := m.Set(t.Context(), "key", "value"); err != nil {
				t.Fatal(err)
			}
			if err := m.Save(t.Context()); err != nil {
				t.Fatal(err)
			}

			expect := map[string]Value{"key": "value"}
			if diff := cmp.Diff(expect, readTestDocument(t, s, m.Name())); diff != "" {
				t.Fatal(diff)
			}
		})
	})

	t.Run("SavePatch", func(t *testing.T) {
		t.Parallel()

		t.Run("it applies the patch and flushes regardless of autosave", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t, WithAutosave(false))

			if err := m.SavePatch(t.Context(), map[string]Value{
				"a": 1.0,
				"b": 2.0,
			}); err != nil {
				t.Fatal(err)
			}

			expect := map[string]Value{"a": 1.0, "b": 2.0}
			if diff := cmp.Diff(expect, readTestDocument(t, s, m.Name())); diff != "" {
				t.Fatal(diff)
			}
		})
	})

	t.Run("Do", func(t *testing.T) {
		t.Parallel()

		t.Run("it saves on exit even though autosave is disabled", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t, WithAutosave(false))

			if err := m.Do(t.Context(), func(m *Map) error {
				if err := m.Set(t.Context(), "a", 1.0); err != nil {
					return err
				}
				return m.Set(t.Context(), "b", 2.0)
			}); err != nil {
				t.Fatal(err)
			}

			expect := map[string]Value{"a": 1.0, "b": 2.0}
			if diff := cmp.Diff(expect, readTestDocument(t, s, m.Name())); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it saves on the error exit path", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t, WithAutosave(false))

			sentinel := errors.New("<error>")

			err := m.Do(t.Context(), func(m *Map) error {
				if err := m.Set(t.Context(), "key", "value"); err != nil {
					return err
				}
				return sentinel
			})
			if !errors.Is(err, sentinel) {
				t.Fatalf("unexpected error: got %v, want %v", err, sentinel)
			}

			expect := map[string]Value{"key": "value"}
			if diff := cmp.Diff(expect, readTestDocument(t, s, m.Name())); diff != "" {
				t.Fatal(diff)
			}
		})

		t.Run("it saves even when fn panics", func(t *testing.T) {
			t.Parallel()

			m, s := setup(t, WithAutosave(false))

			func() {
				defer func() {
					if recover() == nil {
						t.Error("expected fn to panic")
					}
				}()

				m.Do(t.Context(), func(m *Map) error {
					if err := m.Set(t.Context(), "key", "value"); err != nil {
						return err
					}
					panic("<panic>")
				})
			}()

			expect := map[string]Value{"key": "value"}
			if diff := cmp.Diff(expect, readTestDocument(t, s, m.Name())); diff != "" {
				t.Fatal(diff)
			}
		})
	})

	t.Run("properties", func(t *testing.T) {
		t.Parallel()

		t.Run("any serializable map round-trips through the document", func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			s := newStore(t)

			rapid.Check(t, func(t *rapid.T) {
				name := xtesting.SequentialName("document")

				entries := rapid.MapOf(
					rapid.String(),
					jsonValue(2),
				).Draw(t, "entries")

				doc, err := s.Open(ctx, name)
				if err != nil {
					t.Fatal(err)
				}
				defer doc.Close()

				m, err := New(ctx, doc, WithAutosave(false))
				if err != nil {
					t.Fatal(err)
				}

				if err := m.Update(ctx, entries); err != nil {
					t.Fatal(err)
				}
				if err := m.Save(ctx); err != nil {
					t.Fatal(err)
				}

				reopened, err := New(ctx, doc, WithAutosave(false))
				if err != nil {
					t.Fatal(err)
				}

				if len(entries) == 0 {
					entries = map[string]Value{}
				}
				if diff := cmp.Diff(entries, snapshot(reopened)); diff != "" {
					t.Fatal(diff)
				}
			})
		})

		t.Run("the document always mirrors the in-memory entries", func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			s := newStore(t)

			rapid.Check(t, func(t *rapid.T) {
				name := xtesting.SequentialName("document")

				doc, err := s.Open(ctx, name)
				if err != nil {
					t.Fatal(err)
				}
				defer doc.Close()

				m, err := New(ctx, doc)
				if err != nil {
					t.Fatal(err)
				}

				key := rapid.SampledFrom([]string{"a", "b", "c", "d", "e"})
				value := jsonValue(1)
				model := map[string]Value{}

				t.Repeat(map[string]func(*rapid.T){
					"Set": func(t *rapid.T) {
						k := key.Draw(t, "key")
						v := value.Draw(t, "value")

						if err := m.Set(ctx, k, v); err != nil {
							t.Fatal(err)
						}
						model[k] = v
					},
					"Delete": func(t *rapid.T) {
						k := key.Draw(t, "key")

						err := m.Delete(ctx, k)
						if _, ok := model[k]; ok {
							if err != nil {
								t.Fatal(err)
							}
							delete(model, k)
						} else if !IsNotFound(err) {
							t.Fatalf("expected a key-not-found error, got %v", err)
						}
					},
					"PopOr": func(t *rapid.T) {
						k := key.Draw(t, "key")

						v, err := m.PopOr(ctx, k, nil)
						if err != nil {
							t.Fatal(err)
						}

						if expect, ok := model[k]; ok {
							if diff := cmp.Diff(expect, v); diff != "" {
								t.Fatal(diff)
							}
							delete(model, k)
						} else if v != nil {
							t.Fatalf("expected the fallback value, got %v", v)
						}
					},
					"SetDefault": func(t *rapid.T) {
						k := key.Draw(t, "key")
						v := value.Draw(t, "value")

						if _, err := m.SetDefault(ctx, k, v); err != nil {
							t.Fatal(err)
						}
						if _, ok := model[k]; !ok {
							model[k] = v
						}
					},
					"Clear": func(t *rapid.T) {
						if err := m.Clear(ctx); err != nil {
							t.Fatal(err)
						}
						clear(model)
					},
					"": func(t *rapid.T) {
						if diff := cmp.Diff(model, snapshot(m)); diff != "" {
							t.Fatal(diff)
						}
					},
				})

				reopened, err := New(ctx, doc, WithAutosave(false))
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(model, snapshot(reopened)); diff != "" {
					t.Fatal(diff)
				}
			})
		})
	})
}

// openTestMap opens the named document within s and constructs a [Map]
// against it, failing the test on error.
func openTestMap(
	t testing.TB,
	s store.Store,
	name string,
	options ...Option,
) *Map {
	t.Helper()

	doc, err := s.Open(context.Background(), name)
	if err != nil {
		t.Fatal(err)
	}

	m, err := New(context.Background(), doc, options...)
	if err != nil {
		doc.Close()
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Error(err)
		}
	})

	return m
}

// readTestDocument loads the named document within s and decodes it with
// the default codec.
//
// It fails the test if the document is absent or empty, which
// distinguishes a well-formed empty map from a truncated document.
func readTestDocument(t testing.TB, s store.Store, name string) map[string]Value {
	t.Helper()

	doc, err := s.Open(context.Background(), name)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	data, err := doc.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("document is absent or empty")
	}

	pairs, err := codec.NewJSON().Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}

	entries := map[string]Value{}
	for _, p := range pairs {
		entries[p.Key] = p.Value
	}

	return entries
}

// snapshot returns the map's entries as a plain map for comparison.
func snapshot(m *Map) map[string]Value {
	entries := map[string]Value{}
	for k, v := range m.All() {
		entries[k] = v
	}
	return entries
}

// jsonValue generates arbitrary values of the JSON value model, nesting at
// most depth levels of sequences and mappings.
func jsonValue(depth int) *rapid.Generator[Value] {
	return rapid.Custom(func(t *rapid.T) Value {
		kinds := 5
		if depth <= 0 {
			kinds = 3
		}

		switch rapid.IntRange(0, kinds).Draw(t, "kind") {
		case 0:
			return nil
		case 1:
			return rapid.Bool().Draw(t, "bool")
		case 2:
			return rapid.Float64Range(-1e12, 1e12).Draw(t, "number")
		case 3:
			return rapid.String().Draw(t, "string")
		case 4:
			s := rapid.SliceOfN(jsonValue(depth-1), 0, 3).Draw(t, "sequence")
			if s == nil {
				s = []Value{}
			}
			return s
		default:
			m := rapid.MapOfN(rapid.String(), jsonValue(depth-1), 0, 3).Draw(t, "mapping")
			if m == nil {
				m = map[string]Value{}
			}
			return m
		}
	})
}

// failingStore is a [store.Store] decorator that fails saves with SaveErr
// while it is non-nil, used to verify write-failure propagation.
type failingStore struct {
	Next    store.Store
	SaveErr error
}

func (s *failingStore) Open(ctx context.Context, name string) (store.Document, error) {
	doc, err := s.Next.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	return &failingDocument{doc, s}, nil
}

type failingDocument struct {
	store.Document
	store *failingStore
}

func (d *failingDocument) Save(ctx context.Context, data []byte) error {
	if err := d.store.SaveErr; err != nil {
		return err
	}

	return d.Document.Save(ctx, data)
}

// countingStore is a [store.Store] decorator that counts successful saves,
// used to verify when persistence does (not) occur.
type countingStore struct {
	Next  store.Store
	Saves atomic.Int64
}

func (s *countingStore) Open(ctx context.Context, name string) (store.Document, error) {
	doc, err := s.Next.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	return &countingDocument{doc, &s.Saves}, nil
}

type countingDocument struct {
	store.Document
	saves *atomic.Int64
}

func (d *countingDocument) Save(ctx context.Context, data []byte) error {
	if err := d.Document.Save(ctx, data); err != nil {
		return err
	}

	d.saves.Add(1)

	return nil
}
