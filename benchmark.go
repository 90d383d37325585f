package perdict

import (
	"context"
	"fmt"
	"testing"

	"github.com/Ricky294/perdict/internal/xtesting"
	"github.com/Ricky294/perdict/store"
)

// RunBenchmarks runs benchmarks against a [store.Store] implementation used
// as the backing storage of a [Map].
func RunBenchmarks(
	b *testing.B,
	s store.Store,
) {
	b.Run("New", func(b *testing.B) {
		b.Run("existing document", func(b *testing.B) {
			var doc store.Document

			xtesting.Benchmark(
				b,
				// SETUP
				func(ctx context.Context) error {
					var err error
					doc, err = s.Open(ctx, xtesting.SequentialName("document"))
					if err != nil {
						return err
					}

					b.Cleanup(func() {
						doc.Close()
					})

					// pre-populate the document
					m, err := New(ctx, doc, WithAutosave(false))
					if err != nil {
						return err
					}
					for i := range 100 {
						if err := m.Set(ctx, fmt.Sprintf("<key-%d>", i), "<value>"); err != nil {
							return err
						}
					}
					return m.Save(ctx)
				},
				// BEFORE EACH
				nil,
				// BENCHMARKED CODE
				func(ctx context.Context) error {
					_, err := New(ctx, doc, WithAutosave(false))
					return err
				},
				// AFTER EACH
				nil,
			)
		})

		b.Run("new document", func(b *testing.B) {
			var (
				doc store.Document
				m   *Map
			)

			xtesting.Benchmark(
				b,
				// SETUP
				nil,
				// BEFORE EACH
				func(ctx context.Context) error {
					var err error
					doc, err = s.Open(ctx, xtesting.SequentialName("document"))
					return err
				},
				// BENCHMARKED CODE
				func(ctx context.Context) (err error) {
					m, err = New(ctx, doc)
					return err
				},
				// AFTER EACH
				func(context.Context) error {
					return m.Close()
				},
			)
		})
	})

	b.Run("Map", func(b *testing.B) {
		b.Run("Set", func(b *testing.B) {
			b.Run("non-existent key", func(b *testing.B) {
				var (
					key string
					n   int
				)

				benchmarkMap(
					b,
					s,
					// SETUP
					nil,
					// BEFORE EACH
					func(context.Context, *Map) error {
						key = fmt.Sprintf("<key-%d>", n)
						n++
						return nil
					},
					// BENCHMARKED CODE
					func(ctx context.Context, m *Map) error {
						return m.Set(ctx, key, "<value>")
					},
					// AFTER EACH
					nil,
				)
			})

			b.Run("existing key", func(b *testing.B) {
				benchmarkMap(
					b,
					s,
					// SETUP
					func(ctx context.Context, m *Map) error {
						return m.Set(ctx, "<key>", "<value-1>")
					},
					// BEFORE EACH
					nil,
					// BENCHMARKED CODE
					func(ctx context.Context, m *Map) error {
						return m.Set(ctx, "<key>", "<value-2>")
					},
					// AFTER EACH
					nil,
				)
			})
		})

		b.Run("Delete", func(b *testing.B) {
			benchmarkMap(
				b,
				s,
				// SETUP
				nil,
				// BEFORE EACH
				func(ctx context.Context, m *Map) error {
					return m.Set(ctx, "<key>", "<value>")
				},
				// BENCHMARKED CODE
				func(ctx context.Context, m *Map) error {
					return m.Delete(ctx, "<key>")
				},
				// AFTER EACH
				nil,
			)
		})

		b.Run("Save (1k entries)", func(b *testing.B) {
			benchmarkMap(
				b,
				s,
				// SETUP
				func(ctx context.Context, m *Map) error {
					m.SetAutosave(false)
					for i := range 1000 {
						if err := m.Set(ctx, fmt.Sprintf("<key-%d>", i), "<value>"); err != nil {
							return err
						}
					}
					return nil
				},
				// BEFORE EACH
				nil,
				// BENCHMARKED CODE
				func(ctx context.Context, m *Map) error {
					return m.Save(ctx)
				},
				// AFTER EACH
				nil,
			)
		})
	})
}

func benchmarkMap(
	b *testing.B,
	s store.Store,
	setup func(context.Context, *Map) error,
	before func(context.Context, *Map) error,
	fn func(context.Context, *Map) error,
	after func(context.Context, *Map) error,
) {
	var m *Map

	xtesting.Benchmark(
		b,
		func(ctx context.Context) error {
			doc, err := s.Open(ctx, xtesting.SequentialName("document"))
			if err != nil {
				return err
			}

			m, err = New(ctx, doc)
			if err != nil {
				doc.Close()
				return err
			}

			b.Cleanup(func() {
				m.Close()
			})

			if setup != nil {
				return setup(ctx, m)
			}

			return nil
		},
		func(ctx context.Context) error {
			if before != nil {
				return before(ctx, m)
			}
			return nil
		},
		func(ctx context.Context) error {
			return fn(ctx, m)
		},
		func(ctx context.Context) error {
			if after != nil {
				return after(ctx, m)
			}
			return nil
		},
	)
}
