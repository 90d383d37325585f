package codec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/Ricky294/perdict/codec"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("it preserves the order of the pairs", func(t *testing.T) {
		t.Parallel()

		c := NewJSON()

		pairs := []Pair{
			{"zulu", 1.0},
			{"alpha", "two"},
			{"mike", []any{true, nil}},
			{"bravo", map[string]any{"nested": 3.0}},
		}

		data, err := c.Marshal(pairs)
		if err != nil {
			t.Fatal(err)
		}

		actual, err := c.Unmarshal(data)
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff(pairs, actual); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it produces an empty object for no pairs", func(t *testing.T) {
		t.Parallel()

		c := NewJSON()

		data, err := c.Marshal(nil)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "{}" {
			t.Fatalf("unexpected output: got %q, want %q", data, "{}")
		}

		pairs, err := c.Unmarshal(data)
		if err != nil {
			t.Fatal(err)
		}
		if len(pairs) != 0 {
			t.Fatalf("unexpected pairs: got %v", pairs)
		}
	})

	t.Run("it rejects malformed documents", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			Name string
			Data string
		}{
			{"empty input", ``},
			{"not an object", `[1, 2, 3]`},
			{"truncated object", `{"key":`},
			{"trailing data", `{} {}`},
			{"scalar", `42`},
		}

		for _, c := range cases {
			t.Run(c.Name, func(t *testing.T) {
				t.Parallel()

				if _, err := NewJSON().Unmarshal([]byte(c.Data)); err == nil {
					t.Fatal("expected an error")
				}
			})
		}
	})

	t.Run("it reports unsupported values", func(t *testing.T) {
		t.Parallel()

		_, err := NewJSON().Marshal([]Pair{
			{"ch", make(chan int)},
		})

		if !IsUnsupported(err) {
			t.Fatalf("expected an unsupported-value error, got %v", err)
		}
	})
}

func TestIndentedJSON(t *testing.T) {
	t.Parallel()

	t.Run("its output parses back to the same pairs", func(t *testing.T) {
		t.Parallel()

		pairs := []Pair{
			{"b", 1.0},
			{"a", map[string]any{"nested": "value"}},
		}

		data, err := NewIndentedJSON("  ").Marshal(pairs)
		if err != nil {
			t.Fatal(err)
		}

		actual, err := NewJSON().Unmarshal(data)
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff(pairs, actual); diff != "" {
			t.Fatal(diff)
		}
	})
}
