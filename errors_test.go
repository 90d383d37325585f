package perdict_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/Ricky294/perdict"
)

func TestIgnoreNotFound(t *testing.T) {
	err := errors.New("<error>")

	cases := []struct {
		Name     string
		Err      error
		Expected error
	}{
		{
			Name:     "KeyNotFoundError",
			Err:      KeyNotFoundError{Key: "<key>"},
			Expected: nil,
		},
		{
			Name:     "wrapped KeyNotFoundError",
			Err:      fmt.Errorf("cannot pop: %w", KeyNotFoundError{Key: "<key>"}),
			Expected: nil,
		},
		{
			Name:     "EmptyMapError",
			Err:      EmptyMapError{},
			Expected: EmptyMapError{},
		},
		{
			Name:     "unrecognized error",
			Err:      err,
			Expected: err,
		},
		{
			Name:     "nil error",
			Err:      nil,
			Expected: nil,
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			actual := IgnoreNotFound(c.Err)
			if actual != c.Expected {
				t.Fatalf("unexpected result: got %v, want %v", actual, c.Expected)
			}
		})
	}
}

func TestIsCorrupt(t *testing.T) {
	cause := errors.New("<cause>")
	err := CorruptDocumentError{Name: "<name>", Cause: cause}

	if !IsCorrupt(err) {
		t.Fatal("expected IsCorrupt to report true")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected the cause to be reachable via errors.Is")
	}
	if IsCorrupt(cause) {
		t.Fatal("expected IsCorrupt to report false for the bare cause")
	}
}
