package perdict

import (
	"errors"
	"fmt"
)

// IsNotFound returns true if err is caused by [KeyNotFoundError].
func IsNotFound(err error) bool {
	return errors.As(err, &KeyNotFoundError{})
}

// IgnoreNotFound returns nil if err is caused by [KeyNotFoundError].
// Otherwise it returns err unchanged.
func IgnoreNotFound(err error) error {
	if IsNotFound(err) {
		return nil
	}
	return err
}

// KeyNotFoundError is returned by [Map.Delete] and [Map.Pop] if the
// requested key is not present in the map.
type KeyNotFoundError struct {
	Key string
}

func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q is not present in the map", e.Key)
}

// IsEmpty returns true if err is caused by [EmptyMapError].
func IsEmpty(err error) bool {
	return errors.As(err, &EmptyMapError{})
}

// EmptyMapError is returned by [Map.PopItem] if the map has no entries.
type EmptyMapError struct{}

func (EmptyMapError) Error() string {
	return "the map has no entries"
}

// IsCorrupt returns true if err is caused by [CorruptDocumentError].
func IsCorrupt(err error) bool {
	return errors.As(err, &CorruptDocumentError{})
}

// CorruptDocumentError is returned by [New] and [Open] if the backing
// document is non-empty but does not contain a valid serialized map.
type CorruptDocumentError struct {
	// Name is the name of the backing document.
	Name string

	// Cause is the decoding error that was encountered.
	Cause error
}

func (e CorruptDocumentError) Error() string {
	return fmt.Sprintf("document %q does not contain a valid serialized map: %s", e.Name, e.Cause)
}

func (e CorruptDocumentError) Unwrap() error {
	return e.Cause
}
