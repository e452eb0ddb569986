package snapstore

import (
	"context"
	"errors"
	"strings"
)

// snapshotExt is the file extension all backends store documents under.
const snapshotExt = ".json"

// ErrNotFound is returned when a named snapshot does not exist.
var ErrNotFound = errors.New("snapstore: snapshot not found")

// ErrInvalidName is returned for names that cannot be used as storage keys.
var ErrInvalidName = errors.New("snapstore: invalid snapshot name")

// Store is the interface snapshot storage backends implement.
type Store interface {
	// Put stores data under name, replacing any previous document.
	Put(ctx context.Context, name string, data []byte) error

	// Get retrieves the document stored under name.
	Get(ctx context.Context, name string) ([]byte, error)

	// List returns the stored names in lexical order.
	List(ctx context.Context) ([]string, error)

	// Delete removes the document stored under name.
	Delete(ctx context.Context, name string) error
}

// ValidName reports whether name is safe to use as a storage key:
// non-empty, no path separators, and no leading dot.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	if strings.HasPrefix(name, ".") {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return true
}
