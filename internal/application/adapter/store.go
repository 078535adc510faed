// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// KeyValueStore is the durable flat namespace the tracker persists into:
// one string key per collection, each value a JSON-serialized document.
// Keys are fixed, versionless strings; there is no migration mechanism.
type KeyValueStore interface {
	// Get returns the raw value for key. found is false when the key has
	// never been written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set replaces the entire value for key.
	Set(ctx context.Context, key string, value []byte) error
}

// Collection is a typed repository over one key-value collection. Entries
// are an unordered set; every write rewrites the whole serialized
// collection. The matching key is supplied at construction, which lets habit
// entries match on (date, habitType) while everything else matches on id.
//
// List absorbs parse failures into an empty slice by contract; the returned
// error reports the absorbed failure so callers can log it, never to
// propagate it to the user.
type Collection[T any] interface {
	// List returns the full persisted collection, or an empty slice when the
	// key is absent or its value fails to parse.
	List(ctx context.Context) ([]T, error)

	// Upsert replaces the first entry with the same matching key, else appends.
	Upsert(ctx context.Context, entry T) error

	// Delete removes the entry with the given matching key. A missing key is
	// a silent no-op.
	Delete(ctx context.Context, key string) error

	// ReplaceAll overwrites the whole collection.
	ReplaceAll(ctx context.Context, entries []T) error
}

// Document is a typed repository over one singleton key-value record
// (profile, streak, onboarding flag).
type Document[T any] interface {
	// Load returns the persisted document. found is false when the key is
	// absent or the stored value fails to parse.
	Load(ctx context.Context) (doc T, found bool, err error)

	// Save overwrites the document wholesale.
	Save(ctx context.Context, doc T) error
}
