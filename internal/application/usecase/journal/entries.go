// Package journal contains the entry-logging use cases: weight, meal, water,
// exercise, mood, and sleep records.
package journal

import (
	"context"
	"fmt"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
)

// LogEntry upserts one entry into its collection: replace-first-match by the
// collection's key, else append. One generic, instantiated per entry kind.
type LogEntry[T any] struct {
	entries adapter.Collection[T]
}

// NewLogEntry creates a new LogEntry use case over the given collection.
func NewLogEntry[T any](entries adapter.Collection[T]) *LogEntry[T] {
	return &LogEntry[T]{entries: entries}
}

// Execute persists the entry. The returned error is the internal degraded
// marker; the HTTP layer treats writes as best-effort and never surfaces it.
func (uc *LogEntry[T]) Execute(ctx context.Context, entry T) error {
	if err := uc.entries.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("failed to log entry: %w", err)
	}
	return nil
}

// ListEntries returns the full collection for one entry kind.
type ListEntries[T any] struct {
	entries adapter.Collection[T]
}

// NewListEntries creates a new ListEntries use case over the given collection.
func NewListEntries[T any](entries adapter.Collection[T]) *ListEntries[T] {
	return &ListEntries[T]{entries: entries}
}

// Execute returns the persisted entries; a degraded read yields an empty
// slice alongside the internal marker error.
func (uc *ListEntries[T]) Execute(ctx context.Context) ([]T, error) {
	return uc.entries.List(ctx)
}

// DeleteEntry removes one entry by id. Missing ids are a silent no-op.
type DeleteEntry[T any] struct {
	entries adapter.Collection[T]
}

// NewDeleteEntry creates a new DeleteEntry use case over the given collection.
func NewDeleteEntry[T any](entries adapter.Collection[T]) *DeleteEntry[T] {
	return &DeleteEntry[T]{entries: entries}
}

// Execute removes the entry with the given id.
func (uc *DeleteEntry[T]) Execute(ctx context.Context, id string) error {
	if err := uc.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}
