package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
)

// collection implements adapter.Collection over one key of the key-value
// store. keyOf extracts the matching key from an entry; entry kinds keyed by
// id pass an id extractor, habit entries pass a (date, habitType) extractor.
type collection[T any] struct {
	store adapter.KeyValueStore
	key   string
	keyOf func(T) string
}

// NewCollection creates a typed collection repository over the given storage
// key. One generic, instantiated once per entry kind.
func NewCollection[T any](store adapter.KeyValueStore, key string, keyOf func(T) string) adapter.Collection[T] {
	return &collection[T]{store: store, key: key, keyOf: keyOf}
}

// HabitKey builds the composite matching key for habit entries: at most one
// completion record per habit per day.
func HabitKey(date, habitType string) string {
	return date + "|" + habitType
}

// List returns the persisted collection. An absent key or a corrupt value
// degrades to an empty slice; the absorbed failure is logged and reported
// through the wrapped error so callers can track degradation without ever
// surfacing it.
func (c *collection[T]) List(ctx context.Context) ([]T, error) {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		slog.Error("storage read failed, substituting empty collection", "key", c.key, "error", err)
		return []T{}, fmt.Errorf("%w: read %s: %w", domainerror.ErrStorageDegraded, c.key, err)
	}
	if !found {
		return []T{}, nil
	}

	var entries []T
	if err := json.Unmarshal(raw, &entries); err != nil {
		slog.Error("storage value failed to parse, substituting empty collection", "key", c.key, "error", err)
		return []T{}, fmt.Errorf("%w: parse %s: %w", domainerror.ErrStorageDegraded, c.key, err)
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}

// Upsert replaces the first entry whose matching key equals the new entry's,
// else appends. The whole collection document is rewritten.
func (c *collection[T]) Upsert(ctx context.Context, entry T) error {
	// A degraded read already substituted an empty slice; proceeding with it
	// lets the write repair a corrupt key instead of wedging the collection.
	entries, _ := c.List(ctx)

	key := c.keyOf(entry)
	replaced := false
	for i := range entries {
		if c.keyOf(entries[i]) == key {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	return c.ReplaceAll(ctx, entries)
}

// Delete filters out the entry with the given matching key. Absence is a
// silent no-op.
func (c *collection[T]) Delete(ctx context.Context, key string) error {
	entries, _ := c.List(ctx)

	kept := entries[:0]
	for _, e := range entries {
		if c.keyOf(e) != key {
			kept = append(kept, e)
		}
	}

	return c.ReplaceAll(ctx, kept)
}

// ReplaceAll serializes and persists the whole collection.
func (c *collection[T]) ReplaceAll(ctx context.Context, entries []T) error {
	if entries == nil {
		entries = []T{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		slog.Error("collection failed to serialize, write lost", "key", c.key, "error", err)
		return fmt.Errorf("%w: serialize %s: %w", domainerror.ErrStorageDegraded, c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		slog.Error("storage write failed, write lost", "key", c.key, "error", err)
		return fmt.Errorf("%w: write %s: %w", domainerror.ErrStorageDegraded, c.key, err)
	}
	return nil
}
