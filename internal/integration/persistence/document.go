package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
)

// document implements adapter.Document over one singleton key of the
// key-value store (profile, streak, onboarding flag).
type document[T any] struct {
	store adapter.KeyValueStore
	key   string
}

// NewDocument creates a typed singleton repository over the given storage key.
func NewDocument[T any](store adapter.KeyValueStore, key string) adapter.Document[T] {
	return &document[T]{store: store, key: key}
}

// Load returns the persisted document, with found=false for an absent key or
// a value that fails to parse. Parse failure is absorbed, logged, and
// reported through the wrapped error for internal degradation tracking.
func (d *document[T]) Load(ctx context.Context) (T, bool, error) {
	var doc T
	raw, found, err := d.store.Get(ctx, d.key)
	if err != nil {
		slog.Error("storage read failed, substituting default document", "key", d.key, "error", err)
		return doc, false, fmt.Errorf("%w: read %s: %w", domainerror.ErrStorageDegraded, d.key, err)
	}
	if !found {
		return doc, false, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		slog.Error("storage value failed to parse, substituting default document", "key", d.key, "error", err)
		var zero T
		return zero, false, fmt.Errorf("%w: parse %s: %w", domainerror.ErrStorageDegraded, d.key, err)
	}
	return doc, true, nil
}

// Save overwrites the document wholesale.
func (d *document[T]) Save(ctx context.Context, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		slog.Error("document failed to serialize, write lost", "key", d.key, "error", err)
		return fmt.Errorf("%w: serialize %s: %w", domainerror.ErrStorageDegraded, d.key, err)
	}
	if err := d.store.Set(ctx, d.key, raw); err != nil {
		slog.Error("storage write failed, write lost", "key", d.key, "error", err)
		return fmt.Errorf("%w: write %s: %w", domainerror.ErrStorageDegraded, d.key, err)
	}
	return nil
}
