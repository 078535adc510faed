package persistence

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
	"github.com/Huskyauto/Weightlossapp/internal/integration/persistence/model"
)

func newTestStore(t *testing.T) adapter.KeyValueStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.StorageItemModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewKeyValueStore(db)
}

func weightCollection(store adapter.KeyValueStore) adapter.Collection[entity.WeightEntry] {
	return NewCollection(store, KeyWeightEntries, func(e entity.WeightEntry) string { return e.ID })
}

func TestCollection_RoundTrip(t *testing.T) {
	ctx := context.Background()
	weights := weightCollection(newTestStore(t))

	want := []entity.WeightEntry{
		{ID: "1", Date: "2026-08-30", WeightLbs: 182.4},
		{ID: "2", Date: "2026-08-31", WeightLbs: 181.9, Notes: "after run"},
	}
	if err := weights.ReplaceAll(ctx, want); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	got, err := weights.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestCollection_ListEmptyWhenAbsent(t *testing.T) {
	ctx := context.Background()
	weights := weightCollection(newTestStore(t))

	got, err := weights.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %d entries", len(got))
	}
}

func TestCollection_UpsertIdempotent(t *testing.T) {
	ctx := context.Background()
	weights := weightCollection(newTestStore(t))

	entry := entity.WeightEntry{ID: "1", Date: "2026-08-31", WeightLbs: 181.9}
	if err := weights.Upsert(ctx, entry); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if err := weights.Upsert(ctx, entry); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	got, err := weights.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry after double upsert, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0], entry) {
		t.Errorf("entry changed: got %+v, want %+v", got[0], entry)
	}
}

func TestCollection_UpsertReplacesById(t *testing.T) {
	ctx := context.Background()
	weights := weightCollection(newTestStore(t))

	if err := weights.Upsert(ctx, entity.WeightEntry{ID: "1", Date: "2026-08-31", WeightLbs: 181.9}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	updated := entity.WeightEntry{ID: "1", Date: "2026-08-31", WeightLbs: 180.2, Notes: "re-weighed"}
	if err := weights.Upsert(ctx, updated); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	got, _ := weights.List(ctx)
	if len(got) != 1 || got[0].WeightLbs != 180.2 {
		t.Errorf("expected in-place replacement, got %+v", got)
	}
}

func TestCollection_DeleteMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	weights := weightCollection(newTestStore(t))

	if err := weights.Upsert(ctx, entity.WeightEntry{ID: "1", Date: "2026-08-31", WeightLbs: 181.9}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := weights.Delete(ctx, "does-not-exist"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}

	got, _ := weights.List(ctx)
	if len(got) != 1 {
		t.Errorf("no-op delete changed the collection: %+v", got)
	}

	if err := weights.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, _ = weights.List(ctx)
	if len(got) != 0 {
		t.Errorf("expected empty collection after delete, got %+v", got)
	}
}

func TestCollection_HabitCompositeKey(t *testing.T) {
	ctx := context.Background()
	habits := NewCollection(newTestStore(t), KeyHabitEntries, func(e entity.HabitEntry) string {
		return HabitKey(e.Date, e.HabitType)
	})

	on := entity.HabitEntry{ID: "water-2026-08-31", Date: "2026-08-31", HabitType: "water", Completed: true}
	off := entity.HabitEntry{ID: "water-2026-08-31", Date: "2026-08-31", HabitType: "water", Completed: false}
	other := entity.HabitEntry{ID: "walk-2026-08-31", Date: "2026-08-31", HabitType: "walk", Completed: true}

	for _, e := range []entity.HabitEntry{on, off, other} {
		if err := habits.Upsert(ctx, e); err != nil {
			t.Fatalf("Upsert %+v: %v", e, err)
		}
	}

	got, _ := habits.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected one record per (date, habit), got %d: %+v", len(got), got)
	}
	for _, e := range got {
		if e.HabitType == "water" && e.Completed {
			t.Errorf("re-toggle did not overwrite in place: %+v", e)
		}
	}
}

func TestCollection_CorruptValueDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	weights := weightCollection(store)

	if err := store.Set(ctx, KeyWeightEntries, []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := weights.List(ctx)
	if len(got) != 0 {
		t.Errorf("corrupt value should degrade to empty, got %+v", got)
	}
	if !errors.Is(err, domainerror.ErrStorageDegraded) {
		t.Errorf("expected ErrStorageDegraded marker, got %v", err)
	}
}

func TestDocument_LoadSave(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	streaks := NewDocument[entity.Streak](store, KeyStreak)

	if _, found, err := streaks.Load(ctx); found || err != nil {
		t.Fatalf("expected not-found on fresh store, found=%v err=%v", found, err)
	}

	want := entity.Streak{Count: 4, LastDate: "2026-08-31"}
	if err := streaks.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, found, err := streaks.Load(ctx)
	if err != nil || !found {
		t.Fatalf("Load: found=%v err=%v", found, err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
