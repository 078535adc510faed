package habit

import (
	"context"
	"errors"
	"testing"

	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
)

type memCollection struct {
	entries []entity.HabitEntry
}

func (m *memCollection) List(context.Context) ([]entity.HabitEntry, error) {
	return m.entries, nil
}

func (m *memCollection) Upsert(_ context.Context, entry entity.HabitEntry) error {
	for i, existing := range m.entries {
		if existing.ID == entry.ID {
			m.entries[i] = entry
			return nil
		}
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memCollection) Delete(context.Context, string) error { return nil }

func (m *memCollection) ReplaceAll(_ context.Context, entries []entity.HabitEntry) error {
	m.entries = entries
	return nil
}

func TestToggle_ComposesIDFromHabitAndDate(t *testing.T) {
	habits := &memCollection{}
	uc := NewToggleHabitUseCase(habits)

	entry, err := uc.Execute(context.Background(), ToggleHabitInput{
		Date:      "2026-02-01",
		HabitType: "water",
		Completed: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID != "water-2026-02-01" {
		t.Errorf("ID = %q, want water-2026-02-01", entry.ID)
	}
}

func TestToggle_SameDayOverwritesInPlace(t *testing.T) {
	habits := &memCollection{}
	uc := NewToggleHabitUseCase(habits)

	input := ToggleHabitInput{Date: "2026-02-01", HabitType: "meditation", Completed: true}
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	input.Completed = false
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	if len(habits.entries) != 1 {
		t.Fatalf("entry count = %d, want 1", len(habits.entries))
	}
	if habits.entries[0].Completed {
		t.Error("second toggle should have overwritten Completed to false")
	}
}

func TestToggle_RejectsMalformedDate(t *testing.T) {
	habits := &memCollection{}
	uc := NewToggleHabitUseCase(habits)

	_, err := uc.Execute(context.Background(), ToggleHabitInput{
		Date:      "02/01/2026",
		HabitType: "water",
	})
	if !errors.Is(err, domainerror.ErrInvalidEntryDate) {
		t.Fatalf("err = %v, want ErrInvalidEntryDate", err)
	}
	if len(habits.entries) != 0 {
		t.Error("malformed date must not be persisted")
	}
}

func TestToggle_RequiresDateAndHabit(t *testing.T) {
	uc := NewToggleHabitUseCase(&memCollection{})

	_, err := uc.Execute(context.Background(), ToggleHabitInput{HabitType: "water"})

	var journalErr *domainerror.JournalError
	if !errors.As(err, &journalErr) || journalErr.Code != domainerror.ErrCodeMissingEntryFields {
		t.Fatalf("err = %v, want code %s", err, domainerror.ErrCodeMissingEntryFields)
	}
}

func TestToggle_RejectsUnknownHabit(t *testing.T) {
	habits := &memCollection{}
	uc := NewToggleHabitUseCase(habits)

	_, err := uc.Execute(context.Background(), ToggleHabitInput{
		Date:      "2026-02-01",
		HabitType: "juggling",
	})
	if !errors.Is(err, domainerror.ErrUnknownHabit) {
		t.Fatalf("err = %v, want ErrUnknownHabit", err)
	}
	if len(habits.entries) != 0 {
		t.Error("unknown habit must not be persisted")
	}
}
