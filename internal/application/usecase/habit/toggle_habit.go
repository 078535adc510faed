// Package habit contains daily-habit use cases.
package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
)

// ToggleHabitInput identifies the habit and day being toggled.
type ToggleHabitInput struct {
	Date      string
	HabitType string
	Completed bool
}

// ToggleHabitUseCase records the completion state of one habit for one day.
// Entries match on (date, habitType), so re-toggling overwrites in place.
type ToggleHabitUseCase struct {
	habits adapter.Collection[entity.HabitEntry]
}

// NewToggleHabitUseCase creates a new ToggleHabitUseCase instance.
func NewToggleHabitUseCase(habits adapter.Collection[entity.HabitEntry]) *ToggleHabitUseCase {
	return &ToggleHabitUseCase{habits: habits}
}

// Execute upserts the habit completion record.
func (uc *ToggleHabitUseCase) Execute(ctx context.Context, input ToggleHabitInput) (*entity.HabitEntry, error) {
	if input.Date == "" || input.HabitType == "" {
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeMissingEntryFields,
			"date and habitType are required",
			nil,
		)
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeInvalidEntryDate,
			fmt.Sprintf("date %q is not an ISO date", input.Date),
			domainerror.ErrInvalidEntryDate,
		)
	}
	if !isKnownHabit(input.HabitType) {
		return nil, domainerror.NewJournalError(
			domainerror.ErrCodeUnknownHabit,
			fmt.Sprintf("habit %q is not in the catalog", input.HabitType),
			domainerror.ErrUnknownHabit,
		)
	}

	entry := entity.HabitEntry{
		ID:        input.HabitType + "-" + input.Date,
		Date:      input.Date,
		HabitType: input.HabitType,
		Completed: input.Completed,
	}
	if err := uc.habits.Upsert(ctx, entry); err != nil {
		return &entry, fmt.Errorf("failed to toggle habit: %w", err)
	}
	return &entry, nil
}

func isKnownHabit(habitType string) bool {
	for _, h := range entity.DailyHabits {
		if h.ID == habitType {
			return true
		}
	}
	return false
}

// ListHabitEntriesUseCase returns all habit completion records.
type ListHabitEntriesUseCase struct {
	habits adapter.Collection[entity.HabitEntry]
}

// NewListHabitEntriesUseCase creates a new ListHabitEntriesUseCase instance.
func NewListHabitEntriesUseCase(habits adapter.Collection[entity.HabitEntry]) *ListHabitEntriesUseCase {
	return &ListHabitEntriesUseCase{habits: habits}
}

// Execute returns the persisted habit entries.
func (uc *ListHabitEntriesUseCase) Execute(ctx context.Context) ([]entity.HabitEntry, error) {
	return uc.habits.List(ctx)
}
