package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainError "github.com/Huskyauto/Weightlossapp/internal/domain/error"
)

type memDocument[T any] struct {
	doc   T
	found bool
}

func (m *memDocument[T]) Load(context.Context) (T, bool, error) { return m.doc, m.found, nil }
func (m *memDocument[T]) Save(_ context.Context, doc T) error {
	m.doc = doc
	m.found = true
	return nil
}

type memCollection[T any] struct {
	entries []T
}

func (m *memCollection[T]) List(context.Context) ([]T, error) { return m.entries, nil }
func (m *memCollection[T]) Upsert(_ context.Context, entry T) error {
	m.entries = append(m.entries, entry)
	return nil
}
func (m *memCollection[T]) Delete(context.Context, string) error { return nil }
func (m *memCollection[T]) ReplaceAll(_ context.Context, entries []T) error {
	m.entries = entries
	return nil
}

func fixedNow(date string) func() time.Time {
	parsed, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return parsed }
}

func newFixture(profileFound bool) (*SummaryUseCase, *memCollection[entity.WeightEntry], *memCollection[entity.MealEntry], *memCollection[entity.WaterEntry], *memCollection[entity.ExerciseEntry], *memCollection[entity.HabitEntry]) {
	profiles := &memDocument[entity.UserProfile]{
		doc: entity.UserProfile{
			CurrentWeightLbs: 180,
			TargetWeightLbs:  160,
			DailyCalorieGoal: 1800,
			DailyWaterGoalL:  2.66,
		},
		found: profileFound,
	}
	streaks := &memDocument[entity.Streak]{doc: entity.Streak{Count: 4, LastDate: "2026-06-10"}, found: true}
	weights := &memCollection[entity.WeightEntry]{}
	meals := &memCollection[entity.MealEntry]{}
	water := &memCollection[entity.WaterEntry]{}
	exercises := &memCollection[entity.ExerciseEntry]{}
	habits := &memCollection[entity.HabitEntry]{}
	uc := NewSummaryUseCase(profiles, streaks, weights, meals, water, exercises, habits, fixedNow("2026-06-10"))
	return uc, weights, meals, water, exercises, habits
}

func TestExecute_RequiresProfile(t *testing.T) {
	uc, _, _, _, _, _ := newFixture(false)

	_, err := uc.Execute(context.Background())

	if !errors.Is(err, domainError.ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestExecute_SumsOnlyTodaysEntries(t *testing.T) {
	uc, _, meals, water, exercises, habits := newFixture(true)
	meals.entries = []entity.MealEntry{
		{ID: "m1", Date: "2026-06-10", Calories: 400},
		{ID: "m2", Date: "2026-06-10", Calories: 650},
		{ID: "m3", Date: "2026-06-09", Calories: 900},
	}
	water.entries = []entity.WaterEntry{
		{ID: "w1", Date: "2026-06-10", AmountML: 500},
		{ID: "w2", Date: "2026-06-10", AmountML: 250},
		{ID: "w3", Date: "2026-06-08", AmountML: 1000},
	}
	exercises.entries = []entity.ExerciseEntry{
		{ID: "e1", Date: "2026-06-10", CaloriesBurned: 320},
		{ID: "e2", Date: "2026-06-09", CaloriesBurned: 200},
	}
	habits.entries = []entity.HabitEntry{
		{ID: "water-2026-06-10", Date: "2026-06-10", HabitType: "water", Completed: true},
		{ID: "walk-2026-06-10", Date: "2026-06-10", HabitType: "walk", Completed: false},
		{ID: "water-2026-06-09", Date: "2026-06-09", HabitType: "water", Completed: true},
	}

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.CaloriesConsumed != 1050 {
		t.Errorf("CaloriesConsumed = %d, want 1050", got.CaloriesConsumed)
	}
	if got.WaterConsumedML != 750 {
		t.Errorf("WaterConsumedML = %d, want 750", got.WaterConsumedML)
	}
	if got.CaloriesBurned != 320 {
		t.Errorf("CaloriesBurned = %d, want 320", got.CaloriesBurned)
	}
	if got.HabitsCompletedToday != 1 {
		t.Errorf("HabitsCompletedToday = %d, want 1", got.HabitsCompletedToday)
	}
	if got.HabitsTotal != len(entity.DailyHabits) {
		t.Errorf("HabitsTotal = %d, want %d", got.HabitsTotal, len(entity.DailyHabits))
	}
	if got.StreakCount != 4 {
		t.Errorf("StreakCount = %d, want 4", got.StreakCount)
	}
}

func TestExecute_LatestWeighInOverridesProfileWeight(t *testing.T) {
	uc, weights, _, _, _, _ := newFixture(true)
	weights.entries = []entity.WeightEntry{
		{ID: "w1", Date: "2026-06-01", WeightLbs: 179},
		{ID: "w2", Date: "2026-06-08", WeightLbs: 176.5},
		{ID: "w3", Date: "2026-06-05", WeightLbs: 178},
	}

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.CurrentWeightLbs != 176.5 {
		t.Errorf("CurrentWeightLbs = %v, want latest weigh-in 176.5", got.CurrentWeightLbs)
	}
	if got.WeightToGoLbs != 16.5 {
		t.Errorf("WeightToGoLbs = %v, want 16.5", got.WeightToGoLbs)
	}
}

func TestExecute_WeightToGoClampsAtZero(t *testing.T) {
	uc, weights, _, _, _, _ := newFixture(true)
	weights.entries = []entity.WeightEntry{
		{ID: "w1", Date: "2026-06-09", WeightLbs: 158},
	}

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.WeightToGoLbs != 0 {
		t.Errorf("WeightToGoLbs = %v, want 0 once the target is reached", got.WeightToGoLbs)
	}
}

func TestExecute_NoEntriesUsesProfileDefaults(t *testing.T) {
	uc, _, _, _, _, _ := newFixture(true)

	got, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.CurrentWeightLbs != 180 {
		t.Errorf("CurrentWeightLbs = %v, want onboarding weight 180", got.CurrentWeightLbs)
	}
	if got.WeightToGoLbs != 20 {
		t.Errorf("WeightToGoLbs = %v, want 20", got.WeightToGoLbs)
	}
	if got.DailyCalorieGoal != 1800 || got.DailyWaterGoalL != 2.66 {
		t.Errorf("goals = %d kcal / %v L, want 1800 / 2.66", got.DailyCalorieGoal, got.DailyWaterGoalL)
	}
}
