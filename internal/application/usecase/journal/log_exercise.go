package journal

import (
	"context"
	"fmt"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/calc"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
)

// LogExerciseUseCase logs an exercise session, estimating the burned
// calories from the MET table when the caller leaves them at zero. The
// estimate uses the profile's current weight, matching the original
// auto-calculation on the exercise form.
type LogExerciseUseCase struct {
	exercises adapter.Collection[entity.ExerciseEntry]
	profiles  adapter.Document[entity.UserProfile]
}

// NewLogExerciseUseCase creates a new LogExerciseUseCase instance.
func NewLogExerciseUseCase(
	exercises adapter.Collection[entity.ExerciseEntry],
	profiles adapter.Document[entity.UserProfile],
) *LogExerciseUseCase {
	return &LogExerciseUseCase{exercises: exercises, profiles: profiles}
}

// Execute persists the exercise entry, filling CaloriesBurned if needed.
func (uc *LogExerciseUseCase) Execute(ctx context.Context, entry entity.ExerciseEntry) (*entity.ExerciseEntry, error) {
	if entry.Intensity == "" {
		entry.Intensity = entity.IntensityMedium
	}

	if entry.CaloriesBurned == 0 && entry.Activity != "" && entry.DurationMin > 0 {
		// Without a profile there is no body weight to scale the MET value
		// by; the explicit zero is kept rather than guessing one.
		if profile, found, _ := uc.profiles.Load(ctx); found {
			entry.CaloriesBurned = calc.ExerciseCalories(
				entry.Activity,
				entry.DurationMin,
				entry.Intensity,
				profile.CurrentWeightLbs,
			)
		}
	}

	if err := uc.exercises.Upsert(ctx, entry); err != nil {
		return &entry, fmt.Errorf("failed to log exercise: %w", err)
	}
	return &entry, nil
}
