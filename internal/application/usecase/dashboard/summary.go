// Package dashboard aggregates today's activity into a single summary.
package dashboard

import (
	"context"
	"time"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainError "github.com/Huskyauto/Weightlossapp/internal/domain/error"
)

// Summary is the aggregated view the home screen renders.
type Summary struct {
	Date                 string  `json:"date"`
	CaloriesConsumed     int     `json:"caloriesConsumed"`
	CaloriesBurned       int     `json:"caloriesBurned"`
	DailyCalorieGoal     int     `json:"dailyCalorieGoal"`
	WaterConsumedML      int     `json:"waterConsumed"`
	DailyWaterGoalL      float64 `json:"dailyWaterGoal"`
	CurrentWeightLbs     float64 `json:"currentWeight"`
	TargetWeightLbs      float64 `json:"targetWeight"`
	WeightToGoLbs        float64 `json:"weightToGo"`
	HabitsCompletedToday int     `json:"habitsCompleted"`
	HabitsTotal          int     `json:"habitsTotal"`
	StreakCount          int     `json:"streak"`
}

// SummaryUseCase builds the dashboard summary for today.
type SummaryUseCase struct {
	profiles  adapter.Document[entity.UserProfile]
	streaks   adapter.Document[entity.Streak]
	weights   adapter.Collection[entity.WeightEntry]
	meals     adapter.Collection[entity.MealEntry]
	water     adapter.Collection[entity.WaterEntry]
	exercises adapter.Collection[entity.ExerciseEntry]
	habits    adapter.Collection[entity.HabitEntry]
	now       func() time.Time
}

// NewSummaryUseCase creates a new SummaryUseCase instance.
func NewSummaryUseCase(
	profiles adapter.Document[entity.UserProfile],
	streaks adapter.Document[entity.Streak],
	weights adapter.Collection[entity.WeightEntry],
	meals adapter.Collection[entity.MealEntry],
	water adapter.Collection[entity.WaterEntry],
	exercises adapter.Collection[entity.ExerciseEntry],
	habits adapter.Collection[entity.HabitEntry],
	now func() time.Time,
) *SummaryUseCase {
	if now == nil {
		now = time.Now
	}
	return &SummaryUseCase{
		profiles:  profiles,
		streaks:   streaks,
		weights:   weights,
		meals:     meals,
		water:     water,
		exercises: exercises,
		habits:    habits,
		now:       now,
	}
}

// Execute aggregates today's entries. The profile must exist; collection
// reads degrade to empty and simply contribute zero to the totals.
func (uc *SummaryUseCase) Execute(ctx context.Context) (*Summary, error) {
	profile, found, err := uc.profiles.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainError.NewProfileError(domainError.ErrCodeProfileNotFound, "profile not found", domainError.ErrProfileNotFound)
	}

	today := uc.now().UTC().Format("2006-01-02")

	summary := &Summary{
		Date:             today,
		DailyCalorieGoal: profile.DailyCalorieGoal,
		DailyWaterGoalL:  profile.DailyWaterGoalL,
		TargetWeightLbs:  profile.TargetWeightLbs,
		HabitsTotal:      len(entity.DailyHabits),
	}

	meals, _ := uc.meals.List(ctx)
	for _, m := range meals {
		if m.Date == today {
			summary.CaloriesConsumed += m.Calories
		}
	}

	exercises, _ := uc.exercises.List(ctx)
	for _, e := range exercises {
		if e.Date == today {
			summary.CaloriesBurned += e.CaloriesBurned
		}
	}

	water, _ := uc.water.List(ctx)
	for _, w := range water {
		if w.Date == today {
			summary.WaterConsumedML += w.AmountML
		}
	}

	habits, _ := uc.habits.List(ctx)
	for _, h := range habits {
		if h.Date == today && h.Completed {
			summary.HabitsCompletedToday++
		}
	}

	// The latest weigh-in wins over the onboarding weight; entries append in
	// log order, so scan for the most recent date.
	summary.CurrentWeightLbs = profile.CurrentWeightLbs
	weights, _ := uc.weights.List(ctx)
	latestDate := ""
	for _, w := range weights {
		if w.Date >= latestDate {
			latestDate = w.Date
			summary.CurrentWeightLbs = w.WeightLbs
		}
	}
	summary.WeightToGoLbs = summary.CurrentWeightLbs - profile.TargetWeightLbs
	if summary.WeightToGoLbs < 0 {
		summary.WeightToGoLbs = 0
	}

	if streak, found, err := uc.streaks.Load(ctx); err == nil && found {
		summary.StreakCount = streak.Count
	}

	return summary, nil
}
