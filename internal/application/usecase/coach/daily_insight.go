// Package coach contains the use cases that front the hosted language model.
// Every Execute returns a usable Output even when the model is unreachable:
// the fixed fallback text is substituted and Degraded is set, so callers
// never surface a transport failure to the user.
package coach

import (
	"context"
	"log/slog"
	"time"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
)

// Output is the result of any coach use case.
type Output struct {
	Text     string
	Degraded bool
}

const (
	fallbackInsight         = "Stay focused on your goals today! Every healthy choice counts."
	fallbackMotivation      = "You've got this! Keep pushing forward."
	fallbackAnswer          = "I'm having trouble answering right now. Please try again or consult with a healthcare professional."
	fallbackMealSuggestions = "Consider a balanced meal with lean protein, vegetables, and whole grains."

	recentWeightWindow = 7
)

// DailyInsightUseCase assembles the user's context from storage and asks the
// coach for a personalized daily insight.
type DailyInsightUseCase struct {
	coachService adapter.CoachService
	profiles     adapter.Document[entity.UserProfile]
	weights      adapter.Collection[entity.WeightEntry]
	meals        adapter.Collection[entity.MealEntry]
	now          func() time.Time
}

// NewDailyInsightUseCase creates a new DailyInsightUseCase instance.
func NewDailyInsightUseCase(
	coachService adapter.CoachService,
	profiles adapter.Document[entity.UserProfile],
	weights adapter.Collection[entity.WeightEntry],
	meals adapter.Collection[entity.MealEntry],
	now func() time.Time,
) *DailyInsightUseCase {
	if now == nil {
		now = time.Now
	}
	return &DailyInsightUseCase{
		coachService: coachService,
		profiles:     profiles,
		weights:      weights,
		meals:        meals,
		now:          now,
	}
}

// Execute generates the insight, falling back to a fixed message on any
// failure along the way.
func (uc *DailyInsightUseCase) Execute(ctx context.Context) *Output {
	if !uc.coachService.IsAvailable() {
		return &Output{Text: fallbackInsight, Degraded: true}
	}

	profile, found, err := uc.profiles.Load(ctx)
	if err != nil || !found {
		return &Output{Text: fallbackInsight, Degraded: true}
	}

	today := uc.now().UTC().Format("2006-01-02")

	allWeights, _ := uc.weights.List(ctx)
	recent := allWeights
	if len(recent) > recentWeightWindow {
		recent = recent[len(recent)-recentWeightWindow:]
	}
	weightPoints := make([]adapter.CoachWeightPoint, 0, len(recent))
	for _, w := range recent {
		weightPoints = append(weightPoints, adapter.CoachWeightPoint{
			WeightLbs: w.WeightLbs,
			Date:      w.Date,
		})
	}

	allMeals, _ := uc.meals.List(ctx)
	todaysMeals := make([]adapter.CoachMeal, 0)
	for _, m := range allMeals {
		if m.Date != today {
			continue
		}
		todaysMeals = append(todaysMeals, adapter.CoachMeal{
			Name:     m.Name,
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fats:     m.Fats,
			MealType: string(m.MealType),
		})
	}

	text, err := uc.coachService.DailyInsight(ctx, &profile, weightPoints, todaysMeals)
	if err != nil {
		slog.Error("coach daily insight failed, serving fallback", "error", err)
		return &Output{Text: fallbackInsight, Degraded: true}
	}
	return &Output{Text: text}
}
