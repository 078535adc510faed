package coach

import (
	"context"
	"log/slog"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
)

// MealSuggestionsUseCase asks the coach for meal ideas that fit a calorie
// target. When the caller omits the target, the profile's daily goal split
// across three meals is used.
type MealSuggestionsUseCase struct {
	coachService adapter.CoachService
	profiles     adapter.Document[entity.UserProfile]
}

// MealSuggestionsInput carries the request parameters, all optional.
type MealSuggestionsInput struct {
	CalorieTarget      int
	MealType           string
	DietaryPreferences []string
}

// NewMealSuggestionsUseCase creates a new MealSuggestionsUseCase instance.
func NewMealSuggestionsUseCase(coachService adapter.CoachService, profiles adapter.Document[entity.UserProfile]) *MealSuggestionsUseCase {
	return &MealSuggestionsUseCase{coachService: coachService, profiles: profiles}
}

// Execute generates the suggestions, falling back to a fixed message on failure.
func (uc *MealSuggestionsUseCase) Execute(ctx context.Context, input MealSuggestionsInput) *Output {
	if !uc.coachService.IsAvailable() {
		return &Output{Text: fallbackMealSuggestions, Degraded: true}
	}

	target := input.CalorieTarget
	if target <= 0 {
		if profile, found, err := uc.profiles.Load(ctx); err == nil && found && profile.DailyCalorieGoal > 0 {
			target = profile.DailyCalorieGoal / 3
		}
	}

	text, err := uc.coachService.MealSuggestions(ctx, target, input.MealType, input.DietaryPreferences)
	if err != nil {
		slog.Error("coach meal suggestions failed, serving fallback", "error", err)
		return &Output{Text: fallbackMealSuggestions, Degraded: true}
	}
	return &Output{Text: text}
}
