package adapter

import (
	"context"

	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
)

// CoachWeightPoint is a recent weigh-in passed to the coach for context.
type CoachWeightPoint struct {
	WeightLbs float64
	Date      string
}

// CoachMeal is a logged meal passed to the coach for context.
type CoachMeal struct {
	Name     string
	Calories int
	Protein  float64
	Carbs    float64
	Fats     float64
	MealType string
}

// CoachService is the text-in/text-out boundary to the hosted language
// model. Implementations return errors; absorption into fallback strings
// happens in the coach use cases, so tests can distinguish a degraded answer
// from a generated one.
type CoachService interface {
	// DailyInsight generates a short personalized insight from the profile,
	// recent weigh-ins, and today's meals.
	DailyInsight(ctx context.Context, profile *entity.UserProfile, recentWeights []CoachWeightPoint, todaysMeals []CoachMeal) (string, error)

	// Motivation generates a brief motivational message, optionally colored
	// by free-text context.
	Motivation(ctx context.Context, profile *entity.UserProfile, contextText string) (string, error)

	// AnswerQuestion answers a free-text weight loss question, optionally
	// personalized with the profile.
	AnswerQuestion(ctx context.Context, question string, profile *entity.UserProfile) (string, error)

	// MealSuggestions suggests meals that fit a calorie target.
	MealSuggestions(ctx context.Context, calorieTarget int, mealType string, dietaryPreferences []string) (string, error)

	// IsAvailable reports whether the service is configured.
	IsAvailable() bool
}
