// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainError "github.com/Huskyauto/Weightlossapp/internal/domain/error"
)

// GeminiCoachService implements the CoachService using Google Gemini.
type GeminiCoachService struct {
	apiKey    string
	modelName string
	timeout   time.Duration
}

// NewGeminiCoachService creates a new Gemini coach service instance.
func NewGeminiCoachService(apiKey, modelName string, timeout time.Duration) *GeminiCoachService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiCoachService{
		apiKey:    apiKey,
		modelName: modelName,
		timeout:   timeout,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiCoachService) IsAvailable() bool {
	return s.apiKey != ""
}

// DailyInsight generates a personalized daily insight from the profile,
// recent weigh-ins, and today's meals.
func (s *GeminiCoachService) DailyInsight(ctx context.Context, profile *entity.UserProfile, recentWeights []adapter.CoachWeightPoint, todaysMeals []adapter.CoachMeal) (string, error) {
	weightLost := 0.0
	if len(recentWeights) > 0 {
		weightLost = profile.CurrentWeightLbs - recentWeights[len(recentWeights)-1].WeightLbs
	}

	totalCaloriesToday := 0
	for _, meal := range todaysMeals {
		totalCaloriesToday += meal.Calories
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a supportive weight loss coach. Generate a personalized daily insight for %s.\n\n", profile.Name)
	sb.WriteString("Profile:\n")
	fmt.Fprintf(&sb, "- Current weight: %g lbs\n", profile.CurrentWeightLbs)
	fmt.Fprintf(&sb, "- Target weight: %g lbs\n", profile.TargetWeightLbs)
	fmt.Fprintf(&sb, "- Goal: Lose %g lbs\n", profile.CurrentWeightLbs-profile.TargetWeightLbs)
	fmt.Fprintf(&sb, "- Height: %g inches\n", profile.HeightInches)
	fmt.Fprintf(&sb, "- Age: %d\n", profile.Age)
	fmt.Fprintf(&sb, "- Gender: %s\n", profile.Gender)
	fmt.Fprintf(&sb, "- Activity level: %s\n", profile.ActivityLevel)
	fmt.Fprintf(&sb, "- Daily calorie budget: %d\n\n", profile.DailyCalorieGoal)
	sb.WriteString("Progress:\n")
	fmt.Fprintf(&sb, "- Weight lost so far: %.1f lbs\n", weightLost)
	fmt.Fprintf(&sb, "- Calories consumed today: %d / %d\n", totalCaloriesToday, profile.DailyCalorieGoal)
	fmt.Fprintf(&sb, "- Meals logged today: %d\n\n", len(todaysMeals))
	sb.WriteString(`Generate a brief (2-3 sentences), encouraging, and actionable daily insight. Focus on:
1. Acknowledging their progress or current status
2. Providing one specific, actionable tip for today
3. Keeping a positive, motivational tone

Do not use markdown formatting. Return plain text only.`)

	return s.generate(ctx, generation{
		systemInstruction: "You are an encouraging weight loss coach who provides brief, actionable, and positive daily insights.",
		prompt:            sb.String(),
		temperature:       0.7,
		maxOutputTokens:   150,
	})
}

// Motivation generates a brief motivational message.
func (s *GeminiCoachService) Motivation(ctx context.Context, profile *entity.UserProfile, contextText string) (string, error) {
	var prompt string
	if profile != nil {
		prompt = fmt.Sprintf("Generate a brief motivational message for %s who is working to lose %g lbs.",
			profile.Name, profile.CurrentWeightLbs-profile.TargetWeightLbs)
	} else {
		prompt = "Generate a brief motivational message for someone working to lose weight."
	}
	if contextText != "" {
		prompt += " Context: " + contextText
	}
	prompt += " Keep it under 2 sentences, positive and encouraging."

	return s.generate(ctx, generation{
		systemInstruction: "You are an encouraging weight loss coach.",
		prompt:            prompt,
		temperature:       0.8,
		maxOutputTokens:   100,
	})
}

// AnswerQuestion answers a free-text weight loss question.
func (s *GeminiCoachService) AnswerQuestion(ctx context.Context, question string, profile *entity.UserProfile) (string, error) {
	profileContext := ""
	if profile != nil {
		profileContext = fmt.Sprintf("User profile: %d year old %s, %g inches tall, current weight %g lbs, target %g lbs, %s activity level.",
			profile.Age, profile.Gender, profile.HeightInches, profile.CurrentWeightLbs, profile.TargetWeightLbs, profile.ActivityLevel)
	}

	prompt := fmt.Sprintf("%s\n\nQuestion: %s\n\nProvide a helpful, evidence-based answer about weight loss. Keep it concise (3-4 sentences) and actionable.",
		profileContext, question)

	return s.generate(ctx, generation{
		systemInstruction: "You are a knowledgeable weight loss and nutrition expert. Provide evidence-based, safe, and practical advice. Always emphasize sustainable healthy habits over quick fixes.",
		prompt:            prompt,
		temperature:       0.6,
		maxOutputTokens:   250,
	})
}

// MealSuggestions suggests meals that fit a calorie target.
func (s *GeminiCoachService) MealSuggestions(ctx context.Context, calorieTarget int, mealType string, dietaryPreferences []string) (string, error) {
	if mealType == "" {
		mealType = "meal"
	}
	preferencesText := ""
	if len(dietaryPreferences) > 0 {
		preferencesText = "Dietary preferences: " + strings.Join(dietaryPreferences, ", ") + "."
	}

	prompt := fmt.Sprintf("Suggest 2-3 healthy %s options that fit within %d calories. %s For each suggestion, include the meal name and approximate calories. Keep it brief and practical.",
		mealType, calorieTarget, preferencesText)

	return s.generate(ctx, generation{
		systemInstruction: "You are a nutrition expert who suggests healthy, practical meal ideas.",
		prompt:            prompt,
		temperature:       0.7,
		maxOutputTokens:   200,
	})
}

// generation bundles the per-operation model settings.
type generation struct {
	systemInstruction string
	prompt            string
	temperature       float32
	maxOutputTokens   int32
}

// generate runs one prompt through Gemini and extracts the text answer.
func (s *GeminiCoachService) generate(ctx context.Context, g generation) (string, error) {
	if !s.IsAvailable() {
		return "", domainError.ErrCoachUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(g.temperature)
	model.SetMaxOutputTokens(g.maxOutputTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(g.systemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(g.prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domainError.ErrCoachEmptyResponse
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	textContent = strings.TrimSpace(textContent)
	if textContent == "" {
		return "", domainError.ErrCoachEmptyResponse
	}

	return textContent, nil
}
