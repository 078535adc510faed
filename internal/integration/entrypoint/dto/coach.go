package dto

// MotivationRequest carries optional free-text context for the message.
type MotivationRequest struct {
	Context string `json:"context"`
}

// CoachQuestionRequest carries the user's question.
type CoachQuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

// MealSuggestionsRequest carries the meal suggestion parameters.
type MealSuggestionsRequest struct {
	CalorieTarget      int      `json:"calorieTarget" binding:"gte=0"`
	MealType           string   `json:"mealType" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	DietaryPreferences []string `json:"dietaryPreferences"`
}

// CoachResponse is the payload for every coach operation. Degraded marks a
// fixed fallback answer served in place of a generated one.
type CoachResponse struct {
	Message  string `json:"message"`
	Degraded bool   `json:"degraded"`
}

// ActivitySuggestionsResponse lists the known activity names.
type ActivitySuggestionsResponse struct {
	Activities []string `json:"activities"`
}
