package dto

import "github.com/Huskyauto/Weightlossapp/internal/domain/entity"

// CompleteOnboardingRequest represents the onboarding wizard submission.
type CompleteOnboardingRequest struct {
	Name             string  `json:"name" binding:"required"`
	CurrentWeightLbs float64 `json:"currentWeight" binding:"required,gt=0"`
	TargetWeightLbs  float64 `json:"targetWeight" binding:"required,gt=0"`
	HeightInches     float64 `json:"height" binding:"required,gt=0"`
	Age              int     `json:"age" binding:"required,gt=0"`
	Gender           string  `json:"gender" binding:"required,oneof=male female other"`
	ActivityLevel    string  `json:"activityLevel" binding:"required,oneof=sedentary light moderate active very_active"`
}

// SaveProfileRequest represents a wholesale profile replacement.
type SaveProfileRequest struct {
	Name             string  `json:"name" binding:"required"`
	CurrentWeightLbs float64 `json:"currentWeight" binding:"required,gt=0"`
	TargetWeightLbs  float64 `json:"targetWeight" binding:"required,gt=0"`
	HeightInches     float64 `json:"height" binding:"required,gt=0"`
	Age              int     `json:"age" binding:"required,gt=0"`
	Gender           string  `json:"gender" binding:"required,oneof=male female other"`
	ActivityLevel    string  `json:"activityLevel" binding:"required,oneof=sedentary light moderate active very_active"`
	StartDate        string  `json:"startDate" binding:"required"`
	DailyCalorieGoal int     `json:"dailyCalorieGoal" binding:"required,gt=0"`
	DailyWaterGoalL  float64 `json:"dailyWaterGoal" binding:"required,gt=0"`
}

// ToUserProfile converts the request into the domain profile.
func (r *SaveProfileRequest) ToUserProfile() entity.UserProfile {
	return entity.UserProfile{
		Name:             r.Name,
		CurrentWeightLbs: r.CurrentWeightLbs,
		TargetWeightLbs:  r.TargetWeightLbs,
		HeightInches:     r.HeightInches,
		Age:              r.Age,
		Gender:           entity.Gender(r.Gender),
		ActivityLevel:    entity.ActivityLevel(r.ActivityLevel),
		StartDate:        r.StartDate,
		DailyCalorieGoal: r.DailyCalorieGoal,
		DailyWaterGoalL:  r.DailyWaterGoalL,
	}
}

// OnboardingStatusResponse reports whether onboarding has been completed.
type OnboardingStatusResponse struct {
	OnboardingComplete bool `json:"onboardingComplete"`
}
