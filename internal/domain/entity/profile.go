// Package entity defines the core business entities for the domain layer.
package entity

// Gender is the gender selected during onboarding.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid reports whether g is one of the recognized gender values.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// ActivityLevel describes how active the user is on a typical day.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// IsValid reports whether a is one of the recognized activity levels.
func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

// UserProfile is the single user's profile, created at onboarding completion.
// It is always saved wholesale; there are no partial updates.
type UserProfile struct {
	Name             string        `json:"name"`
	CurrentWeightLbs float64       `json:"currentWeight"`
	TargetWeightLbs  float64       `json:"targetWeight"`
	HeightInches     float64       `json:"height"`
	Age              int           `json:"age"`
	Gender           Gender        `json:"gender"`
	ActivityLevel    ActivityLevel `json:"activityLevel"`
	StartDate        string        `json:"startDate"`
	DailyCalorieGoal int           `json:"dailyCalorieGoal"`
	DailyWaterGoalL  float64       `json:"dailyWaterGoal"`
}
