// Package onboarding contains onboarding and profile use cases.
package onboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/domain/calc"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
)

// CompleteOnboardingInput represents the onboarding wizard's final submission.
type CompleteOnboardingInput struct {
	Name             string
	CurrentWeightLbs float64
	TargetWeightLbs  float64
	HeightInches     float64
	Age              int
	Gender           entity.Gender
	ActivityLevel    entity.ActivityLevel
}

// CompleteOnboardingOutput represents the output of onboarding completion.
type CompleteOnboardingOutput struct {
	Profile *entity.UserProfile
}

// CompleteOnboardingUseCase computes the derived daily goals from the body
// metrics, saves the profile wholesale, and flips the onboarding flag.
type CompleteOnboardingUseCase struct {
	profiles   adapter.Document[entity.UserProfile]
	onboarding adapter.Document[bool]
	now        func() time.Time
}

// NewCompleteOnboardingUseCase creates a new CompleteOnboardingUseCase instance.
func NewCompleteOnboardingUseCase(
	profiles adapter.Document[entity.UserProfile],
	onboarding adapter.Document[bool],
	now func() time.Time,
) *CompleteOnboardingUseCase {
	if now == nil {
		now = time.Now
	}
	return &CompleteOnboardingUseCase{
		profiles:   profiles,
		onboarding: onboarding,
		now:        now,
	}
}

// Execute performs the onboarding completion.
func (uc *CompleteOnboardingUseCase) Execute(ctx context.Context, input CompleteOnboardingInput) (*CompleteOnboardingOutput, error) {
	if input.Name == "" || input.CurrentWeightLbs <= 0 || input.TargetWeightLbs <= 0 ||
		input.HeightInches <= 0 || input.Age <= 0 {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeMissingProfileFields,
			"name, weights, height, and age are required",
			nil,
		)
	}
	if !input.Gender.IsValid() {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidGender,
			fmt.Sprintf("gender %q is not recognized", input.Gender),
			domainerror.ErrInvalidGender,
		)
	}
	if !input.ActivityLevel.IsValid() {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidActivityLevel,
			fmt.Sprintf("activity level %q is not recognized", input.ActivityLevel),
			domainerror.ErrInvalidActivityLevel,
		)
	}
	// The current-above-target invariant is enforced here, at onboarding
	// input time only; later profile saves are not re-validated against it.
	if input.CurrentWeightLbs <= input.TargetWeightLbs {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeTargetNotBelowCurrent,
			"target weight must be below current weight",
			domainerror.ErrTargetNotBelowCurrent,
		)
	}

	bmr := calc.BMR(input.CurrentWeightLbs, input.HeightInches, input.Age, input.Gender)
	tdee := calc.TDEE(bmr, input.ActivityLevel)

	profile := &entity.UserProfile{
		Name:             input.Name,
		CurrentWeightLbs: input.CurrentWeightLbs,
		TargetWeightLbs:  input.TargetWeightLbs,
		HeightInches:     input.HeightInches,
		Age:              input.Age,
		Gender:           input.Gender,
		ActivityLevel:    input.ActivityLevel,
		StartDate:        uc.now().UTC().Format("2006-01-02"),
		DailyCalorieGoal: calc.DailyCalorieGoal(float64(tdee), 1),
		DailyWaterGoalL:  calc.WaterGoalLiters(input.CurrentWeightLbs),
	}

	if err := uc.profiles.Save(ctx, *profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	if err := uc.onboarding.Save(ctx, true); err != nil {
		return nil, fmt.Errorf("failed to set onboarding flag: %w", err)
	}

	return &CompleteOnboardingOutput{Profile: profile}, nil
}
