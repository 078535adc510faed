package onboarding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
)

type memDocument[T any] struct {
	doc   T
	found bool
	saves int
}

func (m *memDocument[T]) Load(context.Context) (T, bool, error) { return m.doc, m.found, nil }
func (m *memDocument[T]) Save(_ context.Context, doc T) error {
	m.doc = doc
	m.found = true
	m.saves++
	return nil
}

func fixedNow(date string) func() time.Time {
	parsed, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return parsed }
}

func validInput() CompleteOnboardingInput {
	return CompleteOnboardingInput{
		Name:             "Sam",
		CurrentWeightLbs: 180,
		TargetWeightLbs:  160,
		HeightInches:     68,
		Age:              35,
		Gender:           entity.GenderMale,
		ActivityLevel:    entity.ActivityModerate,
	}
}

func TestComplete_DerivesGoalsAndFlipsFlag(t *testing.T) {
	profiles := &memDocument[entity.UserProfile]{}
	flag := &memDocument[bool]{}
	uc := NewCompleteOnboardingUseCase(profiles, flag, fixedNow("2026-02-01"))

	output, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 180 lbs / 68 in / 35 yo male at moderate activity: TDEE 2675, minus
	// the 500 kcal/day deficit for one pound per week.
	if output.Profile.DailyCalorieGoal != 2175 {
		t.Errorf("DailyCalorieGoal = %d, want 2175", output.Profile.DailyCalorieGoal)
	}
	if output.Profile.DailyWaterGoalL != 2.66 {
		t.Errorf("DailyWaterGoalL = %v, want 2.66", output.Profile.DailyWaterGoalL)
	}
	if output.Profile.StartDate != "2026-02-01" {
		t.Errorf("StartDate = %q, want 2026-02-01", output.Profile.StartDate)
	}
	if !flag.found || !flag.doc {
		t.Error("onboarding flag was not set")
	}
	if profiles.doc.Name != "Sam" {
		t.Errorf("saved profile name = %q, want Sam", profiles.doc.Name)
	}
}

func TestComplete_RejectsTargetAtOrAboveCurrent(t *testing.T) {
	for _, target := range []float64{180, 200} {
		input := validInput()
		input.TargetWeightLbs = target

		profiles := &memDocument[entity.UserProfile]{}
		flag := &memDocument[bool]{}
		uc := NewCompleteOnboardingUseCase(profiles, flag, fixedNow("2026-02-01"))

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrTargetNotBelowCurrent) {
			t.Errorf("target %v: err = %v, want ErrTargetNotBelowCurrent", target, err)
		}
		if profiles.saves != 0 || flag.saves != 0 {
			t.Errorf("target %v: rejected onboarding must not persist anything", target)
		}
	}
}

func TestComplete_RejectsUnrecognizedEnums(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CompleteOnboardingInput)
		wantErr error
	}{
		{"gender", func(i *CompleteOnboardingInput) { i.Gender = "robot" }, domainerror.ErrInvalidGender},
		{"activity level", func(i *CompleteOnboardingInput) { i.ActivityLevel = "heroic" }, domainerror.ErrInvalidActivityLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			uc := NewCompleteOnboardingUseCase(&memDocument[entity.UserProfile]{}, &memDocument[bool]{}, fixedNow("2026-02-01"))
			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestComplete_RejectsMissingFields(t *testing.T) {
	input := validInput()
	input.Name = ""

	uc := NewCompleteOnboardingUseCase(&memDocument[entity.UserProfile]{}, &memDocument[bool]{}, fixedNow("2026-02-01"))
	_, err := uc.Execute(context.Background(), input)

	var profileErr *domainerror.ProfileError
	if !errors.As(err, &profileErr) || profileErr.Code != domainerror.ErrCodeMissingProfileFields {
		t.Fatalf("err = %v, want code %s", err, domainerror.ErrCodeMissingProfileFields)
	}
}

func TestSaveProfile_OverwritesWithoutRevalidation(t *testing.T) {
	profiles := &memDocument[entity.UserProfile]{}
	uc := NewSaveProfileUseCase(profiles)

	// Later saves are wholesale replacements; the onboarding weight
	// invariant is deliberately not re-checked here.
	profile := entity.UserProfile{Name: "Sam", CurrentWeightLbs: 150, TargetWeightLbs: 170}
	if err := uc.Execute(context.Background(), profile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profiles.doc.TargetWeightLbs != 170 {
		t.Errorf("saved target = %v, want 170", profiles.doc.TargetWeightLbs)
	}
}

func TestGetProfile_NotFoundBeforeOnboarding(t *testing.T) {
	uc := NewGetProfileUseCase(&memDocument[entity.UserProfile]{})

	_, err := uc.Execute(context.Background())
	if !errors.Is(err, domainerror.ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestGetStatus_DefaultsFalse(t *testing.T) {
	uc := NewGetStatusUseCase(&memDocument[bool]{})
	if uc.Execute(context.Background()) {
		t.Error("status should default to false before onboarding")
	}
}
