package calc

import (
	"math"
	"testing"

	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
)

// TestBMR_GenderOffset verifies that the male branch exceeds the female
// branch by exactly 166 kcal for identical inputs: (-5*age+5) - (-5*age-161).
func TestBMR_GenderOffset(t *testing.T) {
	cases := []struct {
		weight, height float64
		age            int
	}{
		{180, 70, 30},
		{150, 64, 45},
		{250.5, 73.2, 22},
	}
	for _, tc := range cases {
		male := BMR(tc.weight, tc.height, tc.age, entity.GenderMale)
		female := BMR(tc.weight, tc.height, tc.age, entity.GenderFemale)
		if diff := male - female; math.Abs(diff-166) > 1e-9 {
			t.Errorf("BMR(%v, %v, %d): male-female = %v, want 166", tc.weight, tc.height, tc.age, diff)
		}
	}
}

// TestBMR_OtherUsesFemaleBranch verifies the two-branch behavior: anything
// that is not "male" gets the female constant.
func TestBMR_OtherUsesFemaleBranch(t *testing.T) {
	other := BMR(180, 70, 30, entity.GenderOther)
	female := BMR(180, 70, 30, entity.GenderFemale)
	if other != female {
		t.Errorf("BMR for gender=other = %v, want female branch %v", other, female)
	}
}

// TestBMR_KnownValue checks the male formula against a hand-computed value:
// 180 lbs = 81.64656 kg, 70 in = 177.8 cm,
// 10*81.64656 + 6.25*177.8 - 5*30 + 5 = 1782.7156.
func TestBMR_KnownValue(t *testing.T) {
	got := BMR(180, 70, 30, entity.GenderMale)
	want := 10*180*LbsToKg + 6.25*70*InchesToCm - 5*30 + 5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("BMR = %v, want %v", got, want)
	}
}

// TestTDEE_Monotonic verifies TDEE is strictly increasing across the
// activity-level ordering for a fixed positive BMR.
func TestTDEE_Monotonic(t *testing.T) {
	levels := []entity.ActivityLevel{
		entity.ActivitySedentary,
		entity.ActivityLight,
		entity.ActivityModerate,
		entity.ActivityActive,
		entity.ActivityVeryActive,
	}
	const bmr = 1650.0
	prev := 0
	for _, level := range levels {
		got := TDEE(bmr, level)
		if got <= prev {
			t.Errorf("TDEE(%v, %s) = %d, not greater than previous %d", bmr, level, got, prev)
		}
		prev = got
	}
}

func TestTDEE_Multipliers(t *testing.T) {
	cases := []struct {
		level entity.ActivityLevel
		want  int
	}{
		{entity.ActivitySedentary, 1200},
		{entity.ActivityLight, 1375},
		{entity.ActivityModerate, 1550},
		{entity.ActivityActive, 1725},
		{entity.ActivityVeryActive, 1900},
	}
	for _, tc := range cases {
		if got := TDEE(1000, tc.level); got != tc.want {
			t.Errorf("TDEE(1000, %s) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

// TestDailyCalorieGoal_OnePoundPerWeek verifies the 500 kcal/day deficit for
// a 1 lb/week target (3500/7 = 500).
func TestDailyCalorieGoal_OnePoundPerWeek(t *testing.T) {
	for _, tdee := range []float64{1800, 2200, 2750.4} {
		got := DailyCalorieGoal(tdee, 1)
		want := int(math.Round(tdee - 500))
		if got != want {
			t.Errorf("DailyCalorieGoal(%v, 1) = %d, want %d", tdee, got, want)
		}
	}
}

// TestDailyCalorieGoal_NoFloor documents that an aggressive weekly target is
// not clamped: the goal can drop below any safe minimum, or below zero.
func TestDailyCalorieGoal_NoFloor(t *testing.T) {
	got := DailyCalorieGoal(2000, 5)
	if got != -500 {
		t.Errorf("DailyCalorieGoal(2000, 5) = %d, want -500", got)
	}
}

func TestWaterGoalLiters(t *testing.T) {
	cases := []struct {
		weight float64
		want   float64
	}{
		{180, 2.66}, // 180*0.5*0.0295735 = 2.661615
		{150, 2.22}, // 2.2180125
		{200, 2.96}, // 2.95735
	}
	for _, tc := range cases {
		if got := WaterGoalLiters(tc.weight); got != tc.want {
			t.Errorf("WaterGoalLiters(%v) = %v, want %v", tc.weight, got, tc.want)
		}
	}
}
