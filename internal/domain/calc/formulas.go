// Package calc contains the pure unit-conversion and physiological
// estimation formulas the tracker is built on. Every function is
// deterministic and side-effect free; invalid numeric input (NaN, negative)
// propagates through rather than being rejected.
package calc

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
)

// Unit conversion factors.
const (
	LbsToKg    = 0.453592
	InchesToCm = 2.54
	OzToLiters = 0.0295735

	// CaloriesPerLb is the approximate energy content of one pound of fat.
	CaloriesPerLb = 3500
)

// activityMultipliers maps activity levels to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var activityMultipliers = map[entity.ActivityLevel]float64{
	entity.ActivitySedentary:  1.2,
	entity.ActivityLight:      1.375,
	entity.ActivityModerate:   1.55,
	entity.ActivityActive:     1.725,
	entity.ActivityVeryActive: 1.9,
}

// BMR computes the basal metabolic rate in kcal/day using the Mifflin-St Jeor
// equation. Weight is in pounds and height in inches; both are converted to
// metric internally. Any gender other than "male" takes the female branch.
// The result is unrounded.
func BMR(weightLbs, heightInches float64, age int, gender entity.Gender) float64 {
	weightKg := weightLbs * LbsToKg
	heightCm := heightInches * InchesToCm

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == entity.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE computes total daily energy expenditure by scaling BMR with the
// activity multiplier, rounded to the nearest calorie. Unknown levels fall
// back to sedentary; levels are validated at the request boundary.
func TDEE(bmr float64, level entity.ActivityLevel) int {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[entity.ActivitySedentary]
	}
	return int(math.Round(bmr * mult))
}

// DailyCalorieGoal converts a weekly weight-loss target into a daily calorie
// budget: TDEE minus the daily deficit implied by the target (3500 kcal per
// pound). No safety floor is applied; an aggressive target produces an
// aggressive budget.
func DailyCalorieGoal(tdee float64, targetWeeklyLossLbs float64) int {
	dailyDeficit := targetWeeklyLossLbs * CaloriesPerLb / 7
	return int(math.Round(tdee - dailyDeficit))
}

// WaterGoalLiters returns the daily water goal in liters: half the body
// weight in ounces, converted to liters and rounded to 2 decimals.
func WaterGoalLiters(weightLbs float64) float64 {
	liters := decimal.NewFromFloat(weightLbs * 0.5 * OzToLiters)
	return liters.Round(2).InexactFloat64()
}
