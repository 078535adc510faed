package calc

import (
	"math"
	"strings"

	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
)

// METSet holds the MET (metabolic equivalent of task) coefficients for one
// activity at each intensity.
type METSet struct {
	Low    float64
	Medium float64
	High   float64
}

// At returns the coefficient for the given intensity.
func (m METSet) At(intensity entity.Intensity) float64 {
	switch intensity {
	case entity.IntensityLow:
		return m.Low
	case entity.IntensityHigh:
		return m.High
	default:
		return m.Medium
	}
}

type metEntry struct {
	name string
	met  METSet
}

// metTable lists MET values for common exercises, from the Compendium of
// Physical Activities. Declaration order matters: the substring fallback in
// lookupMET picks the first matching entry.
var metTable = []metEntry{
	// Cardio
	{"walking", METSet{3.5, 4.5, 5.5}},
	{"running", METSet{7.0, 9.0, 12.0}},
	{"jogging", METSet{6.0, 7.0, 8.0}},
	{"cycling", METSet{4.0, 8.0, 12.0}},
	{"swimming", METSet{6.0, 8.0, 11.0}},
	{"hiking", METSet{5.0, 6.5, 8.0}},

	// Sports
	{"basketball", METSet{6.0, 8.0, 10.0}},
	{"soccer", METSet{7.0, 9.0, 11.0}},
	{"tennis", METSet{5.0, 7.0, 9.0}},
	{"volleyball", METSet{4.0, 6.0, 8.0}},
	{"golf", METSet{3.5, 4.5, 5.5}},

	// Gym & fitness
	{"weight training", METSet{3.0, 5.0, 6.0}},
	{"strength training", METSet{3.0, 5.0, 6.0}},
	{"yoga", METSet{2.5, 3.0, 4.0}},
	{"pilates", METSet{3.0, 4.0, 5.0}},
	{"aerobics", METSet{5.0, 7.0, 9.0}},
	{"zumba", METSet{6.0, 8.0, 10.0}},
	{"crossfit", METSet{8.0, 10.0, 12.0}},
	{"hiit", METSet{8.0, 10.0, 12.0}},

	// Dance
	{"dancing", METSet{4.5, 6.0, 7.5}},
	{"ballet", METSet{5.0, 6.5, 8.0}},

	// Other
	{"rowing", METSet{4.0, 7.0, 10.0}},
	{"elliptical", METSet{5.0, 7.0, 9.0}},
	{"stair climbing", METSet{6.0, 8.0, 10.0}},
	{"jump rope", METSet{8.0, 10.0, 12.0}},
	{"boxing", METSet{6.0, 9.0, 12.0}},
	{"martial arts", METSet{6.0, 8.0, 10.0}},
}

// defaultMET covers activities not present in the table.
var defaultMET = METSet{3.0, 5.0, 7.0}

// lookupMET resolves an activity name to its MET set. Matching is
// case-insensitive: exact name first, then substring containment in either
// direction ("running 5k" matches "running"), first table entry wins.
func lookupMET(activity string) METSet {
	name := strings.ToLower(strings.TrimSpace(activity))
	for _, e := range metTable {
		if e.name == name {
			return e.met
		}
	}
	for _, e := range metTable {
		if strings.Contains(name, e.name) || strings.Contains(e.name, name) {
			return e.met
		}
	}
	return defaultMET
}

// ExerciseCalories estimates calories burned for an exercise session:
// MET x weight(kg) x duration(hours), rounded to the nearest calorie.
func ExerciseCalories(activity string, durationMin float64, intensity entity.Intensity, weightLbs float64) int {
	met := lookupMET(activity).At(intensity)
	weightKg := weightLbs * LbsToKg
	durationHours := durationMin / 60
	return int(math.Round(met * weightKg * durationHours))
}

// SuggestedActivities returns the known activity names, title-cased for
// autocomplete display.
func SuggestedActivities() []string {
	names := make([]string, len(metTable))
	for i, e := range metTable {
		words := strings.Split(e.name, " ")
		for j, w := range words {
			if w != "" {
				words[j] = strings.ToUpper(w[:1]) + w[1:]
			}
		}
		names[i] = strings.Join(words, " ")
	}
	return names
}
