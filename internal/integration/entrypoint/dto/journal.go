package dto

import (
	"github.com/google/uuid"

	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
)

// Entry requests accept an optional client-generated id; a server-side UUID
// is assigned when it is absent, which keeps upsert-by-id working for
// clients that resubmit an edited entry.
func entryID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// LogWeightRequest represents a weigh-in submission.
type LogWeightRequest struct {
	ID        string  `json:"id"`
	Date      string  `json:"date" binding:"required,datetime=2006-01-02"`
	WeightLbs float64 `json:"weight" binding:"required,gt=0"`
	Notes     string  `json:"notes"`
}

// ToWeightEntry converts the request into the domain entry.
func (r *LogWeightRequest) ToWeightEntry() entity.WeightEntry {
	return entity.WeightEntry{
		ID:        entryID(r.ID),
		Date:      r.Date,
		WeightLbs: r.WeightLbs,
		Notes:     r.Notes,
	}
}

// LogMealRequest represents a meal submission.
type LogMealRequest struct {
	ID       string  `json:"id"`
	Date     string  `json:"date" binding:"required,datetime=2006-01-02"`
	MealType string  `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	Name     string  `json:"name" binding:"required"`
	Calories int     `json:"calories" binding:"required,gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fats     float64 `json:"fats" binding:"gte=0"`
}

// ToMealEntry converts the request into the domain entry.
func (r *LogMealRequest) ToMealEntry() entity.MealEntry {
	return entity.MealEntry{
		ID:       entryID(r.ID),
		Date:     r.Date,
		MealType: entity.MealType(r.MealType),
		Name:     r.Name,
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fats:     r.Fats,
	}
}

// LogWaterRequest represents a water intake submission, in milliliters.
type LogWaterRequest struct {
	ID       string `json:"id"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	AmountML int    `json:"amount" binding:"required,gt=0"`
}

// ToWaterEntry converts the request into the domain entry.
func (r *LogWaterRequest) ToWaterEntry() entity.WaterEntry {
	return entity.WaterEntry{
		ID:       entryID(r.ID),
		Date:     r.Date,
		AmountML: r.AmountML,
	}
}

// LogExerciseRequest represents an exercise submission. CaloriesBurned may
// be omitted; it is then estimated from the activity, duration, and
// intensity.
type LogExerciseRequest struct {
	ID             string  `json:"id"`
	Date           string  `json:"date" binding:"required,datetime=2006-01-02"`
	Activity       string  `json:"activity" binding:"required"`
	DurationMin    float64 `json:"duration" binding:"required,gt=0"`
	CaloriesBurned int     `json:"caloriesBurned" binding:"gte=0"`
	Intensity      string  `json:"intensity" binding:"omitempty,oneof=low medium high"`
}

// ToExerciseEntry converts the request into the domain entry.
func (r *LogExerciseRequest) ToExerciseEntry() entity.ExerciseEntry {
	return entity.ExerciseEntry{
		ID:             entryID(r.ID),
		Date:           r.Date,
		Activity:       r.Activity,
		DurationMin:    r.DurationMin,
		CaloriesBurned: r.CaloriesBurned,
		Intensity:      entity.Intensity(r.Intensity),
	}
}

// LogMoodRequest represents a mood check-in.
type LogMoodRequest struct {
	ID    string `json:"id"`
	Date  string `json:"date" binding:"required,datetime=2006-01-02"`
	Mood  string `json:"mood" binding:"required,oneof=great good okay bad terrible"`
	Notes string `json:"notes"`
}

// ToMoodEntry converts the request into the domain entry.
func (r *LogMoodRequest) ToMoodEntry() entity.MoodEntry {
	return entity.MoodEntry{
		ID:    entryID(r.ID),
		Date:  r.Date,
		Mood:  entity.Mood(r.Mood),
		Notes: r.Notes,
	}
}

// LogSleepRequest represents a night of sleep.
type LogSleepRequest struct {
	ID      string  `json:"id"`
	Date    string  `json:"date" binding:"required,datetime=2006-01-02"`
	Hours   float64 `json:"hours" binding:"required,gt=0"`
	Quality string  `json:"quality" binding:"required,oneof=excellent good fair poor"`
}

// ToSleepEntry converts the request into the domain entry.
func (r *LogSleepRequest) ToSleepEntry() entity.SleepEntry {
	return entity.SleepEntry{
		ID:      entryID(r.ID),
		Date:    r.Date,
		Hours:   r.Hours,
		Quality: entity.SleepQuality(r.Quality),
	}
}

// EntryListResponse wraps a collection listing.
type EntryListResponse[T any] struct {
	Entries []T `json:"entries"`
}

// ToEntryListResponse wraps the entries, normalizing nil to an empty array.
func ToEntryListResponse[T any](entries []T) EntryListResponse[T] {
	if entries == nil {
		entries = []T{}
	}
	return EntryListResponse[T]{Entries: entries}
}
