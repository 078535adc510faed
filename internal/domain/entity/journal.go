package entity

// MealType identifies which meal of the day an entry belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Intensity is the perceived effort of an exercise session.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Mood is a five-point mood scale.
type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodOkay     Mood = "okay"
	MoodBad      Mood = "bad"
	MoodTerrible Mood = "terrible"
)

// SleepQuality is a four-point sleep quality scale.
type SleepQuality string

const (
	SleepExcellent SleepQuality = "excellent"
	SleepGood      SleepQuality = "good"
	SleepFair      SleepQuality = "fair"
	SleepPoor      SleepQuality = "poor"
)

// WeightEntry records one weigh-in. Dates are ISO "YYYY-MM-DD".
type WeightEntry struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	WeightLbs float64 `json:"weight"`
	Notes     string  `json:"notes,omitempty"`
}

// MealEntry records one logged meal with optional macros.
type MealEntry struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	MealType MealType `json:"mealType"`
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
	Protein  float64  `json:"protein,omitempty"`
	Carbs    float64  `json:"carbs,omitempty"`
	Fats     float64  `json:"fats,omitempty"`
}

// WaterEntry records one water intake, in milliliters.
type WaterEntry struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	AmountML int    `json:"amount"`
}

// ExerciseEntry records one exercise session. CaloriesBurned is estimated
// from the MET table when the caller does not supply it.
type ExerciseEntry struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	Activity       string    `json:"activity"`
	DurationMin    float64   `json:"duration"`
	CaloriesBurned int       `json:"caloriesBurned"`
	Intensity      Intensity `json:"intensity,omitempty"`
}

// HabitEntry records the completion state of one habit on one day.
// Habit entries are keyed by (Date, HabitType): at most one record per habit
// per day, re-toggling overwrites in place.
type HabitEntry struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	HabitType string `json:"habitType"`
	Completed bool   `json:"completed"`
}

// MoodEntry records one mood check-in.
type MoodEntry struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Mood  Mood   `json:"mood"`
	Notes string `json:"notes,omitempty"`
}

// SleepEntry records one night of sleep.
type SleepEntry struct {
	ID      string       `json:"id"`
	Date    string       `json:"date"`
	Hours   float64      `json:"hours"`
	Quality SleepQuality `json:"quality"`
}

// Habit is one entry of the daily habit catalog.
type Habit struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// DailyHabits is the catalog of habits shown on the habits page.
var DailyHabits = []Habit{
	{ID: "water", Label: "Drink 8 glasses of water", Icon: "💧"},
	{ID: "vegetables", Label: "Eat 5 servings of vegetables", Icon: "🥗"},
	{ID: "exercise", Label: "Exercise for 30+ minutes", Icon: "🏃"},
	{ID: "sleep", Label: "Get 7-8 hours of sleep", Icon: "😴"},
	{ID: "meditation", Label: "Meditate for 10 minutes", Icon: "🧘"},
	{ID: "meal_prep", Label: "Prep healthy meals", Icon: "🍱"},
	{ID: "no_sugar", Label: "Avoid added sugars", Icon: "🚫"},
	{ID: "walk", Label: "Take a 10-minute walk", Icon: "🚶"},
}
