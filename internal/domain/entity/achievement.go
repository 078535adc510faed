package entity

// Achievement is a badge the user can unlock at most once.
// UnlockedAt is an RFC 3339 timestamp, empty while locked.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UnlockedAt  string `json:"unlockedAt,omitempty"`
}

// AchievementCatalog lists every achievement the tracker can award.
var AchievementCatalog = []Achievement{
	{ID: "first_weigh_in", Name: "First Step", Description: "Log your first weigh-in", Icon: "⚖️"},
	{ID: "first_meal", Name: "Mindful Eater", Description: "Log your first meal", Icon: "🍽️"},
	{ID: "first_workout", Name: "Moving Day", Description: "Log your first exercise session", Icon: "🏋️"},
	{ID: "streak_7", Name: "One Week Strong", Description: "Reach a 7-day logging streak", Icon: "🔥"},
	{ID: "streak_30", Name: "Habit Formed", Description: "Reach a 30-day logging streak", Icon: "🏆"},
	{ID: "hydrated", Name: "Hydration Hero", Description: "Hit your water goal in a single day", Icon: "💧"},
	{ID: "five_lbs", Name: "Five Down", Description: "Lose your first 5 lbs", Icon: "📉"},
}
