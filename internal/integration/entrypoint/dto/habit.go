package dto

import "github.com/Huskyauto/Weightlossapp/internal/domain/entity"

// ToggleHabitRequest represents a habit completion toggle for one day.
type ToggleHabitRequest struct {
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	HabitType string `json:"habitType" binding:"required"`
	Completed bool   `json:"completed"`
}

// HabitCatalogResponse lists the fixed daily habit catalog.
type HabitCatalogResponse struct {
	Habits []entity.Habit `json:"habits"`
}

// AchievementListResponse lists the achievement catalog with unlock state.
type AchievementListResponse struct {
	Achievements []entity.Achievement `json:"achievements"`
}
