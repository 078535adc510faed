// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Huskyauto/Weightlossapp/internal/application/adapter"
	"github.com/Huskyauto/Weightlossapp/internal/integration/persistence/model"
)

// Storage keys, one per collection. These are the original fixed,
// versionless key names; no migration mechanism exists for them.
const (
	KeyProfile            = "wlc_profile"
	KeyWeightEntries      = "wlc_weight_entries"
	KeyMealEntries        = "wlc_meal_entries"
	KeyWaterEntries       = "wlc_water_entries"
	KeyExerciseEntries    = "wlc_exercise_entries"
	KeyHabitEntries       = "wlc_habit_entries"
	KeyMoodEntries        = "wlc_mood_entries"
	KeySleepEntries       = "wlc_sleep_entries"
	KeyAchievements       = "wlc_achievements"
	KeyStreak             = "wlc_streak"
	KeyOnboardingComplete = "wlc_onboarding_complete"
)

// kvStore implements adapter.KeyValueStore over the storage_items table.
type kvStore struct {
	db *gorm.DB
}

// NewKeyValueStore creates a new key-value store backed by the given database.
func NewKeyValueStore(db *gorm.DB) adapter.KeyValueStore {
	return &kvStore{db: db}
}

// Get returns the raw value for key, with found=false for an absent key.
func (s *kvStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var item model.StorageItemModel
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, result.Error
	}
	return []byte(item.Value), true, nil
}

// Set replaces the entire value for key.
func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	item := model.StorageItemModel{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&item)
	return result.Error
}
