// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Huskyauto/Weightlossapp/config"
	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/achievement"
	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/coach"
	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/dashboard"
	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/habit"
	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/insight"
	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/journal"
	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/onboarding"
	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/streak"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	"github.com/Huskyauto/Weightlossapp/internal/infra/server/router"
	"github.com/Huskyauto/Weightlossapp/internal/integration/adapters"
	"github.com/Huskyauto/Weightlossapp/internal/integration/entrypoint/controller"
	"github.com/Huskyauto/Weightlossapp/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool) *Injector {
	// Create repositories
	store := persistence.NewKeyValueStore(db)

	profiles := persistence.NewDocument[entity.UserProfile](store, persistence.KeyProfile)
	onboardingFlag := persistence.NewDocument[bool](store, persistence.KeyOnboardingComplete)
	streaks := persistence.NewDocument[entity.Streak](store, persistence.KeyStreak)

	weights := persistence.NewCollection(store, persistence.KeyWeightEntries,
		func(e entity.WeightEntry) string { return e.ID })
	meals := persistence.NewCollection(store, persistence.KeyMealEntries,
		func(e entity.MealEntry) string { return e.ID })
	water := persistence.NewCollection(store, persistence.KeyWaterEntries,
		func(e entity.WaterEntry) string { return e.ID })
	exercises := persistence.NewCollection(store, persistence.KeyExerciseEntries,
		func(e entity.ExerciseEntry) string { return e.ID })
	habits := persistence.NewCollection(store, persistence.KeyHabitEntries,
		func(e entity.HabitEntry) string { return persistence.HabitKey(e.Date, e.HabitType) })
	moods := persistence.NewCollection(store, persistence.KeyMoodEntries,
		func(e entity.MoodEntry) string { return e.ID })
	sleep := persistence.NewCollection(store, persistence.KeySleepEntries,
		func(e entity.SleepEntry) string { return e.ID })
	achievements := persistence.NewCollection(store, persistence.KeyAchievements,
		func(a entity.Achievement) string { return a.ID })

	// Create adapters/services
	coachService := adapters.NewGeminiCoachService(cfg.Coach.GeminiAPIKey, cfg.Coach.Model, cfg.Coach.Timeout)

	// Create onboarding and profile use cases
	completeOnboardingUseCase := onboarding.NewCompleteOnboardingUseCase(profiles, onboardingFlag, nil)
	getProfileUseCase := onboarding.NewGetProfileUseCase(profiles)
	saveProfileUseCase := onboarding.NewSaveProfileUseCase(profiles)
	onboardingStatusUseCase := onboarding.NewGetStatusUseCase(onboardingFlag)

	// Create journal use cases
	logWeightUseCase := journal.NewLogEntry(weights)
	listWeightsUseCase := journal.NewListEntries(weights)
	deleteWeightUseCase := journal.NewDeleteEntry(weights)
	logMealUseCase := journal.NewLogEntry(meals)
	listMealsUseCase := journal.NewListEntries(meals)
	deleteMealUseCase := journal.NewDeleteEntry(meals)
	logWaterUseCase := journal.NewLogEntry(water)
	listWaterUseCase := journal.NewListEntries(water)
	logExerciseUseCase := journal.NewLogExerciseUseCase(exercises, profiles)
	listExercisesUseCase := journal.NewListEntries(exercises)
	deleteExerciseUseCase := journal.NewDeleteEntry(exercises)
	logMoodUseCase := journal.NewLogEntry(moods)
	listMoodsUseCase := journal.NewListEntries(moods)
	logSleepUseCase := journal.NewLogEntry(sleep)
	listSleepUseCase := journal.NewListEntries(sleep)

	// Create habit and achievement use cases
	toggleHabitUseCase := habit.NewToggleHabitUseCase(habits)
	listHabitEntriesUseCase := habit.NewListHabitEntriesUseCase(habits)
	unlockAchievementUseCase := achievement.NewUnlockUseCase(achievements, nil)
	listAchievementsUseCase := achievement.NewListUseCase(achievements)

	// Create streak, insight, and dashboard use cases
	checkInUseCase := streak.NewCheckInUseCase(streaks, nil)
	getStreakUseCase := streak.NewGetStreakUseCase(streaks)
	dailyInsightUseCase := insight.NewDailyInsightUseCase(nil)
	summaryUseCase := dashboard.NewSummaryUseCase(profiles, streaks, weights, meals, water, exercises, habits, nil)

	// Create coach use cases
	coachInsightUseCase := coach.NewDailyInsightUseCase(coachService, profiles, weights, meals, nil)
	motivationUseCase := coach.NewMotivationUseCase(coachService, profiles)
	questionUseCase := coach.NewAnswerQuestionUseCase(coachService, profiles)
	mealSuggestionsUseCase := coach.NewMealSuggestionsUseCase(coachService, profiles)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker, redisClient != nil)
	onboardingController := controller.NewOnboardingController(
		completeOnboardingUseCase,
		getProfileUseCase,
		saveProfileUseCase,
		onboardingStatusUseCase,
	)
	journalController := controller.NewJournalController(
		logWeightUseCase, listWeightsUseCase, deleteWeightUseCase,
		logMealUseCase, listMealsUseCase, deleteMealUseCase,
		logWaterUseCase, listWaterUseCase,
		logExerciseUseCase, listExercisesUseCase, deleteExerciseUseCase,
		logMoodUseCase, listMoodsUseCase,
		logSleepUseCase, listSleepUseCase,
	)
	habitController := controller.NewHabitController(
		toggleHabitUseCase,
		listHabitEntriesUseCase,
		unlockAchievementUseCase,
		listAchievementsUseCase,
	)
	streakController := controller.NewStreakController(checkInUseCase, getStreakUseCase)
	insightController := controller.NewInsightController(dailyInsightUseCase)
	dashboardController := controller.NewDashboardController(summaryUseCase)
	coachController := controller.NewCoachController(
		coachInsightUseCase,
		motivationUseCase,
		questionUseCase,
		mealSuggestionsUseCase,
	)

	r := router.NewRouter(
		healthController,
		onboardingController,
		journalController,
		habitController,
		streakController,
		insightController,
		dashboardController,
		coachController,
		redisClient,
		cfg.Redis.CacheTTL,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
