// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Huskyauto/Weightlossapp/internal/integration/entrypoint/controller"
	"github.com/Huskyauto/Weightlossapp/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	onboardingController *controller.OnboardingController
	journalController    *controller.JournalController
	habitController      *controller.HabitController
	streakController     *controller.StreakController
	insightController    *controller.InsightController
	dashboardController  *controller.DashboardController
	coachController      *controller.CoachController
	redisClient          *redis.Client
	cacheTTL             time.Duration
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	onboardingController *controller.OnboardingController,
	journalController *controller.JournalController,
	habitController *controller.HabitController,
	streakController *controller.StreakController,
	insightController *controller.InsightController,
	dashboardController *controller.DashboardController,
	coachController *controller.CoachController,
	redisClient *redis.Client,
	cacheTTL time.Duration,
) *Router {
	return &Router{
		healthController:     healthController,
		onboardingController: onboardingController,
		journalController:    journalController,
		habitController:      habitController,
		streakController:     streakController,
		insightController:    insightController,
		dashboardController:  dashboardController,
		coachController:      coachController,
		redisClient:          redisClient,
		cacheTTL:             cacheTTL,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	// Every write can change the cached aggregates, so the whole group
	// invalidates on mutation.
	v1.Use(middleware.InvalidateOnWrite(r.redisClient))
	{
		// Onboarding and profile routes
		v1.POST("/onboarding", r.onboardingController.Complete)
		v1.GET("/onboarding/status", r.onboardingController.Status)
		v1.GET("/profile", r.onboardingController.GetProfile)
		v1.PUT("/profile", r.onboardingController.SaveProfile)

		// Journal routes
		weights := v1.Group("/weights")
		{
			weights.GET("", r.journalController.ListWeights)
			weights.POST("", r.journalController.LogWeight)
			weights.DELETE("/:id", r.journalController.DeleteWeight)
		}
		meals := v1.Group("/meals")
		{
			meals.GET("", r.journalController.ListMeals)
			meals.POST("", r.journalController.LogMeal)
			meals.DELETE("/:id", r.journalController.DeleteMeal)
		}
		waterGroup := v1.Group("/water")
		{
			waterGroup.GET("", r.journalController.ListWater)
			waterGroup.POST("", r.journalController.LogWater)
		}
		exercises := v1.Group("/exercises")
		{
			exercises.GET("", r.journalController.ListExercises)
			exercises.POST("", r.journalController.LogExercise)
			exercises.DELETE("/:id", r.journalController.DeleteExercise)
		}
		moods := v1.Group("/moods")
		{
			moods.GET("", r.journalController.ListMoods)
			moods.POST("", r.journalController.LogMood)
		}
		sleep := v1.Group("/sleep")
		{
			sleep.GET("", r.journalController.ListSleep)
			sleep.POST("", r.journalController.LogSleep)
		}

		// Habit and achievement routes
		habits := v1.Group("/habits")
		{
			habits.GET("", r.habitController.ListEntries)
			habits.GET("/catalog", r.habitController.Catalog)
			habits.POST("/toggle", r.habitController.Toggle)
		}
		achievements := v1.Group("/achievements")
		{
			achievements.GET("", r.habitController.ListAchievements)
			achievements.POST("/:id/unlock", r.habitController.UnlockAchievement)
		}

		// Streak routes
		v1.GET("/streak", r.streakController.Get)
		v1.POST("/streak/checkin", r.streakController.CheckIn)

		// Cached read-only routes. Coach endpoints are never cached: each
		// call may generate a fresh answer.
		cached := middleware.CacheGET(r.redisClient, r.cacheTTL)
		v1.GET("/insights/daily", cached, r.insightController.Daily)
		v1.GET("/activities/suggestions", cached, r.insightController.ActivitySuggestions)
		v1.GET("/dashboard/summary", cached, r.dashboardController.Summary)

		// Coach routes
		coachGroup := v1.Group("/coach")
		{
			coachGroup.POST("/insight", r.coachController.Insight)
			coachGroup.POST("/motivation", r.coachController.Motivation)
			coachGroup.POST("/question", r.coachController.Question)
			coachGroup.POST("/meal-suggestions", r.coachController.MealSuggestions)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
