package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/journal"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	"github.com/Huskyauto/Weightlossapp/internal/integration/entrypoint/dto"
)

// JournalController handles the entry-logging endpoints: weights, meals,
// water, exercises, moods, and sleep.
//
// Writes are best-effort: a degraded storage write is logged and the entry is
// still acknowledged, mirroring the silent-failure persistence contract. Only
// request validation produces client-visible errors.
type JournalController struct {
	logWeight   *journal.LogEntry[entity.WeightEntry]
	listWeights *journal.ListEntries[entity.WeightEntry]
	delWeight   *journal.DeleteEntry[entity.WeightEntry]

	logMeal   *journal.LogEntry[entity.MealEntry]
	listMeals *journal.ListEntries[entity.MealEntry]
	delMeal   *journal.DeleteEntry[entity.MealEntry]

	logWater  *journal.LogEntry[entity.WaterEntry]
	listWater *journal.ListEntries[entity.WaterEntry]

	logExercise   *journal.LogExerciseUseCase
	listExercises *journal.ListEntries[entity.ExerciseEntry]
	delExercise   *journal.DeleteEntry[entity.ExerciseEntry]

	logMood   *journal.LogEntry[entity.MoodEntry]
	listMoods *journal.ListEntries[entity.MoodEntry]

	logSleep  *journal.LogEntry[entity.SleepEntry]
	listSleep *journal.ListEntries[entity.SleepEntry]
}

// NewJournalController creates a new journal controller instance.
func NewJournalController(
	logWeight *journal.LogEntry[entity.WeightEntry],
	listWeights *journal.ListEntries[entity.WeightEntry],
	delWeight *journal.DeleteEntry[entity.WeightEntry],
	logMeal *journal.LogEntry[entity.MealEntry],
	listMeals *journal.ListEntries[entity.MealEntry],
	delMeal *journal.DeleteEntry[entity.MealEntry],
	logWater *journal.LogEntry[entity.WaterEntry],
	listWater *journal.ListEntries[entity.WaterEntry],
	logExercise *journal.LogExerciseUseCase,
	listExercises *journal.ListEntries[entity.ExerciseEntry],
	delExercise *journal.DeleteEntry[entity.ExerciseEntry],
	logMood *journal.LogEntry[entity.MoodEntry],
	listMoods *journal.ListEntries[entity.MoodEntry],
	logSleep *journal.LogEntry[entity.SleepEntry],
	listSleep *journal.ListEntries[entity.SleepEntry],
) *JournalController {
	return &JournalController{
		logWeight:     logWeight,
		listWeights:   listWeights,
		delWeight:     delWeight,
		logMeal:       logMeal,
		listMeals:     listMeals,
		delMeal:       delMeal,
		logWater:      logWater,
		listWater:     listWater,
		logExercise:   logExercise,
		listExercises: listExercises,
		delExercise:   delExercise,
		logMood:       logMood,
		listMoods:     listMoods,
		logSleep:      logSleep,
		listSleep:     listSleep,
	}
}

// LogWeight handles POST /weights requests.
func (c *JournalController) LogWeight(ctx *gin.Context) {
	var req dto.LogWeightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	entry := req.ToWeightEntry()
	logEntry(ctx, "weight", c.logWeight.Execute(ctx.Request.Context(), entry))
	ctx.JSON(http.StatusCreated, entry)
}

// ListWeights handles GET /weights requests.
func (c *JournalController) ListWeights(ctx *gin.Context) {
	entries, _ := c.listWeights.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(entries))
}

// DeleteWeight handles DELETE /weights/:id requests.
func (c *JournalController) DeleteWeight(ctx *gin.Context) {
	logEntry(ctx, "weight", c.delWeight.Execute(ctx.Request.Context(), ctx.Param("id")))
	ctx.Status(http.StatusNoContent)
}

// LogMeal handles POST /meals requests.
func (c *JournalController) LogMeal(ctx *gin.Context) {
	var req dto.LogMealRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	entry := req.ToMealEntry()
	logEntry(ctx, "meal", c.logMeal.Execute(ctx.Request.Context(), entry))
	ctx.JSON(http.StatusCreated, entry)
}

// ListMeals handles GET /meals requests.
func (c *JournalController) ListMeals(ctx *gin.Context) {
	entries, _ := c.listMeals.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(entries))
}

// DeleteMeal handles DELETE /meals/:id requests.
func (c *JournalController) DeleteMeal(ctx *gin.Context) {
	logEntry(ctx, "meal", c.delMeal.Execute(ctx.Request.Context(), ctx.Param("id")))
	ctx.Status(http.StatusNoContent)
}

// LogWater handles POST /water requests.
func (c *JournalController) LogWater(ctx *gin.Context) {
	var req dto.LogWaterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	entry := req.ToWaterEntry()
	logEntry(ctx, "water", c.logWater.Execute(ctx.Request.Context(), entry))
	ctx.JSON(http.StatusCreated, entry)
}

// ListWater handles GET /water requests.
func (c *JournalController) ListWater(ctx *gin.Context) {
	entries, _ := c.listWater.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(entries))
}

// LogExercise handles POST /exercises requests.
func (c *JournalController) LogExercise(ctx *gin.Context) {
	var req dto.LogExerciseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	entry, err := c.logExercise.Execute(ctx.Request.Context(), req.ToExerciseEntry())
	logEntry(ctx, "exercise", err)
	ctx.JSON(http.StatusCreated, entry)
}

// ListExercises handles GET /exercises requests.
func (c *JournalController) ListExercises(ctx *gin.Context) {
	entries, _ := c.listExercises.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(entries))
}

// DeleteExercise handles DELETE /exercises/:id requests.
func (c *JournalController) DeleteExercise(ctx *gin.Context) {
	logEntry(ctx, "exercise", c.delExercise.Execute(ctx.Request.Context(), ctx.Param("id")))
	ctx.Status(http.StatusNoContent)
}

// LogMood handles POST /moods requests.
func (c *JournalController) LogMood(ctx *gin.Context) {
	var req dto.LogMoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	entry := req.ToMoodEntry()
	logEntry(ctx, "mood", c.logMood.Execute(ctx.Request.Context(), entry))
	ctx.JSON(http.StatusCreated, entry)
}

// ListMoods handles GET /moods requests.
func (c *JournalController) ListMoods(ctx *gin.Context) {
	entries, _ := c.listMoods.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(entries))
}

// LogSleep handles POST /sleep requests.
func (c *JournalController) LogSleep(ctx *gin.Context) {
	var req dto.LogSleepRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	entry := req.ToSleepEntry()
	logEntry(ctx, "sleep", c.logSleep.Execute(ctx.Request.Context(), entry))
	ctx.JSON(http.StatusCreated, entry)
}

// ListSleep handles GET /sleep requests.
func (c *JournalController) ListSleep(ctx *gin.Context) {
	entries, _ := c.listSleep.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(entries))
}

func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
	})
}

// logEntry records an absorbed write failure. The response is unaffected.
func logEntry(ctx *gin.Context, kind string, err error) {
	if err != nil {
		slog.Error("journal write absorbed", "kind", kind, "path", ctx.FullPath(), "error", err)
	}
}
