package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/achievement"
	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/habit"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
	"github.com/Huskyauto/Weightlossapp/internal/integration/entrypoint/dto"
)

// HabitController handles daily habit and achievement endpoints.
type HabitController struct {
	toggleUseCase      *habit.ToggleHabitUseCase
	listEntriesUseCase *habit.ListHabitEntriesUseCase
	unlockUseCase      *achievement.UnlockUseCase
	listUnlocksUseCase *achievement.ListUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	toggleUseCase *habit.ToggleHabitUseCase,
	listEntriesUseCase *habit.ListHabitEntriesUseCase,
	unlockUseCase *achievement.UnlockUseCase,
	listUnlocksUseCase *achievement.ListUseCase,
) *HabitController {
	return &HabitController{
		toggleUseCase:      toggleUseCase,
		listEntriesUseCase: listEntriesUseCase,
		unlockUseCase:      unlockUseCase,
		listUnlocksUseCase: listUnlocksUseCase,
	}
}

// Catalog handles GET /habits/catalog requests.
func (c *HabitController) Catalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HabitCatalogResponse{Habits: entity.DailyHabits})
}

// ListEntries handles GET /habits requests.
func (c *HabitController) ListEntries(ctx *gin.Context) {
	entries, _ := c.listEntriesUseCase.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(entries))
}

// Toggle handles POST /habits/toggle requests.
func (c *HabitController) Toggle(ctx *gin.Context) {
	var req dto.ToggleHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	entry, err := c.toggleUseCase.Execute(ctx.Request.Context(), habit.ToggleHabitInput{
		Date:      req.Date,
		HabitType: req.HabitType,
		Completed: req.Completed,
	})
	if err != nil && !errors.Is(err, domainerror.ErrStorageDegraded) {
		c.handleJournalError(ctx, err)
		return
	}
	logEntry(ctx, "habit", err)

	ctx.JSON(http.StatusOK, entry)
}

// ListAchievements handles GET /achievements requests.
func (c *HabitController) ListAchievements(ctx *gin.Context) {
	achievements, err := c.listUnlocksUseCase.Execute(ctx.Request.Context())
	if err != nil && !errors.Is(err, domainerror.ErrStorageDegraded) {
		c.handleJournalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AchievementListResponse{Achievements: achievements})
}

// UnlockAchievement handles POST /achievements/:id/unlock requests.
func (c *HabitController) UnlockAchievement(ctx *gin.Context) {
	unlocked, err := c.unlockUseCase.Execute(ctx.Request.Context(), ctx.Param("id"))
	if err != nil && !errors.Is(err, domainerror.ErrStorageDegraded) {
		c.handleJournalError(ctx, err)
		return
	}
	logEntry(ctx, "achievement", err)

	ctx.JSON(http.StatusOK, unlocked)
}

// handleJournalError handles journal errors and returns appropriate HTTP responses.
func (c *HabitController) handleJournalError(ctx *gin.Context, err error) {
	var journalErr *domainerror.JournalError
	if errors.As(err, &journalErr) {
		ctx.JSON(c.getStatusCodeForJournalError(journalErr.Code), dto.ErrorResponse{
			Error: journalErr.Message,
			Code:  string(journalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForJournalError maps journal error codes to HTTP status codes.
func (c *HabitController) getStatusCodeForJournalError(code domainerror.JournalErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnknownHabit, domainerror.ErrCodeUnknownAchievement:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidEntryDate, domainerror.ErrCodeMissingEntryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
