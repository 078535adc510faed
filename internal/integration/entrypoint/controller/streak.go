package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/streak"
)

// StreakController handles logging-streak endpoints.
type StreakController struct {
	checkInUseCase *streak.CheckInUseCase
	getUseCase     *streak.GetStreakUseCase
}

// NewStreakController creates a new streak controller instance.
func NewStreakController(checkInUseCase *streak.CheckInUseCase, getUseCase *streak.GetStreakUseCase) *StreakController {
	return &StreakController{checkInUseCase: checkInUseCase, getUseCase: getUseCase}
}

// Get handles GET /streak requests.
func (c *StreakController) Get(ctx *gin.Context) {
	current, _ := c.getUseCase.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, current)
}

// CheckIn handles POST /streak/checkin requests. The transition is
// idempotent within a calendar day.
func (c *StreakController) CheckIn(ctx *gin.Context) {
	current, err := c.checkInUseCase.Execute(ctx.Request.Context())
	logEntry(ctx, "streak", err)
	ctx.JSON(http.StatusOK, current)
}
