package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/insight"
	"github.com/Huskyauto/Weightlossapp/internal/domain/calc"
	"github.com/Huskyauto/Weightlossapp/internal/integration/entrypoint/dto"
)

// InsightController handles the deterministic daily content and the static
// activity suggestion endpoints.
type InsightController struct {
	dailyUseCase *insight.DailyInsightUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(dailyUseCase *insight.DailyInsightUseCase) *InsightController {
	return &InsightController{dailyUseCase: dailyUseCase}
}

// Daily handles GET /insights/daily requests.
func (c *InsightController) Daily(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.dailyUseCase.Execute())
}

// ActivitySuggestions handles GET /activities/suggestions requests.
func (c *InsightController) ActivitySuggestions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ActivitySuggestionsResponse{
		Activities: calc.SuggestedActivities(),
	})
}
