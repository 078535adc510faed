package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/coach"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
	"github.com/Huskyauto/Weightlossapp/internal/integration/entrypoint/dto"
)

// CoachController handles the AI coach endpoints. Every operation answers
// 200 with either generated text or its fixed fallback; only request
// validation can fail.
type CoachController struct {
	insightUseCase         *coach.DailyInsightUseCase
	motivationUseCase      *coach.MotivationUseCase
	questionUseCase        *coach.AnswerQuestionUseCase
	mealSuggestionsUseCase *coach.MealSuggestionsUseCase
}

// NewCoachController creates a new coach controller instance.
func NewCoachController(
	insightUseCase *coach.DailyInsightUseCase,
	motivationUseCase *coach.MotivationUseCase,
	questionUseCase *coach.AnswerQuestionUseCase,
	mealSuggestionsUseCase *coach.MealSuggestionsUseCase,
) *CoachController {
	return &CoachController{
		insightUseCase:         insightUseCase,
		motivationUseCase:      motivationUseCase,
		questionUseCase:        questionUseCase,
		mealSuggestionsUseCase: mealSuggestionsUseCase,
	}
}

// Insight handles POST /coach/insight requests.
func (c *CoachController) Insight(ctx *gin.Context) {
	output := c.insightUseCase.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.CoachResponse{Message: output.Text, Degraded: output.Degraded})
}

// Motivation handles POST /coach/motivation requests.
func (c *CoachController) Motivation(ctx *gin.Context) {
	// The body is optional; an empty request generates a generic message.
	var req dto.MotivationRequest
	_ = ctx.ShouldBindJSON(&req)

	output := c.motivationUseCase.Execute(ctx.Request.Context(), coach.MotivationInput{Context: req.Context})
	ctx.JSON(http.StatusOK, dto.CoachResponse{Message: output.Text, Degraded: output.Degraded})
}

// Question handles POST /coach/question requests.
func (c *CoachController) Question(ctx *gin.Context) {
	var req dto.CoachQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	output, err := c.questionUseCase.Execute(ctx.Request.Context(), coach.AnswerQuestionInput{Question: req.Question})
	if err != nil {
		if errors.Is(err, domainerror.ErrBlankQuestion) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "question must not be blank",
				Code:  string(domainerror.CoachBlankQuestionCode),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.CoachResponse{Message: output.Text, Degraded: output.Degraded})
}

// MealSuggestions handles POST /coach/meal-suggestions requests.
func (c *CoachController) MealSuggestions(ctx *gin.Context) {
	// The body is optional; defaults come from the profile's calorie goal.
	var req dto.MealSuggestionsRequest
	_ = ctx.ShouldBindJSON(&req)

	output := c.mealSuggestionsUseCase.Execute(ctx.Request.Context(), coach.MealSuggestionsInput{
		CalorieTarget:      req.CalorieTarget,
		MealType:           req.MealType,
		DietaryPreferences: req.DietaryPreferences,
	})
	ctx.JSON(http.StatusOK, dto.CoachResponse{Message: output.Text, Degraded: output.Degraded})
}
