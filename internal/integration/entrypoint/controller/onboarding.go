package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/onboarding"
	"github.com/Huskyauto/Weightlossapp/internal/domain/entity"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
	"github.com/Huskyauto/Weightlossapp/internal/integration/entrypoint/dto"
)

// OnboardingController handles onboarding and profile endpoints.
type OnboardingController struct {
	completeUseCase    *onboarding.CompleteOnboardingUseCase
	getProfileUseCase  *onboarding.GetProfileUseCase
	saveProfileUseCase *onboarding.SaveProfileUseCase
	statusUseCase      *onboarding.GetStatusUseCase
}

// NewOnboardingController creates a new onboarding controller instance.
func NewOnboardingController(
	completeUseCase *onboarding.CompleteOnboardingUseCase,
	getProfileUseCase *onboarding.GetProfileUseCase,
	saveProfileUseCase *onboarding.SaveProfileUseCase,
	statusUseCase *onboarding.GetStatusUseCase,
) *OnboardingController {
	return &OnboardingController{
		completeUseCase:    completeUseCase,
		getProfileUseCase:  getProfileUseCase,
		saveProfileUseCase: saveProfileUseCase,
		statusUseCase:      statusUseCase,
	}
}

// Complete handles POST /onboarding requests.
func (c *OnboardingController) Complete(ctx *gin.Context) {
	var req dto.CompleteOnboardingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingProfileFields),
		})
		return
	}

	input := onboarding.CompleteOnboardingInput{
		Name:             req.Name,
		CurrentWeightLbs: req.CurrentWeightLbs,
		TargetWeightLbs:  req.TargetWeightLbs,
		HeightInches:     req.HeightInches,
		Age:              req.Age,
		Gender:           entity.Gender(req.Gender),
		ActivityLevel:    entity.ActivityLevel(req.ActivityLevel),
	}

	output, err := c.completeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, output.Profile)
}

// Status handles GET /onboarding/status requests.
func (c *OnboardingController) Status(ctx *gin.Context) {
	complete := c.statusUseCase.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.OnboardingStatusResponse{OnboardingComplete: complete})
}

// GetProfile handles GET /profile requests.
func (c *OnboardingController) GetProfile(ctx *gin.Context) {
	profile, err := c.getProfileUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// SaveProfile handles PUT /profile requests.
func (c *OnboardingController) SaveProfile(ctx *gin.Context) {
	var req dto.SaveProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingProfileFields),
		})
		return
	}

	profile := req.ToUserProfile()
	if err := c.saveProfileUseCase.Execute(ctx.Request.Context(), profile); err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// handleProfileError handles profile errors and returns appropriate HTTP responses.
func (c *OnboardingController) handleProfileError(ctx *gin.Context, err error) {
	var profileErr *domainerror.ProfileError
	if errors.As(err, &profileErr) {
		ctx.JSON(c.getStatusCodeForProfileError(profileErr.Code), dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProfileError maps profile error codes to HTTP status codes.
func (c *OnboardingController) getStatusCodeForProfileError(code domainerror.ProfileErrorCode) int {
	switch code {
	case domainerror.ErrCodeProfileNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTargetNotBelowCurrent,
		domainerror.ErrCodeInvalidActivityLevel,
		domainerror.ErrCodeInvalidGender,
		domainerror.ErrCodeMissingProfileFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
