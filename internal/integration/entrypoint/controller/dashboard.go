package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Huskyauto/Weightlossapp/internal/application/usecase/dashboard"
	domainerror "github.com/Huskyauto/Weightlossapp/internal/domain/error"
	"github.com/Huskyauto/Weightlossapp/internal/integration/entrypoint/dto"
)

// DashboardController handles the aggregated home-screen summary.
type DashboardController struct {
	summaryUseCase *dashboard.SummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(summaryUseCase *dashboard.SummaryUseCase) *DashboardController {
	return &DashboardController{summaryUseCase: summaryUseCase}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	summary, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, domainerror.ErrProfileNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "profile not found",
				Code:  string(domainerror.ErrCodeProfileNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
