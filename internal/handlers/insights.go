package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/solace-app/solace/backend/internal/apierror"
	"github.com/solace-app/solace/backend/internal/logger"
	"github.com/solace-app/solace/backend/internal/service"
)

// Window ranges accepted by the insights endpoint
const (
	RangeWeek  = "7d"
	RangeMonth = "30d"
)

// InsightsHandler handles insights and suggestion HTTP requests
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
	}
}

// GetInsights handles GET /api/v1/insights
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	anonymousID := c.Query("anonymous_id")
	if anonymousID == "" {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "anonymous_id", Message: "is required", Code: "required"},
		}))
		return
	}

	windowDays := 7
	switch c.DefaultQuery("range", RangeWeek) {
	case RangeWeek:
		windowDays = 7
	case RangeMonth:
		windowDays = 30
	default:
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "range", Message: "must be one of: 7d, 30d", Code: "invalid_value"},
		}))
		return
	}

	report, err := h.insightsService.GetReport(c.Request.Context(), anonymousID, windowDays)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to compute insights", logger.Err(err), logger.String("anonymous_id", anonymousID))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetSuggestions handles GET /api/v1/suggestions
func (h *InsightsHandler) GetSuggestions(c *gin.Context) {
	anonymousID := c.Query("anonymous_id")
	if anonymousID == "" {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "anonymous_id", Message: "is required", Code: "required"},
		}))
		return
	}

	days := DefaultMoodLogWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
				{Field: "days", Message: "must be a positive integer", Code: "invalid_value"},
			}))
			return
		}
		days = parsed
	}

	suggestions, err := h.insightsService.GetSuggestions(c.Request.Context(), anonymousID, days)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to select suggestions", logger.Err(err), logger.String("anonymous_id", anonymousID))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
