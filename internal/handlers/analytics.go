package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solace-app/solace/backend/internal/apierror"
	"github.com/solace-app/solace/backend/internal/logger"
	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/internal/service"
)

// AnalyticsHandler handles engagement and event tracking HTTP requests
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// TrackEngagement handles POST /api/v1/engagement
func (h *AnalyticsHandler) TrackEngagement(c *gin.Context) {
	var req models.TrackEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid engagement payload"))
		return
	}

	created, err := h.analyticsService.TrackEngagement(c.Request.Context(), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to track engagement", logger.Err(err), logger.String("anonymous_id", req.AnonymousID))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": created.ID, "status": "ok"})
}

// TrackEvent handles POST /api/v1/event
func (h *AnalyticsHandler) TrackEvent(c *gin.Context) {
	var req models.TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid event payload"))
		return
	}

	created, err := h.analyticsService.TrackEvent(c.Request.Context(), &req)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to track event", logger.Err(err), logger.String("anonymous_id", req.AnonymousID))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": created.ID, "status": "ok"})
}
