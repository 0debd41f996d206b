package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/solace-app/solace/backend/internal/apierror"
	"github.com/solace-app/solace/backend/internal/logger"
	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/internal/service"
)

// DefaultMoodLogWindowDays is the trailing window used when the days query
// parameter is omitted.
const DefaultMoodLogWindowDays = 7

// MoodLogHandler handles mood log HTTP requests
type MoodLogHandler struct {
	moodLogService service.MoodLogService
}

// NewMoodLogHandler creates a new mood log handler
func NewMoodLogHandler(moodLogService service.MoodLogService) *MoodLogHandler {
	return &MoodLogHandler{
		moodLogService: moodLogService,
	}
}

// CreateMoodLog handles POST /api/v1/moodlog
func (h *MoodLogHandler) CreateMoodLog(c *gin.Context) {
	var req models.CreateMoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid mood log payload"))
		return
	}

	log := logger.Ctx(c.Request.Context())

	created, err := h.moodLogService.LogMood(c.Request.Context(), &req)
	if err != nil {
		log.Error("failed to log mood", logger.Err(err), logger.String("anonymous_id", req.AnonymousID))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": created.ID, "status": "ok"})
}

// ListMoodLogs handles GET /api/v1/moodlog
func (h *MoodLogHandler) ListMoodLogs(c *gin.Context) {
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

	logs, err := h.moodLogService.GetRecentLogs(c.Request.Context(), anonymousID, days)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list mood logs", logger.Err(err), logger.String("anonymous_id", anonymousID))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	if logs == nil {
		logs = []models.MoodLog{}
	}

	c.JSON(http.StatusOK, logs)
}
