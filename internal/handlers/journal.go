package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/solace-app/solace/backend/internal/apierror"
	"github.com/solace-app/solace/backend/internal/logger"
	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/internal/service"
)

// DefaultJournalListLimit caps the journal list when the limit query
// parameter is omitted.
const DefaultJournalListLimit = 20

// JournalHandler handles journal HTTP requests
type JournalHandler struct {
	journalService service.JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// CreateEntry handles POST /api/v1/journal
func (h *JournalHandler) CreateEntry(c *gin.Context) {
	var req models.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid journal payload"))
		return
	}

	log := logger.Ctx(c.Request.Context())

	created, err := h.journalService.AddEntry(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyJournalText) {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
				{Field: "text", Message: "must not be blank", Code: "required"},
			}))
			return
		}
		log.Error("failed to save journal entry", logger.Err(err), logger.String("anonymous_id", req.AnonymousID))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": created.ID, "status": "ok"})
}

// ListEntries handles GET /api/v1/journal
func (h *JournalHandler) ListEntries(c *gin.Context) {
	anonymousID := c.Query("anonymous_id")
	if anonymousID == "" {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "anonymous_id", Message: "is required", Code: "required"},
		}))
		return
	}

	limit := DefaultJournalListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			requestID := apierror.GetRequestID(c)
			apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
				{Field: "limit", Message: "must be a positive integer", Code: "invalid_value"},
			}))
			return
		}
		limit = parsed
	}

	entries, err := h.journalService.GetEntries(c.Request.Context(), anonymousID, limit)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to list journal entries", logger.Err(err), logger.String("anonymous_id", anonymousID))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	if entries == nil {
		entries = []models.JournalEntry{}
	}

	c.JSON(http.StatusOK, entries)
}
