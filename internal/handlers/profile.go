package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solace-app/solace/backend/internal/apierror"
	"github.com/solace-app/solace/backend/internal/logger"
	"github.com/solace-app/solace/backend/internal/models"
	"github.com/solace-app/solace/backend/internal/service"
)

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// UpsertProfile handles POST /api/v1/profile
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var req models.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid profile payload"))
		return
	}

	log := logger.Ctx(c.Request.Context())

	status, err := h.profileService.UpsertProfile(c.Request.Context(), &req)
	if err != nil {
		log.Error("failed to upsert profile", logger.Err(err), logger.String("anonymous_id", req.AnonymousID))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	anonymousID := c.Query("anonymous_id")
	if anonymousID == "" {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "anonymous_id", Message: "is required", Code: "required"},
		}))
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), anonymousID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to get profile", logger.Err(err), logger.String("anonymous_id", anonymousID))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, profile)
}
