package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solace-app/solace/backend/internal/apierror"
	"github.com/solace-app/solace/backend/internal/logger"
	"github.com/solace-app/solace/backend/internal/service"
)

// DataHandler handles data export and deletion HTTP requests
type DataHandler struct {
	dataService service.DataService
}

// NewDataHandler creates a new data handler
func NewDataHandler(dataService service.DataService) *DataHandler {
	return &DataHandler{
		dataService: dataService,
	}
}

// Export handles GET /api/v1/export
func (h *DataHandler) Export(c *gin.Context) {
	anonymousID := c.Query("anonymous_id")
	if anonymousID == "" {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "anonymous_id", Message: "is required", Code: "required"},
		}))
		return
	}

	data, err := h.dataService.Export(c.Request.Context(), anonymousID)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to export data", logger.Err(err), logger.String("anonymous_id", anonymousID))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, data)
}

// DeleteAll handles DELETE /api/v1/data
func (h *DataHandler) DeleteAll(c *gin.Context) {
	anonymousID := c.Query("anonymous_id")
	if anonymousID == "" {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "anonymous_id", Message: "is required", Code: "required"},
		}))
		return
	}

	log := logger.Ctx(c.Request.Context())

	if err := h.dataService.DeleteAll(c.Request.Context(), anonymousID); err != nil {
		log.Error("failed to delete user data", logger.Err(err), logger.String("anonymous_id", anonymousID))
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	log.Info("deleted all data for anonymous id", logger.String("anonymous_id", anonymousID))

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
