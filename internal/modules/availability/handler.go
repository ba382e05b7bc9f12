package availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salone/internal/modules/catalog"
	"salone/internal/pkg/civil"
	"salone/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAvailability(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Query("serviceId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "serviceId is required")
		return
	}

	var staffID int64
	if v := c.Query("staffId"); v != "" {
		staffID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "staffId must be numeric")
			return
		}
	}

	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date is required")
		return
	}

	res, err := h.service.ForDate(c.Request.Context(), Query{
		ServiceID: serviceID,
		StaffID:   staffID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, civil.ErrInvalidCivilTime):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date")
		case errors.Is(err, catalog.ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found or not active")
		case errors.Is(err, catalog.ErrStaffNotFound):
			response.Error(c, http.StatusNotFound, "STAFF_NOT_FOUND", "Staff member not found or not active")
		case errors.Is(err, catalog.ErrNoStaffAvailable):
			response.Error(c, http.StatusNotFound, "NO_STAFF_AVAILABLE", "No active staff available")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute availability")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"slots":    res.Slots,
		"timezone": res.Timezone,
	})
}
