package booking

import (
	"errors"
	"net/http"
	"time"

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

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	b := res.Booking
	response.Success(c, http.StatusCreated, gin.H{
		"booking": gin.H{
			"id":           b.ID,
			"start_at":     b.StartAt.Format(time.RFC3339),
			"end_at":       b.EndAt.Format(time.RFC3339),
			"status":       b.Status,
			"cancel_token": b.CancelToken,
		},
		"timezone": res.Timezone,
	})
}

func (h *Handler) GetDetail(c *gin.Context) {
	b, err := h.service.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Cancel(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "token is required")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), c.Param("id"), token)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Reschedule(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "token is required")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Reschedule(c.Request.Context(), c.Param("id"), token, req.Date, req.Time)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"booking":  res.Booking,
		"timezone": res.Timezone,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, civil.ErrInvalidCivilTime):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date or time")
	case errors.Is(err, catalog.ErrServiceNotFound):
		response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found or not active")
	case errors.Is(err, catalog.ErrStaffNotFound):
		response.Error(c, http.StatusNotFound, "STAFF_NOT_FOUND", "Staff member not found or not active")
	case errors.Is(err, catalog.ErrNoStaffAvailable):
		response.Error(c, http.StatusNotFound, "NO_STAFF_AVAILABLE", "No active staff available")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrInvalidToken):
		response.Error(c, http.StatusForbidden, "INVALID_TOKEN", "Invalid cancel token")
	case errors.Is(err, ErrSlotUnavailable):
		response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", "Slot is not available, pick another time")
	case errors.Is(err, ErrCancelWindowExpired):
		response.Error(c, http.StatusUnprocessableEntity, "CANCEL_WINDOW_EXPIRED", "Too close to the appointment to cancel")
	case errors.Is(err, ErrAlreadyCancelled):
		response.Error(c, http.StatusUnprocessableEntity, "ALREADY_CANCELLED", "Booking is already cancelled")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
