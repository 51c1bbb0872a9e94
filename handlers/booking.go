package handlers

import (
	"net/http"

	"bookify/models"
	"bookify/services/booking"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the customer booking flow.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CreateBookingHandler creates a PENDING booking and returns its reference.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	ref, err := h.Svc.Create(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ref)
}

// GetBookingHandler returns one booking; only its customer may view it.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	detail, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetBookingByRefHandler looks a booking up by its public reference code.
func (h *BookingHandler) GetBookingByRefHandler(c *gin.Context) {
	detail, err := h.Svc.GetByRef(c.Request.Context(), c.Param("ref"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListMyBookingsHandler lists the caller's bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	bookings, err := h.Svc.ListMine(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatusHandler lets the profile owner confirm or reject a
// pending booking.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req models.BookingStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload", err.Error())
		return
	}

	updated, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CancelBookingHandler cancels a booking on behalf of its customer or the
// profile owner.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	updated, err := h.Svc.Cancel(c.Request.Context(), c.Param("id"), c.GetString("userID"), c.GetString("userRole"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListProfileBookingsHandler lists a profile's bookings for its owner.
func (h *BookingHandler) ListProfileBookingsHandler(c *gin.Context) {
	bookings, err := h.Svc.ListForProfile(c.Request.Context(), c.Param("profileId"), c.GetString("userID"), c.GetString("userRole"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
