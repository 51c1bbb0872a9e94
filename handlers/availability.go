package handlers

import (
	"net/http"
	"time"

	"bookify/models"
	"bookify/services/availability"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

const dateParamLayout = "2006-01-02"

// AvailabilityHandler exposes slot management and public availability reads.
type AvailabilityHandler struct {
	Svc availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// CreateSlotsHandler generates slots for one date from a time window config.
func (h *AvailabilityHandler) CreateSlotsHandler(c *gin.Context) {
	var req models.AvailabilityCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability payload", err.Error())
		return
	}

	slots, err := h.Svc.CreateSlots(c.Request.Context(), c.Param("profileId"), c.GetString("userID"), c.GetString("userRole"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slots)
}

// GetRangeHandler returns availability for a profile over a date range,
// grouped by date.
func (h *AvailabilityHandler) GetRangeHandler(c *gin.Context) {
	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return
	}

	days, err := h.Svc.GetRange(c.Request.Context(), c.Param("profileId"), start, end)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// GetDateHandler returns availability for a profile on a single date.
func (h *AvailabilityHandler) GetDateHandler(c *gin.Context) {
	date, err := time.Parse(dateParamLayout, c.Param("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", err.Error())
		return
	}

	day, err := h.Svc.GetDate(c.Request.Context(), c.Param("profileId"), date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// UpdateSlotCapacityHandler changes a slot's maximum capacity.
func (h *AvailabilityHandler) UpdateSlotCapacityHandler(c *gin.Context) {
	var req models.SlotCapacityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid capacity payload", err.Error())
		return
	}

	slot, err := h.Svc.UpdateCapacity(c.Request.Context(), c.Param("slotId"), c.GetString("userID"), c.GetString("userRole"), req.MaxCapacity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// DeleteSlotHandler removes a slot.
func (h *AvailabilityHandler) DeleteSlotHandler(c *gin.Context) {
	if err := h.Svc.DeleteSlot(c.Request.Context(), c.Param("slotId"), c.GetString("userID"), c.GetString("userRole")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseDateQuery reads a required YYYY-MM-DD query parameter. On failure it
// writes the error response and returns ok=false.
func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing required query parameter: "+name, "")
		return time.Time{}, false
	}
	t, err := time.Parse(dateParamLayout, raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid "+name+", expected YYYY-MM-DD", err.Error())
		return time.Time{}, false
	}
	return t, true
}
