package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"bookify/models"
	"bookify/services/admin"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

// defaultAnalyticsWindow is used when an analytics range is not supplied.
const defaultAnalyticsWindow = 30 * 24 * time.Hour

// AdminHandler exposes the owner/admin management surface: booking
// transitions, customer management, analytics and the activity log.
type AdminHandler struct {
	Svc admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Svc: svc}
}

func (h *AdminHandler) caller(c *gin.Context) (string, string) {
	return c.GetString("userID"), c.GetString("userRole")
}

// ListBookingsHandler returns a filtered, paginated booking list.
func (h *AdminHandler) ListBookingsHandler(c *gin.Context) {
	q := models.BookingListQuery{
		Page:      intQuery(c, "page", 1),
		PageSize:  intQuery(c, "page_size", 20),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	var ok bool
	if q.StartDate, ok = optionalDateQuery(c, "start_date"); !ok {
		return
	}
	if q.EndDate, ok = optionalDateQuery(c, "end_date"); !ok {
		return
	}

	callerID, callerRole := h.caller(c)
	page, err := h.Svc.ListBookings(c.Request.Context(), callerID, callerRole, q)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetBookingHandler returns one enriched booking with its admin notes.
func (h *AdminHandler) GetBookingHandler(c *gin.Context) {
	callerID, callerRole := h.caller(c)
	detail, err := h.Svc.GetBooking(c.Request.Context(), callerID, callerRole, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ApproveBookingHandler moves a PENDING booking to CONFIRMED.
func (h *AdminHandler) ApproveBookingHandler(c *gin.Context) {
	var req models.ApproveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid approve payload", err.Error())
		return
	}

	callerID, callerRole := h.caller(c)
	updated, err := h.Svc.ApproveBooking(c.Request.Context(), callerID, callerRole, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RejectBookingHandler moves a PENDING booking to REJECTED.
func (h *AdminHandler) RejectBookingHandler(c *gin.Context) {
	var req models.RejectBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reject payload", err.Error())
		return
	}

	callerID, callerRole := h.caller(c)
	updated, err := h.Svc.RejectBooking(c.Request.Context(), callerID, callerRole, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CancelBookingHandler cancels a PENDING or CONFIRMED booking.
func (h *AdminHandler) CancelBookingHandler(c *gin.Context) {
	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid cancel payload", err.Error())
		return
	}

	callerID, callerRole := h.caller(c)
	updated, err := h.Svc.CancelBooking(c.Request.Context(), callerID, callerRole, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CompleteBookingHandler moves a CONFIRMED booking to COMPLETED.
func (h *AdminHandler) CompleteBookingHandler(c *gin.Context) {
	callerID, callerRole := h.caller(c)
	updated, err := h.Svc.CompleteBooking(c.Request.Context(), callerID, callerRole, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// NoShowBookingHandler marks a CONFIRMED booking as NO_SHOW.
func (h *AdminHandler) NoShowBookingHandler(c *gin.Context) {
	callerID, callerRole := h.caller(c)
	updated, err := h.Svc.NoShowBooking(c.Request.Context(), callerID, callerRole, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RescheduleBookingHandler moves a booking to a new date and slot.
func (h *AdminHandler) RescheduleBookingHandler(c *gin.Context) {
	var req models.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reschedule payload", err.Error())
		return
	}

	callerID, callerRole := h.caller(c)
	updated, err := h.Svc.RescheduleBooking(c.Request.Context(), callerID, callerRole, c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AddBookingNoteHandler attaches an internal note to a booking.
func (h *AdminHandler) AddBookingNoteHandler(c *gin.Context) {
	var req models.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid note payload", err.Error())
		return
	}

	callerID, callerRole := h.caller(c)
	note, err := h.Svc.AddBookingNote(c.Request.Context(), callerID, callerRole, c.Param("id"), req.Note)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// ListCustomersHandler returns customers with booking statistics.
func (h *AdminHandler) ListCustomersHandler(c *gin.Context) {
	q := models.CustomerListQuery{
		Page:     intQuery(c, "page", 1),
		PageSize: intQuery(c, "page_size", 20),
		Search:   c.Query("search"),
	}
	if raw := c.Query("is_blocked"); raw != "" {
		blocked, err := strconv.ParseBool(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid is_blocked, expected true or false", err.Error())
			return
		}
		q.IsBlocked = &blocked
	}

	callerID, callerRole := h.caller(c)
	page, err := h.Svc.ListCustomers(c.Request.Context(), callerID, callerRole, q)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetCustomerHandler returns one customer's booking statistics.
func (h *AdminHandler) GetCustomerHandler(c *gin.Context) {
	callerID, callerRole := h.caller(c)
	customer, err := h.Svc.GetCustomer(c.Request.Context(), callerID, callerRole, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetCustomerBookingsHandler returns a customer's booking history.
func (h *AdminHandler) GetCustomerBookingsHandler(c *gin.Context) {
	callerID, callerRole := h.caller(c)
	page, err := h.Svc.GetCustomerBookings(c.Request.Context(), callerID, callerRole, c.Param("id"),
		intQuery(c, "page", 1), intQuery(c, "page_size", 10))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// BlockCustomerHandler blocks a customer from booking with the profile.
func (h *AdminHandler) BlockCustomerHandler(c *gin.Context) {
	var req models.BlockCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid block payload", err.Error())
		return
	}

	callerID, callerRole := h.caller(c)
	if err := h.Svc.BlockCustomer(c.Request.Context(), callerID, callerRole, c.Param("id"), req.Reason); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer blocked"})
}

// UnblockCustomerHandler lifts a customer block.
func (h *AdminHandler) UnblockCustomerHandler(c *gin.Context) {
	callerID, callerRole := h.caller(c)
	if err := h.Svc.UnblockCustomer(c.Request.Context(), callerID, callerRole, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer unblocked"})
}

// AddCustomerNoteHandler attaches an internal note to a customer.
func (h *AdminHandler) AddCustomerNoteHandler(c *gin.Context) {
	var req models.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid note payload", err.Error())
		return
	}

	callerID, callerRole := h.caller(c)
	note, err := h.Svc.AddCustomerNote(c.Request.Context(), callerID, callerRole, c.Param("id"), req.Note)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// GetCustomerNotesHandler lists a customer's internal notes.
func (h *AdminHandler) GetCustomerNotesHandler(c *gin.Context) {
	callerID, callerRole := h.caller(c)
	notes, err := h.Svc.GetCustomerNotes(c.Request.Context(), callerID, callerRole, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// DashboardHandler returns the headline dashboard statistics.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	callerID, callerRole := h.caller(c)
	stats, err := h.Svc.Dashboard(c.Request.Context(), callerID, callerRole)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// OverviewHandler returns aggregate analytics for a date range. The range
// defaults to the last 30 days.
func (h *AdminHandler) OverviewHandler(c *gin.Context) {
	start, ok := optionalDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := optionalDateQuery(c, "end_date")
	if !ok {
		return
	}

	endAt := time.Now().UTC()
	if end != nil {
		endAt = *end
	}
	startAt := endAt.Add(-defaultAnalyticsWindow)
	if start != nil {
		startAt = *start
	}

	callerID, callerRole := h.caller(c)
	overview, err := h.Svc.Overview(c.Request.Context(), callerID, callerRole, startAt, endAt)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// BookingTrendsHandler returns time-bucketed booking counts and revenue.
func (h *AdminHandler) BookingTrendsHandler(c *gin.Context) {
	start, ok := optionalDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := optionalDateQuery(c, "end_date")
	if !ok {
		return
	}

	endAt := time.Now().UTC()
	if end != nil {
		endAt = *end
	}
	startAt := endAt.Add(-defaultAnalyticsWindow)
	if start != nil {
		startAt = *start
	}
	granularity := c.DefaultQuery("granularity", "day")

	callerID, callerRole := h.caller(c)
	trends, err := h.Svc.BookingTrends(c.Request.Context(), callerID, callerRole, startAt, endAt, granularity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// DailyTrendsHandler returns the daily trend for the past N days.
func (h *AdminHandler) DailyTrendsHandler(c *gin.Context) {
	callerID, callerRole := h.caller(c)
	trends, err := h.Svc.DailyTrends(c.Request.Context(), callerID, callerRole, intQuery(c, "days", 30))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// PopularServicesHandler returns the top services by booking count.
func (h *AdminHandler) PopularServicesHandler(c *gin.Context) {
	start, ok := optionalDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := optionalDateQuery(c, "end_date")
	if !ok {
		return
	}

	callerID, callerRole := h.caller(c)
	services, err := h.Svc.PopularServices(c.Request.Context(), callerID, callerRole, start, end)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// PeakHoursHandler returns booking counts grouped by hour of day.
func (h *AdminHandler) PeakHoursHandler(c *gin.Context) {
	start, ok := optionalDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := optionalDateQuery(c, "end_date")
	if !ok {
		return
	}

	callerID, callerRole := h.caller(c)
	hours, err := h.Svc.PeakHours(c.Request.Context(), callerID, callerRole, start, end)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hours)
}

// ListActivitiesHandler returns the paginated activity log, newest first.
func (h *AdminHandler) ListActivitiesHandler(c *gin.Context) {
	callerID, callerRole := h.caller(c)
	page, err := h.Svc.ListActivities(c.Request.Context(), callerID, callerRole,
		intQuery(c, "page", 1), intQuery(c, "page_size", 20))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// intQuery reads an integer query parameter, falling back to def on absence
// or garbage.
func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// optionalDateQuery reads an optional YYYY-MM-DD query parameter. A present
// but malformed value writes a 400 and returns ok=false.
func optionalDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dateParamLayout, raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid "+name+", expected YYYY-MM-DD", err.Error())
		return nil, false
	}
	return &t, true
}
