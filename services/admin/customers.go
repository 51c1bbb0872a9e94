package admin

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookify/models"
	"bookify/utils"
)

const (
	defaultHistoryPageSize = 10
	maxHistoryPageSize     = 50
)

// ListCustomers returns customers with their booking statistics for the
// caller's scope.
func (s *DefaultAdminService) ListCustomers(ctx context.Context, callerID, callerRole string, q models.CustomerListQuery) (*models.PaginatedCustomers, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	q.Page, q.PageSize = clampPage(q.Page, q.PageSize, defaultPageSize, maxPageSize)

	items, total, err := s.Repo.ListCustomers(ctx, q, scope)
	if err != nil {
		utils.GetLogger().Error("Failed to list customers", zap.Error(err))
		return nil, err
	}
	return &models.PaginatedCustomers{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages(total, q.PageSize),
	}, nil
}

// GetCustomer returns one customer's stats. Owners only see customers who
// have booked with their profile.
func (s *DefaultAdminService) GetCustomer(ctx context.Context, callerID, callerRole, customerID string) (*models.Customer, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}

	stats, err := s.Repo.GetCustomerStats(ctx, customerID, scope)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch customer stats", zap.Error(err))
		return nil, err
	}
	if stats == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Customer not found")
	}
	if scope != nil && stats.TotalBookings == 0 {
		return nil, utils.NewServiceError(http.StatusNotFound, "Customer not found or has no bookings with your profile")
	}
	return stats, nil
}

// GetCustomerBookings returns the customer's booking history in scope.
func (s *DefaultAdminService) GetCustomerBookings(ctx context.Context, callerID, callerRole, customerID string, page, pageSize int) (*models.PaginatedBookings, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	page, pageSize = clampPage(page, pageSize, defaultHistoryPageSize, maxHistoryPageSize)

	profileID := ""
	if scope != nil {
		profileID = scope.ProfileID
	}
	bookings, total, err := s.Bookings.GetByUserAndProfile(ctx, customerID, profileID, page, pageSize)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch customer bookings", zap.Error(err))
		return nil, err
	}

	items := make([]models.AdminBooking, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, s.toAdminBooking(b))
	}
	return &models.PaginatedBookings{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// toAdminBooking enriches a raw booking with profile and service info for
// the history listing.
func (s *DefaultAdminService) toAdminBooking(b models.Booking) models.AdminBooking {
	row := models.AdminBooking{
		ID:         b.ID,
		BookingRef: b.BookingRef,
		UserID:     b.UserID,
		ProfileID:  b.ProfileID,
		ServiceID:  b.ServiceID,
		Date:       b.Date,
		TimeSlot:   b.TimeSlot,
		Status:     b.Status,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	if prof, err := s.Profiles.GetByID(b.ProfileID); err == nil && prof != nil {
		row.ProfileName = prof.Name
		if b.ServiceID != "" {
			if svc, ok := prof.ServiceByID(b.ServiceID); ok {
				row.ServiceName = svc.Title
				row.ServicePrice = svc.Price
			}
		}
	}
	return row
}

// BlockCustomer stops a customer from booking with the caller's profile.
func (s *DefaultAdminService) BlockCustomer(ctx context.Context, callerID, callerRole, customerID, reason string) error {
	scope, err := s.profileScope(callerID)
	if err != nil {
		return err
	}

	customer, err := s.Users.GetByID(customerID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch customer", zap.Error(err))
		return err
	}
	if customer == nil {
		return utils.NewServiceError(http.StatusNotFound, "Customer not found")
	}

	existing, err := s.Repo.GetBlock(ctx, customerID, scope.ProfileID)
	if err != nil {
		utils.GetLogger().Error("Failed to check block", zap.Error(err))
		return err
	}
	if existing != nil {
		return utils.NewServiceError(http.StatusBadRequest, "Customer is already blocked")
	}

	block := &models.BlockedCustomer{
		ID:        uuid.New().String(),
		UserID:    customerID,
		ProfileID: scope.ProfileID,
		BlockedBy: callerID,
		Reason:    reason,
	}
	if err := s.Repo.BlockCustomer(ctx, block); err != nil {
		utils.GetLogger().Error("Failed to block customer", zap.Error(err))
		return err
	}
	s.logActivity(ctx, callerID, scope.ProfileID, "customer_blocked", "customer", customerID,
		map[string]interface{}{"reason": reason})
	return nil
}

// UnblockCustomer lifts a block.
func (s *DefaultAdminService) UnblockCustomer(ctx context.Context, callerID, callerRole, customerID string) error {
	scope, err := s.profileScope(callerID)
	if err != nil {
		return err
	}

	existed, err := s.Repo.UnblockCustomer(ctx, customerID, scope.ProfileID)
	if err != nil {
		utils.GetLogger().Error("Failed to unblock customer", zap.Error(err))
		return err
	}
	if !existed {
		return utils.NewServiceError(http.StatusBadRequest, "Customer is not blocked")
	}
	s.logActivity(ctx, callerID, scope.ProfileID, "customer_unblocked", "customer", customerID, nil)
	return nil
}

// AddCustomerNote records an internal note about a customer.
func (s *DefaultAdminService) AddCustomerNote(ctx context.Context, callerID, callerRole, customerID, note string) (*models.CustomerNote, error) {
	scope, err := s.profileScope(callerID)
	if err != nil {
		return nil, err
	}

	customer, err := s.Users.GetByID(customerID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch customer", zap.Error(err))
		return nil, err
	}
	if customer == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Customer not found")
	}

	name := ""
	if u, err := s.Users.GetByID(callerID); err == nil && u != nil {
		name = u.Name
	}
	entry := &models.CustomerNote{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		ProfileID:     scope.ProfileID,
		Note:          note,
		CreatedBy:     callerID,
		CreatedByName: name,
	}
	if err := s.Repo.AddCustomerNote(ctx, entry); err != nil {
		utils.GetLogger().Error("Failed to add customer note", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// GetCustomerNotes lists the caller's notes about a customer.
func (s *DefaultAdminService) GetCustomerNotes(ctx context.Context, callerID, callerRole, customerID string) ([]models.CustomerNote, error) {
	scope, err := s.scopeFor(callerID, callerRole)
	if err != nil {
		return nil, err
	}
	profileID := ""
	if scope != nil {
		profileID = scope.ProfileID
	}

	notes, err := s.Repo.GetCustomerNotes(ctx, customerID, profileID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch customer notes", zap.Error(err))
		return nil, err
	}
	return notes, nil
}
