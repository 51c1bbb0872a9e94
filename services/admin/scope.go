package admin

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"bookify/models"
	"bookify/utils"
)

// scopeFor resolves the caller's data scope. OWNERs are bound to their first
// profile; ADMIN and SUPERADMIN get a nil, platform-wide scope.
func (s *DefaultAdminService) scopeFor(callerID, callerRole string) (*models.OwnerScope, error) {
	if callerRole == models.RoleAdmin || callerRole == models.RoleSuperAdmin {
		return nil, nil
	}
	return s.profileScope(callerID)
}

// profileScope always binds to the caller's own profile, regardless of role.
// Used by actions that only make sense against a concrete profile, like
// blocking a customer.
func (s *DefaultAdminService) profileScope(callerID string) (*models.OwnerScope, error) {
	prof, err := s.Profiles.GetFirstByOwner(callerID)
	if err != nil {
		utils.GetLogger().Error("Failed to resolve owner profile", zap.Error(err))
		return nil, err
	}
	if prof == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "No profile found for this owner")
	}
	return &models.OwnerScope{ProfileID: prof.ID, OwnerUserID: callerID}, nil
}

// requireBookingAccess loads a booking and checks it is visible in scope:
// either it targets the scoped profile or its customer belongs to the owner.
func (s *DefaultAdminService) requireBookingAccess(ctx context.Context, bookingID string, scope *models.OwnerScope) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking", zap.Error(err))
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewServiceError(http.StatusNotFound, "Booking not found")
	}
	if scope == nil || booking.ProfileID == scope.ProfileID {
		return booking, nil
	}

	customer, err := s.Users.GetByID(booking.UserID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking customer", zap.Error(err))
		return nil, err
	}
	if customer != nil && customer.OwnerID == scope.OwnerUserID {
		return booking, nil
	}
	return nil, utils.NewServiceError(http.StatusForbidden, "You don't have access to this booking")
}

// logActivity records an audit entry; failures are logged, never surfaced.
func (s *DefaultAdminService) logActivity(ctx context.Context, callerID, profileID, action, entityType, entityID string, details map[string]interface{}) {
	name := ""
	if u, err := s.Users.GetByID(callerID); err == nil && u != nil {
		name = u.Name
	}
	entry := &models.ActivityLog{
		UserID:     callerID,
		UserName:   name,
		ProfileID:  profileID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
	if err := s.Repo.LogActivity(ctx, entry); err != nil {
		utils.GetLogger().Warn("Failed to log activity", zap.String("action", action), zap.Error(err))
	}
}
