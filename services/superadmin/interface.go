package superadmin

import (
	profileRepo "bookify/database/repository/profile"
	userRepo "bookify/database/repository/user"
	"bookify/models"
)

// DefaultOwnerPassword is assigned when a new owner is provisioned without
// an explicit password; the account must change it on first login.
const DefaultOwnerPassword = "changeme123"

type SuperadminService interface {
	ListOwners(page, limit int, search string, includeDeleted bool) (*models.OwnerListResponse, error)
	CreateOwner(req models.OwnerCreate) (*models.OwnerAccount, error)
	GetOwner(ownerID string) (*models.OwnerAccount, error)
	UpdateOwner(ownerID string, req models.OwnerUpdate) (*models.OwnerAccount, error)
	DeleteOwner(ownerID string) error
	RestoreOwner(ownerID string) (*models.OwnerAccount, error)
	ResetOwnerPassword(ownerID string) error
}

// DefaultSuperadminService is the production implementation.
type DefaultSuperadminService struct {
	Users    userRepo.UserRepository
	Profiles profileRepo.ProfileRepository
}
