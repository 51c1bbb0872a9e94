package userRepo

import (
	"bookify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	UpdateFields(id string, fields bson.M) error
	Delete(id string) error

	// Superadmin owner directory.
	ListOwners(page, limit int, search string, includeDeleted bool) ([]models.OwnerAccount, int64, error)
	GetOwner(id string) (*models.OwnerAccount, error)
}
