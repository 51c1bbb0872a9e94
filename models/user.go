package models

import "time"

// Account roles. OWNER accounts run a business profile; ADMIN and SUPERADMIN
// are platform staff.
const (
	RoleUser       = "USER"
	RoleOwner      = "OWNER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

// User is a platform account.
type User struct {
	ID                 string    `bson:"id" json:"id"`
	Username           string    `bson:"username" json:"username"`
	Name               string    `bson:"name" json:"name"`
	Email              string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone              string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash       string    `bson:"password_hash" json:"-"`
	Role               string    `bson:"role" json:"role"`
	OwnerID            string    `bson:"owner_id,omitempty" json:"owner_id,omitempty"` // Owner this customer account belongs to, if any
	IsActive           bool      `bson:"is_active" json:"is_active"`
	IsDeleted          bool      `bson:"is_deleted" json:"is_deleted"`
	MustChangePassword bool      `bson:"must_change_password" json:"must_change_password"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRegister is the self-service registration payload.
type UserRegister struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

// UserLogin is the login payload.
type UserLogin struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PublicView strips credential fields for API responses.
func (u *User) PublicView() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
