package models

import "time"

// OwnerAccount is an owner as seen by the superadmin console.
type OwnerAccount struct {
	ID                 string    `bson:"id" json:"id"`
	Username           string    `bson:"username" json:"username"`
	Name               string    `bson:"name" json:"name"`
	Email              string    `bson:"email,omitempty" json:"email,omitempty"`
	Role               string    `bson:"role" json:"role"`
	IsActive           bool      `bson:"is_active" json:"is_active"`
	IsDeleted          bool      `bson:"is_deleted" json:"is_deleted"`
	MustChangePassword bool      `bson:"must_change_password" json:"must_change_password"`
	ProfileCount       int       `bson:"profile_count" json:"profile_count"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

// OwnerListResponse is the paginated owner directory.
type OwnerListResponse struct {
	Items      []OwnerAccount `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// OwnerCreate provisions a new owner account. When Password is empty the
// account gets the default password and must change it on first login.
type OwnerCreate struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// OwnerUpdate patches an owner account. Nil fields are left untouched.
type OwnerUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
