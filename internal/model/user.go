package model

import "time"

// Roles a user may hold.  Members register through the public API; admins
// are promoted directly in the database.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// DefaultProfilePicture is stored for users that never uploaded a picture.
const DefaultProfilePicture = "user.jpg"

// User represents a row of the `users` table.
//
// Password holds the PBKDF2 hash and is never rendered to JSON.  The
// activation code is the hash of the user's own ID and is set once, at
// registration.
type User struct {
	ID             string    `json:"_id"`
	FullName       string    `json:"fullName"`
	UserName       string    `json:"userName"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	Role           string    `json:"role"`
	ProfilePicture string    `json:"profilePicture"`
	IsActive       bool      `json:"isActive"`
	ActivationCode string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
