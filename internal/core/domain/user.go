package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Permissions are per-user capability flags checked on top of the role.
// Admins implicitly hold every flag.
type Permissions struct {
	CanAddHistorical bool `json:"canAddHistorical"`
}

// User models a front-desk account held in the credential store.
type User struct {
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Role         string      `json:"role"`
	Permissions  Permissions `json:"permissions"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}

// CanAddHistorical reports whether the user may create a back-dated
// appointment with an explicit serial number. Admins always can.
func (u *User) CanAddHistorical() bool {
	return u.Role == RoleAdmin || u.Permissions.CanAddHistorical
}
