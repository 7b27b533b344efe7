package entity

import "time"

// Valid roles for User.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// User represents a system user. Username is unique. Email is optional:
// only managers with a non-empty email receive expiring-sale notifications.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, never the plain password after persisting
	Role         string // employee, manager
	Email        string // optional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EligibleRecipient reports whether this user should receive the
// expiring-sales digest.
func (u *User) EligibleRecipient() bool {
	return u.Role == RoleManager && u.Email != ""
}
