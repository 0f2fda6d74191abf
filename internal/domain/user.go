package domain

import "time"

// Role enumerates the access levels recognised by the service.
type Role string

const (
	RoleStudent              Role = "STUDENT"
	RolePlacementCoordinator Role = "PLACEMENT_COORDINATOR"
	RoleAdmin                Role = "ADMIN"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RolePlacementCoordinator, RoleAdmin:
		return true
	}
	return false
}

// User is the identity record for anyone who can log in: students,
// placement coordinators, and admins.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
