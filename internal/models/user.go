package models

import "time"

type Role string

const (
	RoleProvider Role = "PROVIDER"
	RoleSeeker   Role = "SEEKER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleProvider || r == RoleSeeker
}

// User is a marketplace account. Role and NeighborhoodID stay empty until the
// user completes onboarding.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	NeighborhoodID *string   `json:"neighborhood_id"`
	CreatedAt      time.Time `json:"created_at"`

	// Home is the joined home neighborhood, nil when none is set.
	Home *Neighborhood `json:"-"`
}

// HomeCellID returns the grid cell of the user's home neighborhood, or "" if
// the user has none.
func (u *User) HomeCellID() string {
	if u.Home == nil {
		return ""
	}
	return u.Home.CellID
}

// ProfileUpdate carries the onboarding fields.
type ProfileUpdate struct {
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	NeighborhoodID string `json:"neighborhood_id"`
}
