package domain

import (
	"time"

	"github.com/vitaran/vitaran/pkg/plans"
)

type User struct {
	ID           string
	Name         string
	Email        string // normalized: trimmed + lowercased
	Phone        string // 10 digits
	PasswordHash string // bcrypt encoded
	Plan         *plans.ID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPlan reports whether the user has picked a subscription tier.
func (u User) HasPlan() bool { return u.Plan != nil }

// Profile is the part of a user that is safe to hand back to its owner.
type Profile struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Plan  *plans.ID `json:"plan"`
}

func (u User) Profile() Profile {
	return Profile{Name: u.Name, Email: u.Email, Plan: u.Plan}
}
