// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account able to authenticate against the API. Password material
// never leaves the entity as plaintext; only the bcrypt hash is stored.
type User struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

// DisplayName returns the name shown as post author in listings.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
