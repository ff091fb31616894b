// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account represents an authenticated user of the registry with a role.
// An account proves its identity either with a stored password hash or
// through Google sign-in; both fields may technically coexist but exactly
// one of them is meaningful.
type Account struct {
	ID           int64     // Surrogate key assigned by the store on creation.
	Username     string    // Display name; uniqueness is not enforced beyond email lookup.
	Email        string    // Login identifier and token subject; unique by convention.
	PasswordHash string    // bcrypt hash; empty when the account authenticates through Google.
	Role         Role      // Member of the closed role set.
	IsGoogleAuth bool      // True when the account was created via Google sign-in.
	GoogleID     string    // Google 'sub' claim; set only when IsGoogleAuth is true.
	IsAuthorized bool      // An account cannot obtain a bearer token while false.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// CanLogin reports whether the account passed the admin approval gate.
// It says nothing about credential validity.
func (a *Account) CanLogin() bool {
	return a.IsAuthorized
}
