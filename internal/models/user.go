// Package models holds the credential record and the identity derived from it.
package models

import "time"

// User is a persisted credential record. Salt and PasswordHash are always
// written together; the raw password is never stored.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Salt         string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Identity is an authenticated user without password material.
type Identity struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

// Identity strips salt and hash from u.
func (u *User) Identity() Identity {
	return Identity{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
	}
}

// DisplayName is "First Last".
func (i Identity) DisplayName() string {
	return i.FirstName + " " + i.LastName
}
