// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the sole entity in the system, representing a registered account.
// The ID is the store-native object identifier (24 hexadecimal characters)
// and is assigned by the store on creation; it never changes afterwards.
type User struct {
	ID           string    // Opaque store-assigned identifier (24-char hex).
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	Email        string    // Login identifier; unique across all users.
	PasswordHash string    // bcrypt digest of the password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Sanitized returns a copy of the user with the password hash cleared.
// Every read path hands records to callers through this method so no
// password material crosses the service boundary.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""

	return &clone
}
