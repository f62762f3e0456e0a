package model

import "time"

// UserID uniquely identifies an account in the auth backend.
type UserID string

// Metadata keys the backend stores alongside a user. These mirror the
// profile columns so a returning user's setup screen can be pre-filled
// without a round trip.
const (
	MetaFullName    = "full_name"
	MetaDateOfBirth = "date_of_birth"
	MetaRole        = "role"
	MetaAccountType = "account_type"
	MetaIsUnder18   = "is_under_18"
)

// User is an account held by the external auth service.
type User struct {
	ID        UserID
	Email     string
	Metadata  map[string]string
	CreatedAt time.Time
}

// Session represents an authenticated identity. It is created by the auth
// backend on sign-in/sign-up and cleared on sign-out; this module only ever
// holds a read-only reference.
type Session struct {
	UserID    UserID
	Email     string
	Metadata  map[string]string
	ExpiresAt time.Time
}

// Meta returns the named metadata value, or "" when absent.
func (s *Session) Meta(key string) string {
	if s == nil || s.Metadata == nil {
		return ""
	}
	return s.Metadata[key]
}

// AccountData is the transient record captured when account creation
// succeeds and consumed by the profile setup step. It is discarded after
// profile submission or on return to login.
type AccountData struct {
	FullName    string
	DateOfBirth string // format depends on the capturing flow (ISO or UK)
	Email       string
	UserID      UserID
}
