// internal/models/auth.go
package models

import "time"

// Credentials is the login/signup request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is what the login endpoint yields: the bearer token plus the
// candidate profile when the account already has one.
type LoginResult struct {
	Token     string
	Candidate *CandidateProfile
}

// StoredUser is the identity blob persisted alongside the token, mirroring
// the `user` key of the original client.
type StoredUser struct {
	Email string `json:"email"`
}

// Session is the in-memory authentication state for the lifetime of one
// client. Exactly one session is live per client.
type Session struct {
	Token  string
	Email  string
	Expiry time.Time
}

// IsExpired reports whether the session token expiry has passed.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.Expiry.IsZero() && !s.Expiry.After(now)
}
