// Package token decodes the bearer tokens the remote API issues. The API
// owns the signing key, so the client validates structure and claims but
// cannot verify the signature; expiry is enforced by the session manager.
package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the registered claims plus the candidate id some tokens embed.
type Claims struct {
	CandidateID int64  `json:"candidateId,omitempty"`
	Email       string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the decoded view of a token the session manager works with.
type Identity struct {
	Email       string
	Expiry      time.Time // zero when the token carries no exp claim
	CandidateID int64     // 0 when the token embeds no candidate id
}

// Decode parses a compact JWT and extracts the session identity. The
// subject claim is the account email; an explicit email claim is the
// fallback for issuers that put an opaque id in sub.
func Decode(tokenString string) (*Identity, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}

	email := claims.Subject
	if !strings.Contains(email, "@") && claims.Email != "" {
		email = claims.Email
	}

	id := &Identity{
		Email:       email,
		CandidateID: claims.CandidateID,
	}
	if claims.ExpiresAt != nil {
		id.Expiry = claims.ExpiresAt.Time
	}
	return id, nil
}

// Expired reports whether the identity's expiry is at or before now. A
// token without an exp claim never expires client-side.
func (i *Identity) Expired(now time.Time) bool {
	return !i.Expiry.IsZero() && !i.Expiry.After(now)
}
