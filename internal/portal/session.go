package portal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSession is returned when no token is available for a request.
	ErrNoSession = errors.New("no session token")
	// ErrSessionExpired is returned before any request is sent with an expired token.
	ErrSessionExpired = errors.New("session token expired")
)

// Session carries the bearer token of the signed-in user. It is passed
// explicitly to every fetch.
type Session struct {
	Token string
}

// NewSession builds a Session from a raw token, accepting an optional
// "Bearer " prefix.
func NewSession(token string) (Session, error) {
	token = strings.TrimSpace(token)
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return Session{}, ErrNoSession
	}
	return Session{Token: token}, nil
}

// Claims decodes the token's registered claims without verifying the
// signature. Verification is the portal's job; the client only reads expiry
// and subject.
func (s Session) Claims() (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	return claims, nil
}

// Subject is the token subject, or "" for opaque tokens.
func (s Session) Subject() string {
	claims, err := s.Claims()
	if err != nil {
		return ""
	}
	return claims.Subject
}

// Expired reports whether the token carries an expiry at or before now.
// Opaque tokens are never considered expired locally.
func (s Session) Expired(now time.Time) bool {
	claims, err := s.Claims()
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
