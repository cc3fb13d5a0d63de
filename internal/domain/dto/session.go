package dto

import "time"

// SessionClaims is what a validated session token asserts.
type SessionClaims struct {
	SessionID string    `json:"session_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionToken is a signed session token and its expiry.
type SessionToken struct {
	Token     string
	ExpiresAt time.Time
}
