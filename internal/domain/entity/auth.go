package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is one account's password secret. Exactly one exists per user.
// StoredHash self-describes algorithm, cost and salt; it is never logged.
type Credential struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	StoredHash string
	CostFactor int // work factor fixed when StoredHash was produced
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 of the raw refresh token; the raw value is never stored.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// IsExpired reports whether the token is past its expiry at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
