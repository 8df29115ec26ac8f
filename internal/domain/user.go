package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered application user.
// IsAdmin is granted out-of-band by an operator and never changed through the API.
type User struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	IsAdmin     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserCredentials pairs a user with the stored bcrypt password hash.
type UserCredentials struct {
	User         User
	PasswordHash string
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsUsable reports whether the token can still be exchanged at now.
// A token stops being usable at ExpiresAt, matching the cleanup query.
func (t *RefreshToken) IsUsable(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
