package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session binds a browsing client to one authenticated user. Sessions live
// until logout; there is no expiry of our own beyond the cookie lifetime.
type Session struct {
	ID        string    `db:"id"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

func NewSession(userID int64) *Session {
	return &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
}
