package models

import "time"

// Session binds an opaque token to a user identity and role. Username holds
// the role-specific login identifier (student ID for students).
type Session struct {
	Token     string    `json:"token" db:"token"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// User returns the client-facing identity carried by the session.
func (s *Session) User() SessionUser {
	return SessionUser{
		ID:       s.UserID,
		Username: s.Username,
		Role:     s.Role,
	}
}
