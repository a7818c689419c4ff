package domain

import "time"

type PasswordResetToken struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (t PasswordResetToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
