package storage

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound indicates that no saved session exists
var ErrSessionNotFound = errors.New("session not found")

// Session представляет сохраненную сессию пользователя
type Session struct {
	Email     string    `json:"email"`      // email, под которым выполнен вход
	Token     string    `json:"token"`      // JWT access token
	CreatedAt time.Time `json:"created_at"` // время логина
}

// SessionStorage defines interface for client-side session persistence
type SessionStorage interface {
	// SaveSession stores the current session, replacing any previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	// Returns ErrSessionNotFound if no session exists
	DeleteSession(ctx context.Context) error
}
