package storage

import (
	"context"
	"errors"

	"github.com/freshai/laundryfront/internal/models"
)

// SessionsStorage - хранилище сессий. Единственное локальное состояние
// шлюза: токен бекенда и кешированный профиль живут только здесь.
type SessionsStorage interface {
	AddSession(ctx context.Context, session models.SessionData) error
	GetSession(ctx context.Context, sessionID string) (*models.SessionData, error)
	UpdateSessionUser(ctx context.Context, sessionID string, user models.UserData) error
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrAlreadyExists   = errors.New("already exists")
)
