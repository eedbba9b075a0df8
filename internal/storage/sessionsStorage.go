package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freshai/laundryfront/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	GetSession = `SELECT access_token, user_id, email, full_name, is_superuser, created_at, expires_at
				  FROM SESSIONS WHERE id=$1;`
	InsertSession = `INSERT INTO SESSIONS (id, access_token, user_id, email, full_name, is_superuser, created_at, expires_at)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	UpdateSessionUser = `UPDATE SESSIONS
						 SET
						     user_id = $1,
						     email = $2,
						     full_name = $3,
						     is_superuser = $4
						 WHERE id = $5;`
	DeleteSession         = `DELETE FROM SESSIONS WHERE id=$1;`
	DeleteExpiredSessions = `DELETE FROM SESSIONS WHERE expires_at < NOW();`
)

type SessionDatabase struct {
	DB *Database
}

// Создание хранилища
func NewSessionsStorage(db *Database) SessionsStorage {
	return &SessionDatabase{DB: db}
}

func (s *SessionDatabase) AddSession(ctx context.Context, session models.SessionData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertSession,
		session.ID,
		session.AccessToken,
		session.User.ID,
		session.User.Email,
		session.User.FullName,
		session.User.IsSuperuser,
		session.CreatedAt,
		session.ExpiresAt,
	)

	if err == nil {
		return nil
	}

	// Проверяем именно нарушение уникальности
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}

	return fmt.Errorf("failed to add session: %w", err)
}

func (s *SessionDatabase) GetSession(ctx context.Context, sessionID string) (*models.SessionData, error) {
	var (
		accessToken string
		userID      int64
		email       string
		fullName    string
		isSuperuser bool
		createdAt   time.Time
		expiresAt   time.Time
	)

	err := s.DB.Pool.QueryRow(ctx, GetSession, sessionID).Scan(
		&accessToken,
		&userID,
		&email,
		&fullName,
		&isSuperuser,
		&createdAt,
		&expiresAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &models.SessionData{
		ID:          sessionID,
		AccessToken: accessToken,
		User: models.UserData{
			ID:          userID,
			Email:       email,
			FullName:    fullName,
			IsSuperuser: isSuperuser,
		},
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *SessionDatabase) UpdateSessionUser(ctx context.Context, sessionID string, user models.UserData) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateSessionUser,
		user.ID,
		user.Email,
		user.FullName,
		user.IsSuperuser,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *SessionDatabase) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := s.DB.Pool.Exec(ctx, DeleteSession, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions - зачистка протухших сессий, вызывается воркером
func (s *SessionDatabase) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	tag, err := s.DB.Pool.Exec(ctx, DeleteExpiredSessions)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
