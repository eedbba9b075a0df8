package services

import (
	"context"
	"errors"
	"time"

	"github.com/freshai/laundryfront/internal/client"
	"github.com/freshai/laundryfront/internal/config"
	"github.com/freshai/laundryfront/internal/logger"
	"github.com/freshai/laundryfront/internal/models"
	"github.com/freshai/laundryfront/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)

const (
	TokenSecterAlgo = "HS256"
)

// SessionsService - жизненный цикл сессии: вход, выход, проверка.
// Сессия - единственная связка "клиент - токен бекенда".
type SessionsService interface {
	Register(ctx context.Context, profile models.SignupRequest) (*models.UserData, error)
	Login(ctx context.Context, email string, password string) (string, *models.UserData, error)
	Logout(ctx context.Context, sessionID string) error
	Probe(ctx context.Context, sessionID string) (*models.UserData, error)
	GetSession(ctx context.Context, sessionID string) (*models.SessionData, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Sessions struct {
	JWTAuth    *jwtauth.JWTAuth
	API        client.LaundryAPI
	Storage    storage.SessionsStorage
	SessionTTL time.Duration
}

// Создание сервиса
func NewSessions(cfg config.Config, api client.LaundryAPI, storage storage.SessionsStorage) SessionsService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Sessions{JWTAuth: tokenAuth, API: api, Storage: storage, SessionTTL: cfg.Server.SessionTTL}
}

// Регистрация нового пользователя. Шлюз ничего не хранит,
// профиль с паролем уходит бекенду как есть.
func (s *Sessions) Register(ctx context.Context, profile models.SignupRequest) (*models.UserData, error) {
	logger.Info("Register user:", profile.Email)

	user, err := s.API.Signup(ctx, profile)
	if err != nil {
		logger.Warn("Error register user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Login - аутентификация на бекенде и создание сессии.
// После обмена учётных данных на токен сразу делаем пробу /auth/me:
// профиль пользователя кладётся в сессию вместе с токеном.
func (s *Sessions) Login(ctx context.Context, email string, password string) (string, *models.UserData, error) {
	logger.Info("Authenticate user", email)

	token, err := s.API.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			logger.Warn("Authentication failed", email)
			return "", nil, ErrInvalidCredentials
		}
		logger.Error("Error authenticate user", zap.Error(err))
		return "", nil, err
	}

	user, err := s.API.CurrentUser(ctx, token)
	if err != nil {
		logger.Error("Failed to probe session", zap.Error(err))
		return "", nil, err
	}

	now := time.Now()
	session := models.SessionData{
		ID:          uuid.NewString(),
		AccessToken: token,
		User:        *user,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.SessionTTL),
	}
	if err := s.Storage.AddSession(ctx, session); err != nil {
		logger.Error("Failed to store session", zap.Error(err))
		return "", nil, err
	}

	jwt, err := s.GenerateJWT(session.ID, session.ExpiresAt)
	if err != nil {
		logger.Error("Failed to generate token", zap.Error(err))
		return "", nil, err
	}

	logger.Info("User authenticated", email)
	return jwt, user, nil
}

// Logout - безусловное удаление сессии, на бекенд ничего не уходит
func (s *Sessions) Logout(ctx context.Context, sessionID string) error {
	logger.Info("Logout session:", sessionID)
	return s.Storage.DeleteSession(ctx, sessionID)
}

// Probe - проверка сессии на бекенде. Успех обновляет кешированный
// профиль, отказ бекенда молча удаляет сессию: пользователь разлогинен.
func (s *Sessions) Probe(ctx context.Context, sessionID string) (*models.UserData, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := s.API.CurrentUser(ctx, session.AccessToken)
	if err != nil {
		logger.Warn("Session probe rejected, dropping session", sessionID)
		if dErr := s.Storage.DeleteSession(ctx, sessionID); dErr != nil {
			logger.Error("Failed to delete session", zap.Error(dErr))
		}
		return nil, ErrSessionNotFound
	}

	if err := s.Storage.UpdateSessionUser(ctx, sessionID, *user); err != nil {
		logger.Error("Failed to update session user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// GetSession - чтение сессии из хранилища без обращения к бекенду
func (s *Sessions) GetSession(ctx context.Context, sessionID string) (*models.SessionData, error) {
	session, err := s.Storage.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		logger.Error("Failed to get session", zap.Error(err))
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Создание строки JWT токена c идентификатором сессии
func (s *Sessions) GenerateJWT(sessionID string, expiresAt time.Time) (string, error) {
	_, tokenString, err := s.JWTAuth.Encode(map[string]interface{}{
		"session_id": sessionID,
		"exp":        expiresAt,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (s *Sessions) GetTokenAuth() *jwtauth.JWTAuth {
	return s.JWTAuth
}
