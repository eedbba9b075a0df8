package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/freshai/laundryfront/internal/client"
	"github.com/freshai/laundryfront/internal/helpers"
	"github.com/freshai/laundryfront/internal/logger"
	"github.com/freshai/laundryfront/internal/models"
	"github.com/freshai/laundryfront/internal/services"
	"go.uber.org/zap"
)

// SessionCookie - имя куки с JWT сессии, его же ищет jwtauth.Verifier
const SessionCookie = "jwt"

// RegisterUserHandler — регистрация нового пользователя, заявка уходит бекенду как есть
func RegisterUserHandler(s services.SessionsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var profile models.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if profile.Email == "" || profile.Password == "" {
			http.Error(w, "Email and password are required", http.StatusBadRequest)
			return
		}

		user, err := s.Register(r.Context(), profile)
		if err != nil {
			WriteBackendError(w, err)
			return
		}

		logger.Info("User registered", user.Email)
		WriteJSON(w, user)
	})
}

// AuthenticateUserHandler — аутентификация пользователя.
// При отказе бекенда сессия не создаётся и кука не выставляется.
func AuthenticateUserHandler(s services.SessionsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var credentials models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		token, user, err := s.Login(r.Context(), credentials.Email, credentials.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				http.Error(w, "Invalid email/password", http.StatusUnauthorized)
				return
			}
			WriteBackendError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		WriteJSON(w, user)
	})
}

// LogoutUserHandler — безусловное завершение сессии
func LogoutUserHandler(s services.SessionsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := helpers.GetSessionID(r.Context())
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if err := s.Logout(r.Context(), sessionID); err != nil {
			logger.Error("Failed to logout", zap.Error(err))
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:    SessionCookie,
			Value:   "",
			Path:    "/",
			Expires: time.Unix(0, 0),
		})
		w.WriteHeader(http.StatusOK)
	})
}

// CurrentUserHandler — проба сессии на бекенде. Отказ разлогинивает.
func CurrentUserHandler(s services.SessionsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := helpers.GetSessionID(r.Context())
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		user, err := s.Probe(r.Context(), sessionID)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				http.Error(w, "Session expired", http.StatusUnauthorized)
				return
			}
			logger.Error("Failed to probe session", zap.Error(err))
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		WriteJSON(w, user)
	})
}

// WriteJSON - выдача ответа в JSON
func WriteJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// WriteBackendError - трансляция ошибки бекенда наружу.
// Описание из поля detail уже извлечено клиентом бекенда.
func WriteBackendError(w http.ResponseWriter, err error) {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, client.ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.As(err, &apiErr):
		http.Error(w, apiErr.Detail, apiErr.StatusCode)
	default:
		logger.Error("Backend request failed", zap.Error(err))
		http.Error(w, "Server error", http.StatusInternalServerError)
	}
}
