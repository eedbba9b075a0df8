package models

import "time"

// UserData - профиль пользователя, как его отдаёт бекенд (/auth/me)
type UserData struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

// SignupRequest - модель для регистрации пользователя, приходит извне
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginRequest - модель для аутентификации пользователя, приходит извне
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionData - модель сессии из хранилища. Токен бекенда наружу не уходит,
// клиенту выдаётся только JWT с идентификатором сессии.
type SessionData struct {
	ID          string
	AccessToken string
	User        UserData
	CreatedAt   time.Time
	ExpiresAt   time.Time
}
