package helpers

import (
	"context"
	"fmt"

	"github.com/freshai/laundryfront/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// GetSessionID - извлекает идентификатор сессии из контекста JWT токена
func GetSessionID(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	sessionID, ok := claims["session_id"].(string)
	if !ok {
		logger.Warn("Undefined session id from token")
		return "", fmt.Errorf("undefined session id")
	}
	return sessionID, nil
}
