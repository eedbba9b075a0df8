package services

import (
	"context"
	"errors"

	"github.com/freshai/laundryfront/internal/client"
	"github.com/freshai/laundryfront/internal/logger"
	"github.com/freshai/laundryfront/internal/models"
	"go.uber.org/zap"
)

var (
	ErrNotAuthorized = errors.New("not authorized")
	ErrUnknownStatus = errors.New("unknown status")
)

// AdminService - консоль заказов для персонала
type AdminService interface {
	ListAll(ctx context.Context, session *models.SessionData) ([]models.OrderData, error)
	SetStatus(ctx context.Context, session *models.SessionData, orderID string, status string) ([]models.OrderData, error)
}

type Admin struct {
	API client.LaundryAPI
}

// Создание сервиса
func NewAdmin(api client.LaundryAPI) AdminService {
	return &Admin{API: api}
}

// ListAll - все заказы всех пользователей, только для суперпользователя
func (s *Admin) ListAll(ctx context.Context, session *models.SessionData) ([]models.OrderData, error) {
	if !session.User.IsSuperuser {
		return nil, ErrNotAuthorized
	}

	orders, err := s.API.ListAllOrders(ctx, session.AccessToken)
	if err != nil {
		logger.Error("Failed to list all orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// SetStatus - смена статуса заказа. Проверяется только принадлежность
// статуса набору, порядок переходов не ограничен. После успешного PATCH
// список перечитывается целиком: никакого локального частичного обновления.
func (s *Admin) SetStatus(ctx context.Context, session *models.SessionData, orderID string, status string) ([]models.OrderData, error) {
	if !session.User.IsSuperuser {
		return nil, ErrNotAuthorized
	}
	if !models.CheckStatus(status) {
		return nil, ErrUnknownStatus
	}

	if _, err := s.API.UpdateOrderStatus(ctx, session.AccessToken, orderID, status); err != nil {
		if errors.Is(err, client.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to update order status", zap.Error(err))
		return nil, err
	}

	logger.Info("Order status updated", orderID, status)
	return s.API.ListAllOrders(ctx, session.AccessToken)
}
