package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freshai/laundryfront/internal/client"
	"github.com/freshai/laundryfront/internal/logger"
	"github.com/freshai/laundryfront/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrUnknownService   = errors.New("unknown service")
	ErrInvalidQuantity  = errors.New("quantity must be a positive number")
	ErrMissingDate      = errors.New("pickup date is required")
	ErrDateInPast       = errors.New("pickup date must not be in the past")
	ErrUnknownTimeSlot  = errors.New("unknown time slot")
	ErrMissingAddress   = errors.New("pickup address is required")
	ErrInvalidOrderID   = errors.New("invalid order id format")
	ErrOrderNotFound    = errors.New("order not found")
)

// BookingService - оформление, отслеживание и история заказов
type BookingService interface {
	Quote(service string, quantity int) (decimal.Decimal, error)
	Submit(ctx context.Context, session *models.SessionData, request models.BookingRequest) (*models.OrderData, error)
	Track(ctx context.Context, session *models.SessionData, orderID string) (*models.OrderData, error)
	History(ctx context.Context, session *models.SessionData) (*models.OrderHistory, error)
}

type Booking struct {
	API client.LaundryAPI
}

// Создание сервиса
func NewBooking(api client.LaundryAPI) BookingService {
	return &Booking{API: api}
}

// Quote - оценка стоимости по прайсу. Для услуг без фиксированной
// цены возвращает ноль ("Custom Quote" на стороне клиента).
func (s *Booking) Quote(service string, quantity int) (decimal.Decimal, error) {
	info, ok := models.FindService(service)
	if !ok {
		return decimal.Zero, ErrUnknownService
	}
	return models.EstimateCost(info, quantity), nil
}

// Submit - оформление заказа. Вся валидация выполняется до единственного
// сетевого вызова: форма с ошибкой не порождает запроса к бекенду.
// Стоимость считается один раз здесь и больше не пересчитывается.
func (s *Booking) Submit(ctx context.Context, session *models.SessionData, request models.BookingRequest) (*models.OrderData, error) {
	info, ok := models.FindService(request.Service)
	if !ok {
		return nil, ErrUnknownService
	}
	if request.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if request.PickupDate.IsZero() {
		return nil, ErrMissingDate
	}
	if beforeToday(request.PickupDate) {
		return nil, ErrDateInPast
	}
	if !models.CheckTimeSlot(request.TimeSlot) {
		return nil, ErrUnknownTimeSlot
	}
	if request.Address == "" {
		return nil, ErrMissingAddress
	}

	amount := models.EstimateCost(info, request.Quantity)
	draft := models.OrderDraft{
		Service:    request.Service,
		Address:    request.Address,
		TimeSlot:   request.TimeSlot,
		Notes:      request.Notes,
		PickupDate: request.PickupDate,
		ItemsCount: request.Quantity,
		Amount:     amount.InexactFloat64(),
	}

	order, err := s.API.CreateOrder(ctx, session.AccessToken, draft)
	if err != nil {
		logger.Error("Failed to create order", zap.Error(err))
		return nil, err
	}

	logger.Info("Order created", order.ID)
	return order, nil
}

// Track - снимок одного заказа по идентификатору.
// Никакого опроса: состояние на момент запроса, не живая лента.
func (s *Booking) Track(ctx context.Context, session *models.SessionData, orderID string) (*models.OrderData, error) {
	if !models.CheckOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.API.GetOrder(ctx, session.AccessToken, orderID)
	if err != nil {
		if errors.Is(err, client.ErrOrderNotFound) {
			logger.Warn("Order not found", orderID)
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to track order: %w", err)
	}
	return order, nil
}

// History - список заказов пользователя в порядке выдачи бекенда
// плюс сводка, посчитанная по полученному набору
func (s *Booking) History(ctx context.Context, session *models.SessionData) (*models.OrderHistory, error) {
	orders, err := s.API.ListOrders(ctx, session.AccessToken)
	if err != nil {
		logger.Error("Failed to list orders", zap.Error(err))
		return nil, err
	}

	spent := decimal.Zero
	for _, order := range orders {
		spent = spent.Add(decimal.NewFromFloat(order.Amount))
	}

	return &models.OrderHistory{
		Orders: orders,
		Summary: models.OrderSummary{
			TotalOrders: len(orders),
			TotalSpent:  spent.InexactFloat64(),
		},
	}, nil
}

// beforeToday сравнивает только дату, время забора задаётся слотом
func beforeToday(t time.Time) bool {
	now := time.Now()
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	date := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return date.Before(today)
}
