package models

import "time"

// Статусы заказов
const (
	OrderStatusPending    = "Pending"
	OrderStatusInProgress = "In Progress"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

// OrderData - модель заказа, как её отдаёт бекенд
type OrderData struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"user_id"`
	Service    string    `json:"service"`
	PickupDate time.Time `json:"pickup_date"`
	TimeSlot   string    `json:"time_slot"`
	Address    string    `json:"address"`
	Notes      string    `json:"notes,omitempty"`
	Amount     float64   `json:"amount"`
	ItemsCount int       `json:"items_count"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderDraft - заявка на создание заказа, отправляется бекенду.
// Amount считается один раз при оформлении, дальше верим тому, что вернул бекенд.
type OrderDraft struct {
	Service    string    `json:"service"`
	Address    string    `json:"address"`
	TimeSlot   string    `json:"time_slot"`
	Notes      string    `json:"notes,omitempty"`
	PickupDate time.Time `json:"pickup_date"`
	ItemsCount int       `json:"items_count"`
	Amount     float64   `json:"amount"`
}

// BookingRequest - форма оформления заказа, приходит извне
type BookingRequest struct {
	Service    string    `json:"service"`
	Quantity   int       `json:"quantity"`
	PickupDate time.Time `json:"pickup_date"`
	TimeSlot   string    `json:"time_slot"`
	Address    string    `json:"address"`
	Notes      string    `json:"notes,omitempty"`
}

// OrderHistory - список заказов пользователя со сводкой
type OrderHistory struct {
	Orders  []OrderData  `json:"orders"`
	Summary OrderSummary `json:"summary"`
}

// OrderSummary - сводка по заказам пользователя
type OrderSummary struct {
	TotalOrders int     `json:"total_orders"`
	TotalSpent  float64 `json:"total_spent"`
}

// CheckStatus проверяет, что статус входит в допустимый набор.
// Порядок переходов намеренно не ограничивается.
func CheckStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CheckOrderID проверяет формат идентификатора заказа: две заглавные буквы и четыре цифры
func CheckOrderID(id string) bool {
	if len(id) != 6 {
		return false
	}
	for i := 0; i < 2; i++ {
		if id[i] < 'A' || id[i] > 'Z' {
			return false
		}
	}
	for i := 2; i < 6; i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}
