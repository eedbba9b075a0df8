package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/freshai/laundryfront/internal/helpers"
	"github.com/freshai/laundryfront/internal/logger"
	"github.com/freshai/laundryfront/internal/models"
	"github.com/freshai/laundryfront/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogItem - позиция каталога услуг для выдачи
type CatalogItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Unit      string  `json:"unit"`
}

// CatalogResponse - каталог услуг и окон забора
type CatalogResponse struct {
	Services  []CatalogItem `json:"services"`
	TimeSlots []string      `json:"time_slots"`
}

// QuoteResponse - оценка стоимости заказа
type QuoteResponse struct {
	Service  string  `json:"service"`
	Quantity int     `json:"quantity"`
	Amount   float64 `json:"amount"`
}

// CatalogHandler — фиксированный прайс услуг и список окон забора
func CatalogHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := CatalogResponse{TimeSlots: models.TimeSlots}
		for _, s := range models.Catalog {
			response.Services = append(response.Services, CatalogItem{
				Name:      s.Name,
				UnitPrice: s.UnitPrice.InexactFloat64(),
				Unit:      s.Unit,
			})
		}
		WriteJSON(w, response)
	})
}

// QuoteHandler — оценка стоимости без оформления заказа
func QuoteHandler(b services.BookingService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		service := r.URL.Query().Get("service")
		quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
		if err != nil {
			quantity = 0
		}

		amount, err := b.Quote(service, quantity)
		if err != nil {
			http.Error(w, "Unknown service", http.StatusUnprocessableEntity)
			return
		}

		WriteJSON(w, QuoteResponse{
			Service:  service,
			Quantity: quantity,
			Amount:   amount.InexactFloat64(),
		})
	})
}

// NewOrderHandler — оформление заказа на забор белья
func NewOrderHandler(s services.SessionsService, b services.BookingService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := SessionFromRequest(r, s)
		if err != nil {
			http.Error(w, "Session expired", http.StatusUnauthorized)
			return
		}

		var request models.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		order, err := b.Submit(r.Context(), session, request)
		if err != nil {
			if validationError(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			WriteBackendError(w, err)
			return
		}
		WriteJSON(w, order)
	})
}

// GetOrdersHandler — история заказов пользователя со сводкой
func GetOrdersHandler(s services.SessionsService, b services.BookingService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := SessionFromRequest(r, s)
		if err != nil {
			http.Error(w, "Session expired", http.StatusUnauthorized)
			return
		}

		history, err := b.History(r.Context(), session)
		if err != nil {
			WriteBackendError(w, err)
			return
		}
		WriteJSON(w, history)
	})
}

// GetOrderHandler — снимок одного заказа для отслеживания
func GetOrderHandler(s services.SessionsService, b services.BookingService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := SessionFromRequest(r, s)
		if err != nil {
			http.Error(w, "Session expired", http.StatusUnauthorized)
			return
		}

		orderID := chi.URLParam(r, "id")
		order, err := b.Track(r.Context(), session, orderID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidOrderID):
				http.Error(w, "Invalid order id format", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrOrderNotFound):
				http.Error(w, "Order not found", http.StatusNotFound)
			default:
				WriteBackendError(w, err)
			}
			return
		}
		WriteJSON(w, order)
	})
}

// SessionFromRequest - сессия из хранилища по идентификатору из JWT
func SessionFromRequest(r *http.Request, s services.SessionsService) (*models.SessionData, error) {
	sessionID, err := helpers.GetSessionID(r.Context())
	if err != nil {
		return nil, err
	}
	session, err := s.GetSession(r.Context(), sessionID)
	if err != nil {
		logger.Warn("Failed to load session:", zap.Error(err))
		return nil, err
	}
	return session, nil
}

// validationError - ошибки формы, пойманные до сетевого вызова
func validationError(err error) bool {
	return errors.Is(err, services.ErrUnknownService) ||
		errors.Is(err, services.ErrInvalidQuantity) ||
		errors.Is(err, services.ErrMissingDate) ||
		errors.Is(err, services.ErrDateInPast) ||
		errors.Is(err, services.ErrUnknownTimeSlot) ||
		errors.Is(err, services.ErrMissingAddress)
}
