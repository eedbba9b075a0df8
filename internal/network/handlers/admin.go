package handlers

import (
	"errors"
	"net/http"

	"github.com/freshai/laundryfront/internal/services"
	"github.com/go-chi/chi/v5"
)

// GetAllOrdersHandler — все заказы всех пользователей (консоль персонала)
func GetAllOrdersHandler(s services.SessionsService, a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := SessionFromRequest(r, s)
		if err != nil {
			http.Error(w, "Session expired", http.StatusUnauthorized)
			return
		}

		orders, err := a.ListAll(r.Context(), session)
		if err != nil {
			if errors.Is(err, services.ErrNotAuthorized) {
				http.Error(w, "Not authorized", http.StatusForbidden)
				return
			}
			WriteBackendError(w, err)
			return
		}
		WriteJSON(w, orders)
	})
}

// UpdateOrderStatusHandler — смена статуса заказа.
// В ответе полный перечитанный список: клиент синхронизируется целиком.
func UpdateOrderStatusHandler(s services.SessionsService, a services.AdminService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := SessionFromRequest(r, s)
		if err != nil {
			http.Error(w, "Session expired", http.StatusUnauthorized)
			return
		}

		orderID := chi.URLParam(r, "id")
		status := r.URL.Query().Get("status")

		orders, err := a.SetStatus(r.Context(), session, orderID, status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotAuthorized):
				http.Error(w, "Not authorized", http.StatusForbidden)
			case errors.Is(err, services.ErrUnknownStatus):
				http.Error(w, "Unknown status", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrOrderNotFound):
				http.Error(w, "Order not found", http.StatusNotFound)
			default:
				WriteBackendError(w, err)
			}
			return
		}
		WriteJSON(w, orders)
	})
}
