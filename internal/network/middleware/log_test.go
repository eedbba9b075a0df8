package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freshai/laundryfront/internal/config"
	"github.com/freshai/laundryfront/internal/logger"
)

func TestLogHandle(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	t.Run("Implicit 200 is captured #1", func(t *testing.T) {
		var captured *statusWriter
		handler := LogHandle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = w.(*statusWriter)
			w.Write([]byte("ok"))
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/services", nil))
		if captured.status != http.StatusOK || captured.size != 2 {
			t.Errorf("Expected status 200 and size 2, got %d and %d", captured.status, captured.size)
		}
	})

	t.Run("Explicit status is captured #2", func(t *testing.T) {
		var captured *statusWriter
		handler := LogHandle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = w.(*statusWriter)
			w.WriteHeader(http.StatusNotFound)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/ZZ9999", nil))
		if captured.status != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", captured.status)
		}
	})
}
