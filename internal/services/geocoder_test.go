package services

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/freshai/laundryfront/internal/client"
	clientmocks "github.com/freshai/laundryfront/internal/client/mocks"
	"github.com/freshai/laundryfront/internal/config"
	"github.com/freshai/laundryfront/internal/logger"
	"github.com/sony/gobreaker"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

func newTestGeocoder(httpClient client.HTTPClient) *Geocoder {
	return &Geocoder{
		Client:  client.NewGeocodeClient("http://geocoder", httpClient),
		Limiter: client.NewRateLimiter(rate.Inf, 1),
		Breaker: InitCircuitBreaker(),
	}
}

func TestReverseLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := clientmocks.NewMockHTTPClient(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	t.Run("Address found #1", func(t *testing.T) {
		body := `{"display_name":"123 Main St, Springfield"}`
		mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(body)),
			Header:     make(http.Header),
		}, nil)

		geocoder := newTestGeocoder(mockHTTPClient)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		address, err := geocoder.ReverseLookup(ctx, 39.78, -89.65)
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if address != "123 Main St, Springfield" {
			t.Errorf("Expected display name, got '%s'", address)
		}
	})

	t.Run("Empty display name #2", func(t *testing.T) {
		mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(`{}`)),
			Header:     make(http.Header),
		}, nil)

		geocoder := newTestGeocoder(mockHTTPClient)
		if _, err := geocoder.ReverseLookup(context.Background(), 0, 0); err == nil {
			t.Errorf("Expected error for empty display name")
		}
	})

	t.Run("Breaker opens after consecutive failures #3", func(t *testing.T) {
		mockHTTPClient.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       io.NopCloser(bytes.NewBufferString(``)),
			Header:     make(http.Header),
		}, nil).Times(5)

		geocoder := newTestGeocoder(mockHTTPClient)
		for i := 0; i < 5; i++ {
			if _, err := geocoder.ReverseLookup(context.Background(), 0, 0); err == nil {
				t.Fatalf("Expected error on attempt %d", i+1)
			}
		}
		if geocoder.Breaker.State() != gobreaker.StateOpen {
			t.Errorf("Expected breaker to be open, got %s", geocoder.Breaker.State())
		}
		// предохранитель открыт: запрос не доходит до транспорта
		if _, err := geocoder.ReverseLookup(context.Background(), 0, 0); err == nil {
			t.Errorf("Expected fail-fast error from open breaker")
		}
	})
}
