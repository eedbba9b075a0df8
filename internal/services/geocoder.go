package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/freshai/laundryfront/internal/client"
	"github.com/freshai/laundryfront/internal/logger"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// GeocoderService - обратное геокодирование для автозаполнения адреса.
// Любая ошибка здесь не фатальна: адрес останется для ручного ввода.
type GeocoderService interface {
	ReverseLookup(ctx context.Context, lat float64, lon float64) (string, error)
}

type Geocoder struct {
	Client  *client.GeocodeClient
	Limiter *client.RateLimiter
	Breaker *gobreaker.CircuitBreaker
}

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "geocoder",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до сервиса
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker", name, from.String(), to.String())
		},
	})
}

// Создание сервиса. Публичный Nominatim ограничен одним запросом в секунду.
func NewGeocoder(baseURL string) GeocoderService {
	return &Geocoder{
		Client:  client.NewGeocodeClient(baseURL, &http.Client{}),
		Limiter: client.NewRateLimiter(rate.Every(time.Second), 1),
		Breaker: InitCircuitBreaker(),
	}
}

// ReverseLookup - поиск адреса по координатам через ограничитель и предохранитель
func (s *Geocoder) ReverseLookup(ctx context.Context, lat float64, lon float64) (string, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return "", err
	}

	address, err := s.Breaker.Execute(func() (interface{}, error) {
		return s.Client.Reverse(ctx, lat, lon)
	})
	if err != nil {
		// публичный Nominatim просит притормозить, выполняем
		if errors.Is(err, client.ErrTooManyRequests) {
			s.Limiter.BlockFor(time.Minute)
		}
		logger.Warn("Reverse geocode failed:", err.Error())
		return "", err
	}
	return address.(string), nil
}
