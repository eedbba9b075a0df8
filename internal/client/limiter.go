package client

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter - клиентский ограничитель частоты запросов.
// Публичный Nominatim требует не больше одного запроса в секунду.
type RateLimiter struct {
	limiter *rate.Limiter
	mu      sync.Mutex
}

func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}

// BlockFor полностью блокирует запросы на заданный период
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	old := rl.limiter.Limit()
	rl.limiter.SetLimit(0)
	rl.mu.Unlock()

	time.AfterFunc(duration, func() {
		rl.mu.Lock()
		rl.limiter.SetLimit(old)
		rl.mu.Unlock()
	})
}
