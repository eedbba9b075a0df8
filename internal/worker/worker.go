package worker

import (
	"context"
	"sync"
	"time"

	"github.com/freshai/laundryfront/internal/logger"
	"github.com/freshai/laundryfront/internal/storage"
)

// SessionWorker - фоновая зачистка протухших сессий
type SessionWorker struct {
	Sessions      storage.SessionsStorage
	WaitGroup     sync.WaitGroup
	QuitChan      chan struct{}
	SweepInterval time.Duration
}

// NewSessionWorker - конструктор воркера зачистки сессий
func NewSessionWorker(sessions storage.SessionsStorage) *SessionWorker {
	return &SessionWorker{
		Sessions:      sessions,
		QuitChan:      make(chan struct{}),
		SweepInterval: 10 * time.Minute,
	}
}

// Start - запускает воркер в фоне
func (w *SessionWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *SessionWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *SessionWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("SessionWorker signal stop")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep - удаление всех сессий с истёкшим сроком жизни
func (w *SessionWorker) Sweep(ctx context.Context) {
	removed, err := w.Sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		logger.Error("error sweep expired sessions", err)
		return
	}
	if removed > 0 {
		logger.Info("expired sessions removed", removed)
	}
}
