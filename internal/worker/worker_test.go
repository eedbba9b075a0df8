package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/freshai/laundryfront/internal/config"
	"github.com/freshai/laundryfront/internal/logger"
	"github.com/freshai/laundryfront/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func TestSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockSessionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	t.Run("Removes expired sessions #1", func(t *testing.T) {
		mockStorage.EXPECT().DeleteExpiredSessions(gomock.Any()).Return(int64(3), nil)

		worker := NewSessionWorker(mockStorage)
		worker.Sweep(context.Background())
	})

	t.Run("Storage error does not stop the worker #2", func(t *testing.T) {
		mockStorage.EXPECT().DeleteExpiredSessions(gomock.Any()).Return(int64(0), errors.New("connection lost"))

		worker := NewSessionWorker(mockStorage)
		worker.Sweep(context.Background())
	})
}

func TestStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockSessionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	worker := NewSessionWorker(mockStorage)
	worker.Start(context.Background())
	// остановка до первого тика: зачистка не вызывается
	worker.Stop()
}
