package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/freshai/laundryfront/internal/client"
	clientmocks "github.com/freshai/laundryfront/internal/client/mocks"
	"github.com/freshai/laundryfront/internal/config"
	"github.com/freshai/laundryfront/internal/logger"
	"github.com/freshai/laundryfront/internal/models"
	"github.com/freshai/laundryfront/internal/storage"
	"github.com/freshai/laundryfront/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func TestNewSessionsService(t *testing.T) {
	t.Run("Sessions_CreatesService", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockAPI := clientmocks.NewMockLaundryAPI(ctrl)
		mockStorage := mocks.NewMockSessionsStorage(ctrl)

		config := config.DefaultConfig()
		sessions := NewSessions(config, mockAPI, mockStorage)
		baseService, ok := sessions.(*Sessions)
		if !ok {
			t.Fatalf("Expected *Sessions, got: '%T'", sessions)
		}
		if baseService == nil || baseService.JWTAuth == nil {
			t.Errorf("Expected Sessions to be initialized with JWTAuth")
		}
		if baseService.Storage != mockStorage {
			t.Errorf("Expected Sessions to be initialized with provided storage")
		}
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := clientmocks.NewMockLaundryAPI(ctrl)
	mockStorage := mocks.NewMockSessionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	user := models.UserData{ID: 7, Email: "user@example.com", FullName: "User", IsSuperuser: false}

	testCases := []struct {
		TestName      string
		SetupMocks    func()
		ExpectedUser  *models.UserData
		ExpectedError error
	}{
		{
			TestName: "Login success creates session #1",
			SetupMocks: func() {
				mockAPI.EXPECT().Login(gomock.Any(), "user@example.com", "pass").Return("backend-token", nil)
				mockAPI.EXPECT().CurrentUser(gomock.Any(), "backend-token").Return(&user, nil)
				mockStorage.EXPECT().AddSession(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedUser:  &user,
			ExpectedError: nil,
		},
		{
			TestName: "Rejected credentials leave no session #2",
			SetupMocks: func() {
				mockAPI.EXPECT().Login(gomock.Any(), "user@example.com", "pass").Return("", client.ErrUnauthorized)
			},
			ExpectedUser:  nil,
			ExpectedError: ErrInvalidCredentials,
		},
		{
			TestName: "Probe failure after login #3",
			SetupMocks: func() {
				mockAPI.EXPECT().Login(gomock.Any(), "user@example.com", "pass").Return("backend-token", nil)
				mockAPI.EXPECT().CurrentUser(gomock.Any(), "backend-token").Return(nil, errors.New("backend down"))
			},
			ExpectedUser:  nil,
			ExpectedError: errors.New("backend down"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			sessions := NewSessions(config, mockAPI, mockStorage)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			jwt, got, err := sessions.Login(ctx, "user@example.com", "pass")

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}

			if tc.ExpectedUser != nil {
				if got == nil || got.Email != tc.ExpectedUser.Email {
					t.Errorf("Expected user '%v', got '%v'", tc.ExpectedUser, got)
				}
				if jwt == "" {
					t.Errorf("Expected session JWT to be issued")
				}
			} else if jwt != "" {
				t.Errorf("Expected no session JWT on failure")
			}
		})
	}
}

func TestProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := clientmocks.NewMockLaundryAPI(ctrl)
	mockStorage := mocks.NewMockSessionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	session := models.SessionData{
		ID:          "session-1",
		AccessToken: "backend-token",
		User:        models.UserData{ID: 7, Email: "user@example.com"},
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	user := models.UserData{ID: 7, Email: "user@example.com", FullName: "Updated"}

	testCases := []struct {
		TestName      string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Probe success refreshes cached user #1",
			SetupMocks: func() {
				mockStorage.EXPECT().GetSession(gomock.Any(), "session-1").Return(&session, nil)
				mockAPI.EXPECT().CurrentUser(gomock.Any(), "backend-token").Return(&user, nil)
				mockStorage.EXPECT().UpdateSessionUser(gomock.Any(), "session-1", user).Return(nil)
			},
			ExpectedError: nil,
		},
		{
			TestName: "Rejected probe silently drops session #2",
			SetupMocks: func() {
				mockStorage.EXPECT().GetSession(gomock.Any(), "session-1").Return(&session, nil)
				mockAPI.EXPECT().CurrentUser(gomock.Any(), "backend-token").Return(nil, client.ErrUnauthorized)
				mockStorage.EXPECT().DeleteSession(gomock.Any(), "session-1").Return(nil)
			},
			ExpectedError: ErrSessionNotFound,
		},
		{
			TestName: "Unknown session #3",
			SetupMocks: func() {
				mockStorage.EXPECT().GetSession(gomock.Any(), "session-1").Return(nil, storage.ErrSessionNotFound)
			},
			ExpectedError: ErrSessionNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			sessions := NewSessions(config, mockAPI, mockStorage)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := sessions.Probe(ctx, "session-1")
			if !errors.Is(err, tc.ExpectedError) && (err == nil) != (tc.ExpectedError == nil) {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestGetSessionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := clientmocks.NewMockLaundryAPI(ctrl)
	mockStorage := mocks.NewMockSessionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	expired := models.SessionData{
		ID:        "session-old",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	mockStorage.EXPECT().GetSession(gomock.Any(), "session-old").Return(&expired, nil)

	sessions := NewSessions(config, mockAPI, mockStorage)
	if _, err := sessions.GetSession(context.Background(), "session-old"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound for expired session, got: '%v'", err)
	}
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := clientmocks.NewMockLaundryAPI(ctrl)
	mockStorage := mocks.NewMockSessionsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	// выход не ходит на бекенд: ожиданий на mockAPI нет
	mockStorage.EXPECT().DeleteSession(gomock.Any(), "session-1").Return(nil)

	sessions := NewSessions(config, mockAPI, mockStorage)
	if err := sessions.Logout(context.Background(), "session-1"); err != nil {
		t.Errorf("Expected no error, got: '%v'", err)
	}
}
