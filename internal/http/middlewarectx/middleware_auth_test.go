package middlewarectx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bounceboom/training-portal/internal/http/middlewarectx"
	"github.com/bounceboom/training-portal/internal/lib/jwt"
	"github.com/bounceboom/training-portal/internal/models"
	"github.com/bounceboom/training-portal/internal/services/session"

	"io"
	"log/slog"
)

// Mock for SessionLookup
type SessionLookupMock struct {
	mock.Mock
}

func (m *SessionLookupMock) Lookup(ctx context.Context, sessionID string) (*session.Entry, bool, error) {
	args := m.Called(ctx, sessionID)
	entry, _ := args.Get(0).(*session.Entry)
	return entry, args.Bool(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewMaker("test-secret", time.Hour)
	token, err := maker.GenerateToken("testuser", "employee", "session-1")
	assert.NoError(t, err)

	sessionsMock := new(SessionLookupMock)
	logger := newNoopLogger()

	handlerCalled := false

	// Test handler which checks context values
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		username := r.Context().Value(middlewarectx.User)
		role := r.Context().Value(middlewarectx.Role)
		sessionID := r.Context().Value(middlewarectx.SessionID)
		assert.Equal(t, "testuser", username)
		assert.Equal(t, "employee", role)
		assert.Equal(t, "session-1", sessionID)
		w.WriteHeader(http.StatusOK)
	})

	middleware := middlewarectx.JWTMiddleware(maker, sessionsMock, logger)(nextHandler)

	tests := []struct {
		name           string
		authHeader     string
		mockEntry      *session.Entry
		mockFound      bool
		mockErr        error
		expectLookup   bool
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "invalid Authorization header prefix",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "garbage token",
			authHeader:     "Bearer not-a-jwt",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "session lookup error",
			authHeader:     "Bearer " + token,
			mockErr:        errors.New("cache unavailable"),
			expectLookup:   true,
			wantStatusCode: http.StatusInternalServerError,
			wantCalled:     false,
		},
		{
			name:           "session not active",
			authHeader:     "Bearer " + token,
			mockFound:      false,
			expectLookup:   true,
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "valid token with live session",
			authHeader:     "Bearer " + token,
			mockEntry:      &session.Entry{Username: "testuser", Role: "employee"},
			mockFound:      true,
			expectLookup:   true,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled = false
			sessionsMock.ExpectedCalls = nil // reset calls
			sessionsMock.Calls = nil
			if tt.expectLookup {
				sessionsMock.On("Lookup", mock.Anything, "session-1").
					Return(tt.mockEntry, tt.mockFound, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()

			middleware.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
			sessionsMock.AssertExpectations(t)
		})
	}
}

func TestAdminOnlyMiddleware(t *testing.T) {
	logger := newNoopLogger()

	handlerCalled := false
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	middleware := middlewarectx.AdminOnlyMiddleware(logger)(nextHandler)

	tests := []struct {
		name           string
		role           string
		wantStatusCode int
		wantCalled     bool
	}{
		{name: "administrator passes", role: models.RoleAdministrator, wantStatusCode: http.StatusOK, wantCalled: true},
		{name: "employee rejected", role: models.RoleEmployee, wantStatusCode: http.StatusForbidden, wantCalled: false},
		{name: "temporary rejected", role: models.RoleTemporary, wantStatusCode: http.StatusForbidden, wantCalled: false},
		{name: "missing role", role: "", wantStatusCode: http.StatusUnauthorized, wantCalled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled = false

			req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
			if tt.role != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.Role, tt.role)
				req = req.WithContext(ctx)
			}

			rec := httptest.NewRecorder()
			middleware.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
		})
	}
}

// Mock for AccessServiceInterface
type AccessServiceMock struct {
	mock.Mock
}

func (m *AccessServiceMock) GetAccessStatus(ctx context.Context, username string) (string, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Error(1)
}

func TestAccessStatusMiddleware(t *testing.T) {
	logger := newNoopLogger()

	handlerCalled := false
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		username       string
		mockStatus     string
		mockErr        error
		expectCall     bool
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "active user passes",
			username:       "john_coach",
			mockStatus:     "active",
			expectCall:     true,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
		{
			name:           "expired temporary rejected",
			username:       "temp_sarah",
			mockStatus:     "expired",
			expectCall:     true,
			wantStatusCode: http.StatusForbidden,
			wantCalled:     false,
		},
		{
			name:           "status check error",
			username:       "john_coach",
			mockErr:        errors.New("store unavailable"),
			expectCall:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantCalled:     false,
		},
		{
			name:           "missing username",
			username:       "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled = false
			accessMock := new(AccessServiceMock)
			if tt.expectCall {
				accessMock.On("GetAccessStatus", mock.Anything, tt.username).
					Return(tt.mockStatus, tt.mockErr).Once()
			}

			middleware := middlewarectx.AccessStatusMiddleware(logger, accessMock)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
			if tt.username != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.User, tt.username)
				req = req.WithContext(ctx)
			}

			rec := httptest.NewRecorder()
			middleware.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
			accessMock.AssertExpectations(t)
		})
	}
}
