package toggle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bounceboom/training-portal/internal/services/access"
	"github.com/bounceboom/training-portal/internal/storage/memstore"
)

// MockService реализует интерфейс toggle.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Toggle(ctx context.Context, videoID int, add bool) ([]int, error) {
	args := m.Called(ctx, videoID, add)
	ids, _ := args.Get(0).([]int)
	return ids, args.Error(1)
}

func TestToggleHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		url            string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное добавление видео",
			url:         "/selection/3",
			requestBody: Request{Add: true},
			setupMock: func(m *MockService) {
				m.On("Toggle", mock.Anything, 3, true).
					Return([]int{1, 2, 3}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"video_ids":[1,2,3]`,
		},
		{
			name:        "удаление видео из списка",
			url:         "/selection/2",
			requestBody: Request{Add: false},
			setupMock: func(m *MockService) {
				m.On("Toggle", mock.Anything, 2, false).
					Return([]int{1}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"video_ids":[1]`,
		},
		{
			name:           "некорректный id в url",
			url:            "/selection/abc",
			requestBody:    Request{Add: true},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id"}`,
		},
		{
			name:           "некорректный JSON",
			url:            "/selection/3",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:        "превышен лимит списка",
			url:         "/selection/6",
			requestBody: Request{Add: true},
			setupMock: func(m *MockService) {
				m.On("Toggle", mock.Anything, 6, true).
					Return(nil, access.ErrSelectionLimit)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"selection limit exceeded"}`,
		},
		{
			name:        "видео не найдено",
			url:         "/selection/99",
			requestBody: Request{Add: true},
			setupMock: func(m *MockService) {
				m.On("Toggle", mock.Anything, 99, true).
					Return(nil, memstore.ErrVideoNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"video not found"}`,
		},
		{
			name:        "ошибка сервиса",
			url:         "/selection/3",
			requestBody: Request{Add: true},
			setupMock: func(m *MockService) {
				m.On("Toggle", mock.Anything, 3, true).
					Return(nil, errors.New("store error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to toggle selection"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, tt.url, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			// Устанавливаем URL параметр id для chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", strings.TrimPrefix(tt.url, "/selection/"))
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
