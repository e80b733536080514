package update

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/gym-aggregator/internal/models"
	planservice "github.com/magabrotheeeer/gym-aggregator/internal/services/plan"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id string, req models.DummyPlan) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление тарифа",
			id:   "plan-premium",
			requestBody: models.DummyPlan{
				Name:     "Premium Plus",
				Price:    55,
				Duration: 1,
			},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "plan-premium", mock.AnythingOfType("models.DummyPlan")).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"plan-premium"`,
		},
		{
			name:           "некорректный JSON",
			id:             "plan-premium",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name: "ошибка валидации",
			id:   "plan-premium",
			requestBody: models.DummyPlan{
				Name:     "",
				Price:    0,
				Duration: 0,
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Name is a required field`,
		},
		{
			name: "тариф не найден",
			id:   "plan-missing",
			requestBody: models.DummyPlan{
				Name:     "Premium Plus",
				Price:    55,
				Duration: 1,
			},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "plan-missing", mock.AnythingOfType("models.DummyPlan")).
					Return(planservice.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"plan not found"`,
		},
		{
			name: "название занято",
			id:   "plan-premium",
			requestBody: models.DummyPlan{
				Name:     "Básico",
				Price:    55,
				Duration: 1,
			},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "plan-premium", mock.AnythingOfType("models.DummyPlan")).
					Return(planservice.ErrDuplicate)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"plan with this name already exists"`,
		},
		{
			name: "ошибка сервиса",
			id:   "plan-premium",
			requestBody: models.DummyPlan{
				Name:     "Premium Plus",
				Price:    55,
				Duration: 1,
			},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "plan-premium", mock.AnythingOfType("models.DummyPlan")).
					Return(errors.New("storage error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not update plan"`,
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

			req := httptest.NewRequest(http.MethodPut, "/plans/"+tt.id, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			// Устанавливаем URL параметр id для chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
