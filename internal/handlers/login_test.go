package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/sbilibin2017/gw-agent-wallet/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setup          func(m *MockLoginer)
		expectedStatus int
	}{
		{
			name: "success",
			body: LoginRequest{Email: "agent@example.com", Password: "secret123"},
			setup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "agent@example.com", "secret123").Return("jwt-token", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid body",
			body:           "{",
			setup:          func(m *MockLoginer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad credentials",
			body: LoginRequest{Email: "agent@example.com", Password: "nope"},
			setup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("", models.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "internal error",
			body: LoginRequest{Email: "agent@example.com", Password: "secret123"},
			setup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockLoginer(ctrl)
			tt.setup(svc)

			rr := httptest.NewRecorder()
			NewLoginHandler(svc).ServeHTTP(rr, newRequest(t, http.MethodPost, "/login", tt.body, nil, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			body := decodeBody(t, rr)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, body["success"])
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "jwt-token", body["data"].(map[string]any)["token"])
			}
		})
	}
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setup          func(m *MockRegisterer)
		expectedStatus int
	}{
		{
			name: "success",
			body: RegisterRequest{Name: "Jane", Email: "jane@example.com", Company: "Acme", Password: "secret123"},
			setup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), services.RegisterInput{
					Name: "Jane", Email: "jane@example.com", Company: "Acme", Password: "secret123",
				}).Return(&models.UserDB{UserID: uuid.New(), Email: "jane@example.com", Role: models.RoleAgent}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "email taken",
			body: RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret123"},
			setup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, models.ErrUserAlreadyExists)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid body",
			body:           "not json",
			setup:          func(m *MockRegisterer) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockRegisterer(ctrl)
			tt.setup(svc)

			rr := httptest.NewRecorder()
			NewRegisterHandler(svc).ServeHTTP(rr, newRequest(t, http.MethodPost, "/register", tt.body, nil, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			body := decodeBody(t, rr)
			if tt.expectedStatus == http.StatusCreated {
				data := body["data"].(map[string]any)
				assert.Equal(t, "agent", data["role"])
				assert.NotContains(t, data, "passwordHash")
			}
		})
	}
}

func TestGetRatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockRatesGetter(ctrl)
	svc.EXPECT().SettlementCurrency().Return("USD")
	svc.EXPECT().Rates(gomock.Any()).Return(map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.91"),
	})

	rr := httptest.NewRecorder()
	NewGetRatesHandler(svc).ServeHTTP(rr, newRequest(t, http.MethodGet, "/rates", nil, nil, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	data := decodeBody(t, rr)["data"].(map[string]any)
	assert.Equal(t, "USD", data["base"])
	assert.Equal(t, "0.91", data["rates"].(map[string]any)["EUR"])
}
