package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/jwt"
	"github.com/sbilibin2017/gw-agent-wallet/internal/middlewares"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type staticRates struct{}

func (staticRates) SettlementCurrency() string { return "USD" }

func (staticRates) Rates(ctx context.Context) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{"USD": decimal.NewFromInt(1)}
}

// tokenerFor accepts the tokens "agent", "sales" and "operations" as callers with that role.
func tokenerFor(t *testing.T) middlewares.Tokener {
	ctrl := gomock.NewController(t)
	m := middlewares.NewMockTokener(ctrl)
	m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, r *http.Request) (string, error) {
			return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "), nil
		})
	m.EXPECT().GetClaims(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(_ context.Context, token string) (*jwt.Claims, error) {
			role := models.Role(token)
			if !role.Valid() {
				return nil, models.ErrUnauthorized
			}
			return &jwt.Claims{UserID: uuid.New(), Role: role}, nil
		})
	return m
}

func TestRouterAccessControl(t *testing.T) {
	h := New(Services{Rates: staticRates{}}, tokenerFor(t), zap.NewNop().Sugar(), "/swagger/doc.json")
	walletPath := "/api/v1/wallet/" + uuid.NewString()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"rates without token", http.MethodGet, "/api/v1/rates", "", http.StatusUnauthorized},
		{"rates as agent", http.MethodGet, "/api/v1/rates", "agent", http.StatusOK},
		{"wallet as agent", http.MethodGet, walletPath, "agent", http.StatusForbidden},
		{"credit limit as operations", http.MethodPut, walletPath + "/credit-limit", "operations", http.StatusForbidden},
		{"my wallet as sales", http.MethodGet, "/api/v1/wallets/my-wallet", "sales", http.StatusForbidden},
		{"submit claim as operations", http.MethodPost, "/api/v1/claims", "operations", http.StatusForbidden},
		{"list claims as agent", http.MethodGet, "/api/v1/claims", "agent", http.StatusForbidden},
		{"decide claim as sales", http.MethodPut, "/api/v1/claims/" + uuid.NewString() + "/status", "sales", http.StatusForbidden},
		{"booking status as agent", http.MethodPut, "/api/v1/bookings/" + uuid.NewString() + "/status", "agent", http.StatusForbidden},
		{"other agent's transactions", http.MethodGet, walletPath + "/transactions", "agent", http.StatusForbidden},
		{"unknown route", http.MethodGet, "/api/v1/nope", "agent", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestRouterServesSwaggerDoc(t *testing.T) {
	h := New(Services{}, tokenerFor(t), zap.NewNop().Sugar(), "/swagger/doc.json")

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"/claims/{id}/status"`)
	assert.Contains(t, rr.Body.String(), `"BearerAuth"`)
}
