package handlers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=rate.go -destination=mock_rate.go -package=handlers

// RatesGetter defines the interface that the rate service must implement.
type RatesGetter interface {
	SettlementCurrency() string
	Rates(ctx context.Context) map[string]decimal.Decimal
}

// RatesResponse lists how many units of each currency one unit of the base currency buys.
// swagger:model RatesResponse
type RatesResponse struct {
	// Settlement currency of the wallets
	// default: USD
	Base string `json:"base"`

	// Rates keyed by ISO currency code
	Rates map[string]decimal.Decimal `json:"rates"`
}

// NewGetRatesHandler handles fetching current exchange rates
// @Summary Get exchange rates
// @Description Returns the rates used when a claim does not state rateOfExchange
// @Tags rates
// @Produce json
// @Success 200 {object} handlers.Response{data=handlers.RatesResponse}
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /rates [get]
// @Security BearerAuth
func NewGetRatesHandler(svc RatesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, RatesResponse{
			Base:  svc.SettlementCurrency(),
			Rates: svc.Rates(r.Context()),
		}, "")
	}
}
