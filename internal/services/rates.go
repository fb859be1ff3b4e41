package services

//go:generate mockgen -source=rates.go -destination=mock_rates.go -package=services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-agent-wallet/internal/logger"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// ExchangeRateSource fetches current exchange rates from an external service.
type ExchangeRateSource interface {
	GetRate(ctx context.Context, base, currency string) (decimal.Decimal, error)
	GetRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// ExchangeRateCache caches resolved exchange rates.
type ExchangeRateCache interface {
	Get(ctx context.Context, base, currency string) (decimal.Decimal, error)
	Set(ctx context.Context, base, currency string, rate decimal.Decimal) error
}

// RateService resolves how many units of a currency one unit of the settlement currency buys.
// Lookup order: cache, exchanger, configured table.
type RateService struct {
	settlement string
	table      map[string]decimal.Decimal
	cache      ExchangeRateCache
	source     ExchangeRateSource
}

// NewRateService creates a RateService. cache and source may be nil.
func NewRateService(
	settlement string,
	table map[string]decimal.Decimal,
	cache ExchangeRateCache,
	source ExchangeRateSource,
) *RateService {
	t := make(map[string]decimal.Decimal, len(table))
	for k, v := range table {
		t[strings.ToUpper(k)] = v
	}
	return &RateService{
		settlement: strings.ToUpper(settlement),
		table:      t,
		cache:      cache,
		source:     source,
	}
}

// SettlementCurrency is the currency wallets are kept in.
func (s *RateService) SettlementCurrency() string {
	return s.settlement
}

// Rate resolves the rate for currency. Unknown currencies are a validation error.
func (s *RateService) Rate(ctx context.Context, currency string) (decimal.Decimal, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == s.settlement {
		return decimal.NewFromInt(1), nil
	}

	if s.cache != nil {
		if rate, err := s.cache.Get(ctx, s.settlement, currency); err == nil {
			return rate, nil
		}
	}

	if s.source != nil {
		rate, err := s.source.GetRate(ctx, s.settlement, currency)
		if err == nil {
			if s.cache != nil {
				if err := s.cache.Set(ctx, s.settlement, currency, rate); err != nil {
					logger.Log.Errorw("failed to cache exchange rate", "from", s.settlement, "to", currency, "rate", rate, "error", err)
				}
			}
			return rate, nil
		}
		logger.Log.Warnw("exchanger unavailable, falling back to rate table", "from", s.settlement, "to", currency, "error", err)
	}

	if rate, ok := s.table[currency]; ok {
		return rate, nil
	}
	return decimal.Zero, fmt.Errorf("%w: no exchange rate for currency %s", models.ErrValidation, currency)
}

// Rates returns every known rate keyed by currency, exchanger values overriding the table.
func (s *RateService) Rates(ctx context.Context) map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(s.table)+1)
	for k, v := range s.table {
		rates[k] = v
	}

	if s.source != nil {
		live, err := s.source.GetRates(ctx)
		if err != nil {
			logger.Log.Warnw("failed to fetch exchange rates, serving configured table", "error", err)
		}
		for k, v := range live {
			rates[strings.ToUpper(k)] = v
		}
	}

	rates[s.settlement] = decimal.NewFromInt(1)
	return rates
}
