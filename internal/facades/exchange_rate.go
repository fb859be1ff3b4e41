package facades

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-agent-wallet/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"
)

// ExchangeRatesGRPCFacade reads exchange rates from the exchanger service over gRPC.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetRates fetches every published rate. Non-positive rates are skipped.
func (f *ExchangeRatesGRPCFacade) GetRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, err
	}

	rates := make(map[string]decimal.Decimal, len(resp.Rates))
	for currency, rate := range resp.Rates {
		if rate <= 0 {
			continue
		}
		rates[currency] = decimal.NewFromFloat32(rate)
	}
	return rates, nil
}

// GetRate fetches how many units of currency one unit of base buys.
func (f *ExchangeRatesGRPCFacade) GetRate(ctx context.Context, base, currency string) (decimal.Decimal, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: base,
		ToCurrency:   currency,
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate for currency via gRPC",
			"from", base, "to", currency, "error", err)
		return decimal.Zero, err
	}
	if resp.Rate <= 0 {
		return decimal.Zero, fmt.Errorf("exchanger returned non-positive rate %v for %s->%s", resp.Rate, base, currency)
	}

	return decimal.NewFromFloat32(resp.Rate), nil
}
