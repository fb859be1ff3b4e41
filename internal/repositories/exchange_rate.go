package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-agent-wallet/internal/logger"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// ExchangeRateCacheRepository provides cached exchange rates using Redis
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewExchangeRateCacheRepository creates a new repository instance with optional TTL
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateKey(base, currency string) string {
	return fmt.Sprintf("exchange_rate:%s:%s", base, currency)
}

// Get returns the cached rate of currency against base, or models.ErrNotFound on a miss.
func (r *ExchangeRateCacheRepository) Get(ctx context.Context, base, currency string) (decimal.Decimal, error) {
	key := rateKey(base, currency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, fmt.Errorf("%w: exchange rate %s->%s not cached", models.ErrNotFound, base, currency)
		}
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)
	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", rate,
		"error", err,
	)
	if err != nil {
		return decimal.Zero, err
	}
	return rate, nil
}

// Set caches the rate of currency against base with the repository TTL.
func (r *ExchangeRateCacheRepository) Set(ctx context.Context, base, currency string, rate decimal.Decimal) error {
	key := rateKey(base, currency)
	err := r.client.Set(ctx, key, rate.String(), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rate", rate,
		"result", "ok",
		"error", err,
	)

	return err
}
