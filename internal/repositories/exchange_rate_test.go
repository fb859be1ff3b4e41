package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRateCacheRepository(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	repo := NewExchangeRateCacheRepository(client, time.Minute)

	t.Run("Set and Get exchange rate", func(t *testing.T) {
		rate := decimal.RequireFromString("0.91")

		mock.ExpectSet("exchange_rate:USD:EUR", "0.91", time.Minute).SetVal("OK")
		require.NoError(t, repo.Set(ctx, "USD", "EUR", rate))

		mock.ExpectGet("exchange_rate:USD:EUR").SetVal("0.91")
		got, err := repo.Get(ctx, "USD", "EUR")
		require.NoError(t, err)
		assert.True(t, rate.Equal(got))
	})

	t.Run("Get missing key returns not found", func(t *testing.T) {
		mock.ExpectGet("exchange_rate:USD:XYZ").RedisNil()
		_, err := repo.Get(ctx, "USD", "XYZ")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("Corrupt value", func(t *testing.T) {
		mock.ExpectGet("exchange_rate:USD:GBP").SetVal("abc")
		_, err := repo.Get(ctx, "USD", "GBP")
		assert.Error(t, err)
	})

	t.Run("Redis failure", func(t *testing.T) {
		mock.ExpectGet("exchange_rate:USD:JPY").SetErr(errors.New("connection refused"))
		_, err := repo.Get(ctx, "USD", "JPY")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
