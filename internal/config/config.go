// Package config loads service settings from an optional env file and the process environment.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// Config holds all application, storage, broker, rate and auth settings.
type Config struct {
	AppHost  string `envconfig:"APP_HOST" default:"localhost"`
	AppPort  string `envconfig:"APP_PORT" default:"8080"`
	LogLevel string `envconfig:"APP_LOG_LEVEL" default:"info"`

	PostgresHost         string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort         int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser         string `envconfig:"POSTGRES_USER" default:"user"`
	PostgresPassword     string `envconfig:"POSTGRES_PASSWORD" default:"password"`
	PostgresDB           string `envconfig:"POSTGRES_DB" default:"database"`
	PostgresMaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"16"`
	PostgresMaxIdleConns int    `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"8"`

	RedisHost         string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort         int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisDB           int    `envconfig:"REDIS_DB" default:"0"`
	RedisPassword     string `envconfig:"REDIS_PASSWORD" default:""`
	RedisPoolSize     int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
	RedisMinIdleConns int    `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	RedisExpSecond    int    `envconfig:"REDIS_EXP_SECOND" default:"60"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"agent-wallet-events"`

	GWHost string `envconfig:"GW_EXCHANGER_HOST"`
	GWPort string `envconfig:"GW_EXCHANGER_PORT" default:"50051"`

	JWTSecretKey string `envconfig:"JWT_SECRET_KEY" default:"my_super_secret_key"`
	JWTExpSecond int    `envconfig:"JWT_EXP_SECOND" default:"3600"`

	SettlementCurrency string `envconfig:"SETTLEMENT_CURRENCY" default:"USD"`
	ClaimPrecision     int32  `envconfig:"CLAIM_PRECISION" default:"2"`
	RateTable          string `envconfig:"RATE_TABLE" default:""`
	TxMaxRetries       uint64 `envconfig:"TX_MAX_RETRIES" default:"3"`

	BootstrapAdminEmail    string `envconfig:"BOOTSTRAP_ADMIN_EMAIL"`
	BootstrapAdminPassword string `envconfig:"BOOTSTRAP_ADMIN_PASSWORD"`
}

// Load reads path into the environment (a missing file is not an error) and
// decodes the environment into a Config.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.SettlementCurrency = strings.ToUpper(cfg.SettlementCurrency)

	if cfg.ClaimPrecision < 0 || cfg.ClaimPrecision > models.AmountScale {
		return nil, fmt.Errorf("CLAIM_PRECISION must be between 0 and %d", models.AmountScale)
	}
	if _, err := cfg.Rates(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PostgresDSN builds the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDB)
}

// Rates parses RATE_TABLE ("EUR:0.91,GBP:0.79") into units of each currency per
// one unit of the settlement currency.
func (c *Config) Rates() (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal)
	for _, pair := range strings.Split(c.RateTable, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, value, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid RATE_TABLE entry %q", pair)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil || !rate.IsPositive() {
			return nil, fmt.Errorf("invalid rate for %s in RATE_TABLE", code)
		}
		rates[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	return rates, nil
}
