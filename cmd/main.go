package main

//go:generate swag init --dir ./,../internal/handlers,../internal/models --generalInfo main.go --output ../docs

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/segmentio/kafka-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sbilibin2017/gw-agent-wallet/internal/config"
	"github.com/sbilibin2017/gw-agent-wallet/internal/facades"
	"github.com/sbilibin2017/gw-agent-wallet/internal/jwt"
	"github.com/sbilibin2017/gw-agent-wallet/internal/logger"
	"github.com/sbilibin2017/gw-agent-wallet/internal/migrations"
	"github.com/sbilibin2017/gw-agent-wallet/internal/repositories"
	"github.com/sbilibin2017/gw-agent-wallet/internal/router"
	"github.com/sbilibin2017/gw-agent-wallet/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-agent-wallet API
// @version 1.0.0
// @description Agent wallet ledger and payment claim settlement service
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run wires storage, brokers, services and the HTTP server, and blocks until
// ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// PostgreSQL
	log.Infow("Connecting to PostgreSQL", "host", cfg.PostgresHost, "port", cfg.PostgresPort, "db", cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	applied, err := migrations.Up(db.DB)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	log.Infof("Applied %d migrations", applied)

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()
	rateCache := repositories.NewExchangeRateCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)

	// Kafka is optional; without brokers events are only logged.
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		log.Infow("Publishing events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// The exchanger is optional; without it rates come from RATE_TABLE.
	var rateSource services.ExchangeRateSource
	if cfg.GWHost != "" {
		grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
		}
		defer conn.Close()
		rateSource = facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
		log.Infow("Resolving rates via exchanger", "addr", grpcAddr)
	}

	rateTable, err := cfg.Rates()
	if err != nil {
		return err
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Repositories
	tm := repositories.NewTxManager(db, cfg.TxMaxRetries)
	userReadRepo := repositories.NewUserReadRepository(db, repositories.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, repositories.GetTxFromContext)
	walletWriterRepo := repositories.NewWalletWriterRepository(db, repositories.GetTxFromContext)
	walletReaderRepo := repositories.NewWalletReaderRepository(db, repositories.GetTxFromContext)
	claimWriterRepo := repositories.NewClaimWriterRepository(db, repositories.GetTxFromContext)
	claimReaderRepo := repositories.NewClaimReaderRepository(db, repositories.GetTxFromContext)
	bookingRepo := repositories.NewBookingRepository(db, repositories.GetTxFromContext)

	// Services
	publisher := services.NewEventPublisher(kafkaWriter)
	rateService := services.NewRateService(cfg.SettlementCurrency, rateTable, rateCache, rateSource)
	ledgerService := services.NewLedgerService(tm, walletWriterRepo, walletReaderRepo, userReadRepo, publisher)
	bookingService := services.NewBookingService(tm, bookingRepo)
	claimService := services.NewClaimService(tm, claimWriterRepo, claimReaderRepo, bookingRepo,
		ledgerService, rateService, publisher, cfg.ClaimPrecision)
	authService := services.NewAuthService(tm, userReadRepo, userWriteRepo, tokens, ledgerService)

	if err := authService.EnsureAdmin(ctx, cfg.BootstrapAdminEmail, cfg.BootstrapAdminPassword); err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	handler := router.New(router.Services{
		Auth:     authService,
		Rates:    rateService,
		Ledger:   ledgerService,
		Claims:   claimService,
		Bookings: bookingService,
	}, tokens, log, fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
