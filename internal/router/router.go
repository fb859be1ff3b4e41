// Package router mounts the HTTP API on a chi router.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/sbilibin2017/gw-agent-wallet/docs"
	"github.com/sbilibin2017/gw-agent-wallet/internal/handlers"
	"github.com/sbilibin2017/gw-agent-wallet/internal/middlewares"
	"github.com/sbilibin2017/gw-agent-wallet/internal/policy"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// AuthService is implemented by services.AuthService.
type AuthService interface {
	handlers.Registerer
	handlers.Loginer
}

// LedgerService is implemented by services.LedgerService.
type LedgerService interface {
	handlers.WalletGetter
	handlers.MyWalletGetter
	handlers.CreditLimitUpdater
	handlers.TransactionRecorder
	handlers.WalletLister
	handlers.TransactionLister
}

// ClaimService is implemented by services.ClaimService.
type ClaimService interface {
	handlers.ClaimSubmitter
	handlers.AgentClaimLister
	handlers.ClaimLister
	handlers.ClaimGetter
	handlers.ClaimDecider
}

// BookingService is implemented by services.BookingService.
type BookingService interface {
	handlers.BookingStatusChanger
	handlers.PaymentStatusSetter
}

// Services groups everything the handlers call.
type Services struct {
	Auth     AuthService
	Rates    handlers.RatesGetter
	Ledger   LedgerService
	Claims   ClaimService
	Bookings BookingService
}

// New returns the API router. Routes live under /api/v1, Swagger UI under /swagger.
func New(svc Services, tokener middlewares.Tokener, log *zap.SugaredLogger, swaggerURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(svc.Auth))
		r.Post("/login", handlers.NewLoginHandler(svc.Auth))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))

			r.Get("/rates", handlers.NewGetRatesHandler(svc.Rates))

			r.With(middlewares.Allow(policy.IsAgent)).
				Get("/wallets/my-wallet", handlers.NewGetMyWalletHandler(svc.Ledger))

			r.Route("/wallet", func(r chi.Router) {
				manage := middlewares.Allow(policy.CanManageWallets)
				r.With(manage).Get("/", handlers.NewListWalletsHandler(svc.Ledger))
				r.With(manage).Get("/{userId}", handlers.NewGetWalletHandler(svc.Ledger))
				r.With(manage).Put("/{userId}/credit-limit", handlers.NewUpdateCreditLimitHandler(svc.Ledger))
				r.With(manage).Post("/{userId}/transaction", handlers.NewRecordTransactionHandler(svc.Ledger))
				// agents are limited to their own log inside the handler
				r.Get("/{userId}/transactions", handlers.NewListTransactionsHandler(svc.Ledger))
			})

			r.Route("/claims", func(r chi.Router) {
				r.With(middlewares.Allow(policy.CanSubmitClaim)).Post("/", handlers.NewSubmitClaimHandler(svc.Claims))
				r.With(middlewares.Allow(policy.IsAgent)).Get("/my-claims", handlers.NewMyClaimsHandler(svc.Claims))
				r.With(middlewares.Allow(policy.CanListAllClaims)).Get("/", handlers.NewListClaimsHandler(svc.Claims))
				// ownership is checked by the claim service
				r.Get("/{id}", handlers.NewGetClaimHandler(svc.Claims))
				r.With(middlewares.Allow(policy.CanDecideClaim)).Put("/{id}/status", handlers.NewDecideClaimHandler(svc.Claims))
			})

			r.Route("/bookings/{id}", func(r chi.Router) {
				r.Use(middlewares.Allow(policy.CanManageBookings))
				r.Put("/status", handlers.NewBookingStatusHandler(svc.Bookings))
				r.Put("/payment-status", handlers.NewPaymentStatusHandler(svc.Bookings))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
