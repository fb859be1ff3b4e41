package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/sbilibin2017/gw-agent-wallet/internal/policy"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=handlers

// WalletGetter returns an existing wallet.
type WalletGetter interface {
	GetWallet(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error)
}

// MyWalletGetter returns the caller's wallet, opening it on first access.
type MyWalletGetter interface {
	GetOrCreateWallet(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error)
}

// CreditLimitUpdater changes an agent's credit line.
type CreditLimitUpdater interface {
	UpdateCreditLimit(ctx context.Context, ownerID uuid.UUID, limit decimal.Decimal) (*models.Wallet, error)
}

// TransactionRecorder applies a manual credit or debit.
type TransactionRecorder interface {
	RecordTransaction(ctx context.Context, ownerID uuid.UUID, in models.TransactionInput) (*models.Wallet, error)
}

// WalletLister lists wallets with their owners.
type WalletLister interface {
	ListWallets(ctx context.Context, filter models.WalletFilter) ([]models.WalletListItem, int, error)
}

// TransactionLister pages through a wallet log.
type TransactionLister interface {
	ListTransactions(ctx context.Context, ownerID uuid.UUID, page models.Page) ([]models.Transaction, int, error)
}

// WalletResponse is a wallet with its derived available credit.
// swagger:model WalletResponse
type WalletResponse struct {
	models.Wallet

	// creditLimit - max(0, -balance)
	AvailableCredit decimal.Decimal `json:"availableCredit"`
}

func newWalletResponse(w *models.Wallet) WalletResponse {
	return WalletResponse{Wallet: *w, AvailableCredit: w.AvailableCredit()}
}

// CreditLimitRequest represents the JSON body for a credit limit change
// swagger:model CreditLimitRequest
type CreditLimitRequest struct {
	// New credit limit, >= 0
	// required: true
	// default: 1000
	CreditLimit *decimal.Decimal `json:"creditLimit" swaggertype:"number"`
}

// TransactionRequest represents the JSON body for a manual wallet movement
// swagger:model TransactionRequest
type TransactionRequest struct {
	// credit or debit
	// required: true
	Type models.TransactionType `json:"type"`

	// Positive amount in the settlement currency
	// required: true
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`

	// required: true
	Description string `json:"description"`

	// Optional external reference
	Reference string `json:"reference"`
}

// NewGetWalletHandler returns a wallet by owner id.
// @Summary Get wallet
// @Description Returns the wallet of the given user
// @Tags wallet
// @Produce json
// @Param userId path string true "Owner id"
// @Success 200 {object} handlers.Response{data=handlers.WalletResponse}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Wallet not found"
// @Router /wallet/{userId} [get]
// @Security BearerAuth
func NewGetWalletHandler(svc WalletGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuidParam(r, "userId")
		if err != nil {
			writeError(w, r, err)
			return
		}

		wallet, err := svc.GetWallet(r.Context(), ownerID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeData(w, http.StatusOK, newWalletResponse(wallet), "")
	}
}

// NewGetMyWalletHandler returns the calling agent's wallet.
// @Summary Get my wallet
// @Description Returns the caller's wallet, creating an empty one on first access
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.Response{data=handlers.WalletResponse}
// @Failure 401 {object} handlers.ErrorResponse
// @Router /wallets/my-wallet [get]
// @Security BearerAuth
func NewGetMyWalletHandler(svc MyWalletGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFrom(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		wallet, err := svc.GetOrCreateWallet(r.Context(), actor.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeData(w, http.StatusOK, newWalletResponse(wallet), "")
	}
}

// NewUpdateCreditLimitHandler sets an agent's credit limit.
// @Summary Update credit limit
// @Description Sets the revolving credit line of an agent wallet. Lowering it below the current debt only blocks further debits.
// @Tags wallet
// @Accept json
// @Produce json
// @Param userId path string true "Agent id"
// @Param request body handlers.CreditLimitRequest true "New limit"
// @Success 200 {object} handlers.Response{data=handlers.WalletResponse}
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit or owner is not an agent"
// @Failure 404 {object} handlers.ErrorResponse "User or wallet not found"
// @Router /wallet/{userId}/credit-limit [put]
// @Security BearerAuth
func NewUpdateCreditLimitHandler(svc CreditLimitUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuidParam(r, "userId")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req CreditLimitRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if req.CreditLimit == nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "creditLimit is required"})
			return
		}

		wallet, err := svc.UpdateCreditLimit(r.Context(), ownerID, *req.CreditLimit)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeData(w, http.StatusOK, newWalletResponse(wallet), "Credit limit updated")
	}
}

// NewRecordTransactionHandler applies a manual credit or debit.
// @Summary Record transaction
// @Description Credits or debits a wallet. Debits may use the credit line down to -creditLimit.
// @Tags wallet
// @Accept json
// @Produce json
// @Param userId path string true "Owner id"
// @Param request body handlers.TransactionRequest true "Transaction"
// @Success 201 {object} handlers.Response{data=handlers.WalletResponse}
// @Failure 400 {object} handlers.ErrorResponse "Invalid transaction or insufficient funds"
// @Failure 404 {object} handlers.ErrorResponse "Wallet not found"
// @Router /wallet/{userId}/transaction [post]
// @Security BearerAuth
func NewRecordTransactionHandler(svc TransactionRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuidParam(r, "userId")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req TransactionRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		wallet, err := svc.RecordTransaction(r.Context(), ownerID, models.TransactionInput{
			Type:        models.TransactionType(strings.ToLower(string(req.Type))),
			Amount:      req.Amount,
			Description: req.Description,
			Reference:   req.Reference,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeData(w, http.StatusCreated, newWalletResponse(wallet), "Transaction recorded")
	}
}

// NewListWalletsHandler lists wallets.
// @Summary List wallets
// @Description Lists wallets with owner details, filtered by balance and credit limit ranges and a free-text search
// @Tags wallet
// @Produce json
// @Param minBalance query number false "Minimum balance"
// @Param maxBalance query number false "Maximum balance"
// @Param minCreditLimit query number false "Minimum credit limit"
// @Param maxCreditLimit query number false "Maximum credit limit"
// @Param search query string false "Owner name, email or company"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Success 200 {object} handlers.ListResponse{data=[]models.WalletListItem}
// @Failure 400 {object} handlers.ErrorResponse
// @Router /wallet [get]
// @Security BearerAuth
func NewListWalletsHandler(svc WalletLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePage(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		filter := models.WalletFilter{
			Search: strings.TrimSpace(r.URL.Query().Get("search")),
			Page:   page,
		}
		bounds := map[string]**decimal.Decimal{
			"minBalance":     &filter.MinBalance,
			"maxBalance":     &filter.MaxBalance,
			"minCreditLimit": &filter.MinCreditLimit,
			"maxCreditLimit": &filter.MaxCreditLimit,
		}
		for name, dst := range bounds {
			if *dst, err = optionalDecimal(r, name); err != nil {
				writeError(w, r, err)
				return
			}
		}

		items, total, err := svc.ListWallets(r.Context(), filter)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeList(w, items, len(items), total, page)
	}
}

// NewListTransactionsHandler pages through a wallet log, newest first.
// @Summary List wallet transactions
// @Description Agents may only read their own log
// @Tags wallet
// @Produce json
// @Param userId path string true "Owner id"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Success 200 {object} handlers.ListResponse{data=[]models.Transaction}
// @Failure 403 {object} handlers.ErrorResponse "Not your wallet"
// @Failure 404 {object} handlers.ErrorResponse "Wallet not found"
// @Router /wallet/{userId}/transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFrom(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		ownerID, err := uuidParam(r, "userId")
		if err != nil {
			writeError(w, r, err)
			return
		}
		if !policy.CanViewWallet(actor, ownerID) {
			writeError(w, r, models.ErrForbidden)
			return
		}

		page, err := parsePage(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		items, total, err := svc.ListTransactions(r.Context(), ownerID, page)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeList(w, items, len(items), total, page)
	}
}
