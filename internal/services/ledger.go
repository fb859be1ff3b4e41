package services

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/logger"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/shopspring/decimal"
)

// TxRunner runs fn inside one database transaction, joining an outer one when present.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// WalletWriter defines the row-locked wallet mutations.
type WalletWriter interface {
	CreateIfAbsent(ctx context.Context, w *models.Wallet) error
	GetByOwnerIDForUpdate(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error)
	Update(ctx context.Context, w *models.Wallet) error
	AppendTransaction(ctx context.Context, t *models.Transaction) error
}

// WalletReader defines wallet read operations.
type WalletReader interface {
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error)
	List(ctx context.Context, filter models.WalletFilter) ([]models.WalletListItem, int, error)
	ListTransactions(ctx context.Context, walletID uuid.UUID, page models.Page) ([]models.Transaction, int, error)
}

// OwnerReader resolves wallet owners.
type OwnerReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// LedgerService is the only writer of wallet balances and transaction logs.
type LedgerService struct {
	tx        TxRunner
	writer    WalletWriter
	reader    WalletReader
	owners    OwnerReader
	publisher Publisher
	now       func() time.Time
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	tx TxRunner,
	writer WalletWriter,
	reader WalletReader,
	owners OwnerReader,
	publisher Publisher,
) *LedgerService {
	return &LedgerService{
		tx:        tx,
		writer:    writer,
		reader:    reader,
		owners:    owners,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GetOrCreateWallet returns the owner's wallet, creating an empty one on first access.
func (s *LedgerService) GetOrCreateWallet(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error) {
	var wallet *models.Wallet
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		wallet, err = s.EnsureWallet(ctx, ownerID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to get or create wallet", "ownerID", ownerID, "error", err)
		return nil, err
	}
	return wallet, nil
}

// EnsureWallet creates the wallet if absent within the caller's transaction.
// Concurrent callers converge on the single row guarded by the owner_id constraint.
func (s *LedgerService) EnsureWallet(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error) {
	if err := s.writer.CreateIfAbsent(ctx, models.NewWallet(ownerID, s.now())); err != nil {
		return nil, err
	}
	return s.reader.GetByOwnerID(ctx, ownerID)
}

// GetWallet returns an existing wallet.
func (s *LedgerService) GetWallet(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error) {
	wallet, err := s.reader.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: wallet for user %s", models.ErrNotFound, ownerID)
		}
		logger.Log.Errorw("failed to get wallet", "ownerID", ownerID, "error", err)
		return nil, err
	}
	return wallet, nil
}

// UpdateCreditLimit sets the revolving credit line of an agent's wallet.
// Lowering the limit below the current debt is accepted; it only blocks further debits.
func (s *LedgerService) UpdateCreditLimit(ctx context.Context, ownerID uuid.UUID, limit decimal.Decimal) (*models.Wallet, error) {
	if err := models.ValidateCreditLimit(limit); err != nil {
		return nil, err
	}

	owner, err := s.owners.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, ownerID)
		}
		logger.Log.Errorw("failed to get wallet owner", "ownerID", ownerID, "error", err)
		return nil, err
	}
	if owner.Role != models.RoleAgent {
		return nil, fmt.Errorf("%w: user %s has role %s", models.ErrInvalidOwner, ownerID, owner.Role)
	}

	var wallet *models.Wallet
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		w, err := s.writer.GetByOwnerIDForUpdate(ctx, ownerID)
		if err != nil {
			return err
		}
		if err := w.SetCreditLimit(limit, s.now()); err != nil {
			return err
		}
		if err := s.writer.Update(ctx, w); err != nil {
			return err
		}
		wallet = w
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: wallet for user %s", models.ErrNotFound, ownerID)
		}
		logger.Log.Errorw("failed to update credit limit", "ownerID", ownerID, "limit", limit, "error", err)
		return nil, err
	}
	return wallet, nil
}

// RecordTransaction applies a credit or debit in its own transaction and publishes it after commit.
func (s *LedgerService) RecordTransaction(ctx context.Context, ownerID uuid.UUID, in models.TransactionInput) (*models.Wallet, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var (
		wallet *models.Wallet
		txn    *models.Transaction
	)
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		wallet, txn, err = s.ApplyTransaction(ctx, ownerID, in)
		return err
	})
	if err != nil {
		if !errors.Is(err, models.ErrInsufficientFunds) && !errors.Is(err, models.ErrNotFound) {
			logger.Log.Errorw("failed to record transaction", "ownerID", ownerID, "type", in.Type, "amount", in.Amount, "error", err)
		}
		return nil, err
	}

	s.publisher.Publish(ctx, models.NewEvent(models.EventTransactionRecorded, ownerID.String(), txn, s.now()))
	return wallet, nil
}

// ApplyTransaction is RecordTransaction for callers that already own a transaction.
// The wallet row stays locked until that transaction ends. Nothing is published.
func (s *LedgerService) ApplyTransaction(ctx context.Context, ownerID uuid.UUID, in models.TransactionInput) (*models.Wallet, *models.Transaction, error) {
	wallet, err := s.writer.GetByOwnerIDForUpdate(ctx, ownerID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: wallet for user %s", models.ErrNotFound, ownerID)
		}
		return nil, nil, err
	}

	txn, err := wallet.Apply(in, s.now())
	if err != nil {
		return nil, nil, err
	}
	if err := s.writer.Update(ctx, wallet); err != nil {
		return nil, nil, err
	}
	if err := s.writer.AppendTransaction(ctx, txn); err != nil {
		return nil, nil, err
	}
	return wallet, txn, nil
}

// ListTransactions returns one page of the owner's log, newest first, and the full log length.
func (s *LedgerService) ListTransactions(ctx context.Context, ownerID uuid.UUID, page models.Page) ([]models.Transaction, int, error) {
	wallet, err := s.GetWallet(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}

	items, total, err := s.reader.ListTransactions(ctx, wallet.ID, page.Normalize())
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "ownerID", ownerID, "error", err)
		return nil, 0, err
	}
	return items, total, nil
}

// ListWallets returns one page of wallets matching filter and the total number of matches.
func (s *LedgerService) ListWallets(ctx context.Context, filter models.WalletFilter) ([]models.WalletListItem, int, error) {
	filter.Page = filter.Page.Normalize()

	items, total, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list wallets", "error", err)
		return nil, 0, err
	}
	return items, total, nil
}
