package models

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a wallet movement.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// Wallet is an agent's single-currency balance with a revolving credit line.
// Balance may go negative down to -CreditLimit.
type Wallet struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	OwnerID     uuid.UUID       `json:"ownerId" db:"owner_id"`
	Balance     decimal.Decimal `json:"balance" db:"balance"`
	CreditLimit decimal.Decimal `json:"creditLimit" db:"credit_limit"`
	Version     int64           `json:"-" db:"version"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// NewWallet returns an empty wallet for ownerID.
func NewWallet(ownerID uuid.UUID, now time.Time) *Wallet {
	return &Wallet{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Balance:     decimal.Zero,
		CreditLimit: decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AvailableCredit is the unused part of the credit line: creditLimit - max(0, -balance).
func (w *Wallet) AvailableCredit() decimal.Decimal {
	debt := decimal.Max(decimal.Zero, w.Balance.Neg())
	return w.CreditLimit.Sub(debt)
}

// Spendable is the largest debit the wallet accepts right now.
func (w *Wallet) Spendable() decimal.Decimal {
	return w.Balance.Add(w.CreditLimit)
}

// CanDebit reports whether amount <= balance + creditLimit.
func (w *Wallet) CanDebit(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(w.Spendable())
}

// SetCreditLimit replaces the credit limit. Lowering it below the current debt is allowed;
// it only restricts future debits.
func (w *Wallet) SetCreditLimit(limit decimal.Decimal, now time.Time) error {
	if err := ValidateCreditLimit(limit); err != nil {
		return err
	}
	w.CreditLimit = limit
	w.UpdatedAt = now
	return nil
}

// Apply validates in against the wallet, moves the balance and returns the log entry
// that must be appended in the same unit of work.
func (w *Wallet) Apply(in TransactionInput, now time.Time) (*Transaction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	switch in.Type {
	case TransactionCredit:
		w.Balance = w.Balance.Add(in.Amount)
	case TransactionDebit:
		if !w.CanDebit(in.Amount) {
			return nil, fmt.Errorf("%w: requested %s, available %s", ErrInsufficientFunds, in.Amount.String(), w.Spendable().String())
		}
		w.Balance = w.Balance.Sub(in.Amount)
	}
	w.UpdatedAt = now

	txn := &Transaction{
		ID:          uuid.New(),
		WalletID:    w.ID,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: strings.TrimSpace(in.Description),
		Date:        now,
	}
	if ref := strings.TrimSpace(in.Reference); ref != "" {
		txn.Reference = &ref
	}
	return txn, nil
}

// Transaction is one append-only entry of a wallet log.
type Transaction struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	WalletID    uuid.UUID       `json:"walletId" db:"wallet_id"`
	Type        TransactionType `json:"type" db:"type"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
	Reference   *string         `json:"reference,omitempty" db:"reference"`
	Date        time.Time       `json:"date" db:"date"`
}

// TransactionInput is a requested wallet movement.
type TransactionInput struct {
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"`
}

// Validate checks type, amount and description.
func (in TransactionInput) Validate() error {
	return validationError(validation.ValidateStruct(&in,
		validation.Field(&in.Type, validation.Required, validation.In(TransactionCredit, TransactionDebit)),
		validation.Field(&in.Amount, validation.By(positiveDecimal), validation.By(maxScale(AmountScale))),
		validation.Field(&in.Description, validation.By(notBlank)),
	))
}

// WalletFilter narrows ListWallets. Nil bounds are ignored.
type WalletFilter struct {
	MinBalance     *decimal.Decimal
	MaxBalance     *decimal.Decimal
	MinCreditLimit *decimal.Decimal
	MaxCreditLimit *decimal.Decimal
	Search         string
	Page
}

// WalletListItem is a wallet joined with its owner's descriptive fields.
type WalletListItem struct {
	Wallet
	OwnerName    string `json:"ownerName" db:"owner_name"`
	OwnerEmail   string `json:"ownerEmail" db:"owner_email"`
	OwnerCompany string `json:"ownerCompany" db:"owner_company"`
}
