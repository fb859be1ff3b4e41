package services

//go:generate mockgen -source=claim.go -destination=mock_claim.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/logger"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/sbilibin2017/gw-agent-wallet/internal/policy"
	"github.com/shopspring/decimal"
)

// SettlementDescription is the ledger description of a claim credit.
const SettlementDescription = "Claim settlement"

// ClaimWriter defines claim persistence used by the workflow.
type ClaimWriter interface {
	Save(ctx context.Context, c *models.Claim) error
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Claim, error)
	UpdateDecision(ctx context.Context, c *models.Claim) error
}

// ClaimReader defines claim read operations.
type ClaimReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Claim, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Claim, error)
	ListByAgent(ctx context.Context, agentID uuid.UUID, bookingID *uuid.UUID) ([]models.Claim, error)
	List(ctx context.Context, filter models.ClaimFilter) ([]models.Claim, int, error)
}

// WalletLedger is the part of the ledger claim settlement runs inside its own transaction.
type WalletLedger interface {
	EnsureWallet(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error)
	ApplyTransaction(ctx context.Context, ownerID uuid.UUID, in models.TransactionInput) (*models.Wallet, *models.Transaction, error)
}

// RateResolver supplies a rate when the agent does not state one.
type RateResolver interface {
	Rate(ctx context.Context, currency string) (decimal.Decimal, error)
}

// ClaimService runs the payment-claim workflow: pending, then approved or rejected exactly once.
type ClaimService struct {
	tx        TxRunner
	writer    ClaimWriter
	reader    ClaimReader
	bookings  BookingStore
	ledger    WalletLedger
	rates     RateResolver
	publisher Publisher
	precision int32
	now       func() time.Time
}

// NewClaimService creates a new ClaimService. precision is the number of decimal
// places the claimed amount is rounded to.
func NewClaimService(
	tx TxRunner,
	writer ClaimWriter,
	reader ClaimReader,
	bookings BookingStore,
	ledger WalletLedger,
	rates RateResolver,
	publisher Publisher,
	precision int32,
) *ClaimService {
	return &ClaimService{
		tx:        tx,
		writer:    writer,
		reader:    reader,
		bookings:  bookings,
		ledger:    ledger,
		rates:     rates,
		publisher: publisher,
		precision: precision,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SubmitClaim records a pending claim against a confirmed booking of the agent.
func (s *ClaimService) SubmitClaim(ctx context.Context, in models.ClaimInput) (*models.Claim, error) {
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.RateOfExchange == nil && in.Currency != "" && s.rates != nil {
		rate, err := s.rates.Rate(ctx, in.Currency)
		if err != nil {
			return nil, err
		}
		rate = rate.Round(models.RateScale)
		in.RateOfExchange = &rate
	}

	claim, err := models.NewClaim(in, s.precision, s.now())
	if err != nil {
		return nil, err
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookings.GetByID(ctx, claim.BookingID)
		if err != nil {
			return err
		}
		if booking.AgentID != claim.AgentID {
			return models.ErrNotFound
		}
		if !CanClaim(booking) {
			return fmt.Errorf("%w: booking is %s", models.ErrInvalidBookingState, booking.BookingStatus)
		}

		if _, err := s.reader.GetByBookingID(ctx, claim.BookingID); err == nil {
			return models.ErrDuplicateClaim
		} else if !errors.Is(err, models.ErrNotFound) {
			return err
		}

		// the unique booking_id constraint settles a race with a concurrent submit
		if err := s.writer.Save(ctx, claim); err != nil {
			if errors.Is(err, models.ErrConflict) {
				return models.ErrDuplicateClaim
			}
			return err
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return nil, fmt.Errorf("%w: booking %s", models.ErrNotFound, in.BookingID)
		case errors.Is(err, models.ErrDuplicateClaim), errors.Is(err, models.ErrInvalidBookingState):
			return nil, err
		}
		logger.Log.Errorw("failed to submit claim", "bookingID", in.BookingID, "agentID", in.AgentID, "error", err)
		return nil, err
	}

	s.publisher.Publish(ctx, models.NewEvent(models.EventClaimSubmitted, claim.ID.String(), claim, s.now()))
	return claim, nil
}

// ListClaimsForAgent returns the agent's claims, optionally for one booking.
func (s *ClaimService) ListClaimsForAgent(ctx context.Context, agentID uuid.UUID, bookingID *uuid.UUID) ([]models.Claim, error) {
	claims, err := s.reader.ListByAgent(ctx, agentID, bookingID)
	if err != nil {
		logger.Log.Errorw("failed to list agent claims", "agentID", agentID, "error", err)
		return nil, err
	}
	return claims, nil
}

// ListAllClaims returns one page of claims matching filter and the total number of matches.
func (s *ClaimService) ListAllClaims(ctx context.Context, filter models.ClaimFilter) ([]models.Claim, int, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown claim status %q", models.ErrValidation, filter.Status)
	}
	filter.Page = filter.Page.Normalize()

	claims, total, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list claims", "error", err)
		return nil, 0, err
	}
	return claims, total, nil
}

// GetClaim returns a claim the actor is allowed to see.
func (s *ClaimService) GetClaim(ctx context.Context, actor policy.Actor, id uuid.UUID) (*models.Claim, error) {
	claim, err := s.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: claim %s", models.ErrNotFound, id)
		}
		logger.Log.Errorw("failed to get claim", "claimID", id, "error", err)
		return nil, err
	}
	if !policy.CanViewClaim(actor, claim) {
		return nil, fmt.Errorf("%w: claim belongs to another agent", models.ErrForbidden)
	}
	return claim, nil
}

// Decide approves or rejects a pending claim. Approval credits the agent wallet,
// settles the claim and marks the booking paid in one transaction. Repeating the
// recorded decision returns the stored claim without side effects.
func (s *ClaimService) Decide(
	ctx context.Context,
	claimID uuid.UUID,
	decision models.Decision,
	reviewerID uuid.UUID,
	rejectionReason string,
) (*models.Claim, error) {
	if decision != models.DecisionApprove && decision != models.DecisionReject {
		return nil, fmt.Errorf("%w: unknown decision %q", models.ErrValidation, decision)
	}
	var (
		claim   *models.Claim
		txn     *models.Transaction
		changed bool
	)
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		// reset per attempt, the transaction may be retried
		claim, txn, changed = nil, nil, false

		c, err := s.writer.GetByIDForUpdate(ctx, claimID)
		if err != nil {
			return err
		}
		if c.Status.Terminal() {
			if c.Status == decision.Status() {
				claim = c
				return nil
			}
			return fmt.Errorf("%w: claim is already %s", models.ErrInvalidStateTransition, c.Status)
		}

		now := s.now()
		if decision == models.DecisionApprove {
			txn, err = s.settle(ctx, c, reviewerID, now)
			if err != nil {
				return err
			}
		} else {
			if err := c.Reject(reviewerID, rejectionReason, now); err != nil {
				return err
			}
			if err := s.writer.UpdateDecision(ctx, c); err != nil {
				return err
			}
		}

		claim, changed = c, true
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return nil, fmt.Errorf("%w: claim %s", models.ErrNotFound, claimID)
		case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidStateTransition):
			return nil, err
		}
		logger.Log.Errorw("failed to decide claim", "claimID", claimID, "decision", decision, "error", err)
		return nil, err
	}

	if changed {
		now := s.now()
		events := []models.Event{models.NewEvent(models.EventClaimDecided, claim.ID.String(), claim, now)}
		if txn != nil {
			events = append(events, models.NewEvent(models.EventTransactionRecorded, claim.AgentID.String(), txn, now))
		}
		s.publisher.Publish(ctx, events...)
	}
	return claim, nil
}

// settle credits the claimed amount, approves the claim and marks the booking paid.
func (s *ClaimService) settle(ctx context.Context, c *models.Claim, reviewerID uuid.UUID, now time.Time) (*models.Transaction, error) {
	if _, err := s.ledger.EnsureWallet(ctx, c.AgentID); err != nil {
		return nil, err
	}
	_, txn, err := s.ledger.ApplyTransaction(ctx, c.AgentID, models.TransactionInput{
		Type:        models.TransactionCredit,
		Amount:      c.ClaimedAmount,
		Description: SettlementDescription,
		Reference:   c.TransactionID,
	})
	if err != nil {
		return nil, err
	}

	if err := c.Approve(reviewerID, now); err != nil {
		return nil, err
	}
	if err := s.writer.UpdateDecision(ctx, c); err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByIDForUpdate(ctx, c.BookingID)
	if err != nil {
		return nil, err
	}
	booking.PaymentStatus = models.PaymentPaid
	booking.UpdatedAt = now
	if err := s.bookings.UpdatePaymentStatus(ctx, booking); err != nil {
		return nil, err
	}
	return txn, nil
}
