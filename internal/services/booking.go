package services

//go:generate mockgen -source=booking.go -destination=mock_booking.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/logger"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
)

// CanTransitionToBooked reports whether the booking lists at least one seller.
func CanTransitionToBooked(b *models.Booking) bool {
	return len(b.Sellers) >= 1
}

// CanClaim reports whether a payment claim may be raised against the booking.
func CanClaim(b *models.Booking) bool {
	return b.BookingStatus == models.BookingConfirmed
}

// CheckStatusTransition allows a single step forward, or cancellation from any
// non-terminal status. Entering booked requires sellers.
func CheckStatusTransition(b *models.Booking, next models.BookingStatus) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown booking status %q", models.ErrValidation, next)
	}
	current := b.BookingStatus
	if current.Terminal() {
		return fmt.Errorf("%w: booking is %s", models.ErrInvalidStateTransition, current)
	}
	if next == models.BookingCancelled {
		return nil
	}
	if want, ok := current.Next(); !ok || next != want {
		return fmt.Errorf("%w: booking cannot move from %s to %s", models.ErrInvalidStateTransition, current, next)
	}
	if next == models.BookingBooked && !CanTransitionToBooked(b) {
		return fmt.Errorf("%w: at least one seller is required before booking", models.ErrInvalidStateTransition)
	}
	return nil
}

// BookingStore reads and writes the booking fields this service owns or consumes.
type BookingStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, b *models.Booking) error
	UpdatePaymentStatus(ctx context.Context, b *models.Booking) error
}

// BookingService applies status changes through the booking gate.
type BookingService struct {
	tx    TxRunner
	store BookingStore
	now   func() time.Time
}

// NewBookingService creates a new BookingService.
func NewBookingService(tx TxRunner, store BookingStore) *BookingService {
	return &BookingService{
		tx:    tx,
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// TransitionStatus moves the booking to next.
func (s *BookingService) TransitionStatus(ctx context.Context, id uuid.UUID, next models.BookingStatus) (*models.Booking, error) {
	var booking *models.Booking
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		b, err := s.store.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := CheckStatusTransition(b, next); err != nil {
			return err
		}
		b.BookingStatus = next
		b.UpdatedAt = s.now()
		if err := s.store.UpdateBookingStatus(ctx, b); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, s.wrap(err, "failed to transition booking status", id)
	}
	return booking, nil
}

// SetPaymentStatus overrides the payment status by hand.
func (s *BookingService) SetPaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", models.ErrValidation, status)
	}

	var booking *models.Booking
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		b, err := s.store.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		b.PaymentStatus = status
		b.UpdatedAt = s.now()
		if err := s.store.UpdatePaymentStatus(ctx, b); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, s.wrap(err, "failed to set payment status", id)
	}
	return booking, nil
}

func (s *BookingService) wrap(err error, msg string, id uuid.UUID) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fmt.Errorf("%w: booking %s", models.ErrNotFound, id)
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidStateTransition):
		return err
	}
	logger.Log.Errorw(msg, "bookingID", id, "error", err)
	return err
}
