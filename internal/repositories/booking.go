package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
)

const bookingColumns = `id, agent_id, booking_status, payment_status, sellers, created_at, updated_at`

// BookingRepository covers the part of the booking record the wallet service reads and writes.
type BookingRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookingRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookingRepository {
	return &BookingRepository{db: db, txGetter: txGetter}
}

// GetByID returns the booking or models.ErrNotFound.
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return r.get(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

// GetByIDForUpdate reads the booking and locks its row until the transaction ends.
func (r *BookingRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return r.get(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
}

func (r *BookingRepository) get(ctx context.Context, query string, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &booking, query, id)

	logQuery(query, []any{id}, booking.BookingStatus, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &booking, nil
}

// UpdateBookingStatus sets the booking lifecycle status.
func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, b *models.Booking) error {
	return r.update(ctx, `UPDATE bookings SET booking_status = $2, updated_at = $3 WHERE id = $1`,
		b.ID, b.BookingStatus, b.UpdatedAt)
}

// UpdatePaymentStatus sets the booking payment status.
func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, b *models.Booking) error {
	return r.update(ctx, `UPDATE bookings SET payment_status = $2, updated_at = $3 WHERE id = $1`,
		b.ID, b.PaymentStatus, b.UpdatedAt)
}

func (r *BookingRepository) update(ctx context.Context, query string, args ...any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return mapError(err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
