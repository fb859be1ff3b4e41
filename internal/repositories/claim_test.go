package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var claimRowColumns = []string{
	"id", "booking_id", "agent_id", "amount", "currency", "rate_of_exchange", "claimed_amount",
	"lead_pax_name", "travel_date", "notes", "status", "transaction_id", "claim_date", "settled_at",
	"rejection_reason", "reviewed_by", "created_at", "updated_at",
}

func newTestClaim(t *testing.T) *models.Claim {
	rate := decimal.RequireFromString("0.91")
	c, err := models.NewClaim(models.ClaimInput{
		BookingID:      uuid.New(),
		AgentID:        uuid.New(),
		Amount:         decimal.NewFromInt(100),
		Currency:       "EUR",
		RateOfExchange: &rate,
		LeadPaxName:    "Jane Doe",
		TravelDate:     time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
	}, 2, time.Now())
	require.NoError(t, err)
	return c
}

func claimRow(c *models.Claim) []driver.Value {
	return []driver.Value{
		c.ID.String(), c.BookingID.String(), c.AgentID.String(), c.Amount.String(), c.Currency,
		c.RateOfExchange.String(), c.ClaimedAmount.String(), c.LeadPaxName, c.TravelDate, c.Notes,
		string(c.Status), c.TransactionID, c.ClaimDate, nil, nil, nil, c.CreatedAt, c.UpdatedAt,
	}
}

func TestClaimWriterRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimWriterRepository(db, GetTxFromContext)
	c := newTestClaim(t)

	t.Run("inserted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO claims")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		assert.NoError(t, repo.Save(context.Background(), c))
	})

	t.Run("duplicate booking", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO claims")).
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "claims_booking_id_key"})
		err := repo.Save(context.Background(), c)
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimWriterRepository_GetByIDForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimWriterRepository(db, GetTxFromContext)
	c := newTestClaim(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM claims WHERE id = $1 FOR UPDATE")).
		WithArgs(c.ID).
		WillReturnRows(sqlmock.NewRows(claimRowColumns).AddRow(claimRow(c)...))

	got, err := repo.GetByIDForUpdate(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, models.ClaimPending, got.Status)
	assert.True(t, c.ClaimedAmount.Equal(got.ClaimedAmount))
	assert.Nil(t, got.SettledAt)
	assert.Nil(t, got.ReviewedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimWriterRepository_UpdateDecision(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimWriterRepository(db, GetTxFromContext)
	c := newTestClaim(t)
	require.NoError(t, c.Approve(uuid.New(), time.Now()))

	t.Run("pending claim updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = 'pending'")).
			WithArgs(c.ID, c.Status, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.UpdateDecision(context.Background(), c))
	})

	t.Run("already decided", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE claims")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		err := repo.UpdateDecision(context.Background(), c)
		assert.ErrorIs(t, err, models.ErrInvalidStateTransition)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimReaderRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimReaderRepository(db, nil)
	c := newTestClaim(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM claims WHERE booking_id = $1")).
		WithArgs(c.BookingID).
		WillReturnRows(sqlmock.NewRows(claimRowColumns).AddRow(claimRow(c)...))

	got, err := repo.GetByBookingID(context.Background(), c.BookingID)
	require.NoError(t, err)
	assert.Equal(t, c.BookingID, got.BookingID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM claims WHERE id = $1")).
		WithArgs(c.ID).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), c.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimReaderRepository_ListByAgent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimReaderRepository(db, nil)
	c := newTestClaim(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE agent_id = $1 AND ($2::UUID IS NULL OR booking_id = $2)")).
		WithArgs(c.AgentID, nil).
		WillReturnRows(sqlmock.NewRows(claimRowColumns).AddRow(claimRow(c)...))

	claims, err := repo.ListByAgent(context.Background(), c.AgentID, nil)
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, c.TransactionID, claims[0].TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimReaderRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimReaderRepository(db, nil)

	t.Run("filtered", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM claims WHERE status = $1 AND currency = $2")).
			WithArgs("pending", "EUR").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY claim_date DESC LIMIT $3 OFFSET $4")).
			WithArgs("pending", "EUR", 10, 0).
			WillReturnRows(sqlmock.NewRows(claimRowColumns))

		claims, total, err := repo.List(context.Background(), models.ClaimFilter{Status: models.ClaimPending, Currency: "eur"})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, claims)
	})

	t.Run("unfiltered", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM claims")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(regexp.QuoteMeta("FROM claims ORDER BY claim_date DESC LIMIT $1 OFFSET $2")).
			WithArgs(100, 100).
			WillReturnRows(sqlmock.NewRows(claimRowColumns).AddRow(claimRow(newTestClaim(t))...))

		claims, total, err := repo.List(context.Background(), models.ClaimFilter{Page: models.Page{Page: 2, Limit: 500}})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, claims, 1)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
