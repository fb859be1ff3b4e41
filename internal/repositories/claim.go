package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
)

const claimColumns = `id, booking_id, agent_id, amount, currency, rate_of_exchange, claimed_amount,
	lead_pax_name, travel_date, notes, status, transaction_id, claim_date, settled_at,
	rejection_reason, reviewed_by, created_at, updated_at`

// ClaimWriterRepository persists payment claims
type ClaimWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewClaimWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ClaimWriterRepository {
	return &ClaimWriterRepository{db: db, txGetter: txGetter}
}

// Save inserts a new claim. A second claim for the same booking yields models.ErrConflict.
func (r *ClaimWriterRepository) Save(ctx context.Context, c *models.Claim) error {
	query := `
		INSERT INTO claims (` + claimColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	args := []any{
		c.ID, c.BookingID, c.AgentID, c.Amount, c.Currency, c.RateOfExchange, c.ClaimedAmount,
		c.LeadPaxName, c.TravelDate, c.Notes, c.Status, c.TransactionID, c.ClaimDate, c.SettledAt,
		c.RejectionReason, c.ReviewedBy, c.CreatedAt, c.UpdatedAt,
	}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, c.ID, err)
	return mapError(err)
}

// GetByIDForUpdate reads the claim and locks its row until the transaction ends.
func (r *ClaimWriterRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE id = $1 FOR UPDATE`

	var claim models.Claim
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &claim, query, id)

	logQuery(query, []any{id}, claim.Status, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &claim, nil
}

// UpdateDecision records the reviewer's decision. Only pending claims are updated.
func (r *ClaimWriterRepository) UpdateDecision(ctx context.Context, c *models.Claim) error {
	query := `
		UPDATE claims
		SET status = $2, settled_at = $3, rejection_reason = $4, reviewed_by = $5, updated_at = $6
		WHERE id = $1 AND status = 'pending'
	`
	args := []any{c.ID, c.Status, c.SettledAt, c.RejectionReason, c.ReviewedBy, c.UpdatedAt}

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
		return fmt.Errorf("%w: claim %s is no longer pending", models.ErrInvalidStateTransition, c.ID)
	}
	return nil
}

// ClaimReaderRepository reads payment claims
type ClaimReaderRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewClaimReaderRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ClaimReaderRepository {
	return &ClaimReaderRepository{db: db, txGetter: txGetter}
}

// GetByID returns the claim or models.ErrNotFound.
func (r *ClaimReaderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Claim, error) {
	return r.getOne(ctx, `SELECT `+claimColumns+` FROM claims WHERE id = $1`, id)
}

// GetByBookingID returns the booking's claim or models.ErrNotFound.
func (r *ClaimReaderRepository) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Claim, error) {
	return r.getOne(ctx, `SELECT `+claimColumns+` FROM claims WHERE booking_id = $1`, bookingID)
}

func (r *ClaimReaderRepository) getOne(ctx context.Context, query string, arg any) (*models.Claim, error) {
	var claim models.Claim
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &claim, query, arg)

	logQuery(query, []any{arg}, claim.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &claim, nil
}

// ListByAgent returns the agent's claims, newest first, optionally narrowed to one booking.
func (r *ClaimReaderRepository) ListByAgent(ctx context.Context, agentID uuid.UUID, bookingID *uuid.UUID) ([]models.Claim, error) {
	query := `
		SELECT ` + claimColumns + `
		FROM claims
		WHERE agent_id = $1 AND ($2::UUID IS NULL OR booking_id = $2)
		ORDER BY claim_date DESC
	`
	args := []any{agentID, bookingID}

	claims := []models.Claim{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &claims, query, args...)

	logQuery(query, args, len(claims), err)
	if err != nil {
		return nil, mapError(err)
	}
	return claims, nil
}

// List returns one page of claims matching filter and the total number of matches.
func (r *ClaimReaderRepository) List(ctx context.Context, filter models.ClaimFilter) ([]models.Claim, int, error) {
	page := filter.Page.Normalize()

	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.AgentID != nil {
		add("agent_id = $%d", *filter.AgentID)
	}
	if filter.BookingID != nil {
		add("booking_id = $%d", *filter.BookingID)
	}
	if filter.Currency != "" {
		add("currency = $%d", strings.ToUpper(filter.Currency))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	q := executor(ctx, r.db, r.txGetter)

	countQuery := `SELECT COUNT(*) FROM claims` + where
	var total int
	err := sqlx.GetContext(ctx, q, &total, countQuery, args...)
	logQuery(countQuery, args, total, err)
	if err != nil {
		return nil, 0, mapError(err)
	}

	listQuery := `SELECT ` + claimColumns + ` FROM claims` + where +
		fmt.Sprintf(` ORDER BY claim_date DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	listArgs := append(append([]any{}, args...), page.Limit, page.Offset())

	claims := []models.Claim{}
	err = sqlx.SelectContext(ctx, q, &claims, listQuery, listArgs...)
	logQuery(listQuery, listArgs, len(claims), err)
	if err != nil {
		return nil, 0, mapError(err)
	}
	return claims, total, nil
}
