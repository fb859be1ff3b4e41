package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-agent-wallet/internal/logger"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
)

const walletColumns = `w.id, w.owner_id, w.balance, w.credit_limit, w.version, w.created_at, w.updated_at`

// WalletWriterRepository handles wallet write operations
type WalletWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriterRepository {
	return &WalletWriterRepository{db: db, txGetter: txGetter}
}

// CreateIfAbsent inserts the wallet unless its owner already has one.
func (r *WalletWriterRepository) CreateIfAbsent(ctx context.Context, w *models.Wallet) error {
	query := `
		INSERT INTO wallets (id, owner_id, balance, credit_limit, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, $5)
		ON CONFLICT (owner_id) DO NOTHING
	`
	args := []any{w.ID, w.OwnerID, w.Balance, w.CreditLimit, w.CreatedAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)
	return mapError(err)
}

// GetByOwnerIDForUpdate reads the wallet and locks its row until the transaction ends.
func (r *WalletWriterRepository) GetByOwnerIDForUpdate(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets w WHERE w.owner_id = $1 FOR UPDATE`

	var wallet models.Wallet
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &wallet, query, ownerID)

	logQuery(query, []any{ownerID}, wallet, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &wallet, nil
}

// Update persists balance and credit limit and bumps the version.
// A version mismatch is reported as models.ErrConflict.
func (r *WalletWriterRepository) Update(ctx context.Context, w *models.Wallet) error {
	query := `
		UPDATE wallets
		SET balance = $2, credit_limit = $3, version = version + 1, updated_at = $4
		WHERE id = $1 AND version = $5
		RETURNING version
	`
	args := []any{w.ID, w.Balance, w.CreditLimit, w.UpdatedAt, w.Version}

	var version int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &version, query, args...)

	logQuery(query, args, version, err)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: wallet %s was modified concurrently", models.ErrConflict, w.ID)
	}
	if err != nil {
		return mapError(err)
	}
	w.Version = version
	return nil
}

// AppendTransaction adds an entry to the wallet's transaction log.
func (r *WalletWriterRepository) AppendTransaction(ctx context.Context, t *models.Transaction) error {
	query := `
		INSERT INTO wallet_transactions (id, wallet_id, type, amount, description, reference, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	args := []any{t.ID, t.WalletID, t.Type, t.Amount, t.Description, t.Reference, t.Date}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, t.ID, err)
	return mapError(err)
}

// WalletReaderRepository handles wallet read operations
type WalletReaderRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletReaderRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletReaderRepository {
	return &WalletReaderRepository{db: db, txGetter: txGetter}
}

// GetByOwnerID returns the owner's wallet or models.ErrNotFound.
func (r *WalletReaderRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*models.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets w WHERE w.owner_id = $1`

	var wallet models.Wallet
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &wallet, query, ownerID)

	logQuery(query, []any{ownerID}, wallet, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &wallet, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// List returns one page of wallets joined with their owners and the total number of matches.
func (r *WalletReaderRepository) List(ctx context.Context, filter models.WalletFilter) ([]models.WalletListItem, int, error) {
	page := filter.Page.Normalize()

	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.MinBalance != nil {
		add("w.balance >= $%d", *filter.MinBalance)
	}
	if filter.MaxBalance != nil {
		add("w.balance <= $%d", *filter.MaxBalance)
	}
	if filter.MinCreditLimit != nil {
		add("w.credit_limit >= $%d", *filter.MinCreditLimit)
	}
	if filter.MaxCreditLimit != nil {
		add("w.credit_limit <= $%d", *filter.MaxCreditLimit)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`(u.name ILIKE $%[1]d ESCAPE '\' OR u.email ILIKE $%[1]d ESCAPE '\' OR u.company ILIKE $%[1]d ESCAPE '\')`, n))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}
	from := ` FROM wallets w JOIN users u ON u.id = w.owner_id` + where
	q := executor(ctx, r.db, r.txGetter)

	countQuery := `SELECT COUNT(*)` + from
	var total int
	err := sqlx.GetContext(ctx, q, &total, countQuery, args...)
	logQuery(countQuery, args, total, err)
	if err != nil {
		return nil, 0, mapError(err)
	}

	listQuery := `SELECT ` + walletColumns + `, u.name AS owner_name, u.email AS owner_email, u.company AS owner_company` +
		from + fmt.Sprintf(` ORDER BY w.created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	listArgs := append(append([]any{}, args...), page.Limit, page.Offset())

	items := []models.WalletListItem{}
	err = sqlx.SelectContext(ctx, q, &items, listQuery, listArgs...)
	logQuery(listQuery, listArgs, len(items), err)
	if err != nil {
		return nil, 0, mapError(err)
	}
	return items, total, nil
}

// ListTransactions returns one page of the wallet's log, newest first, and the log length.
func (r *WalletReaderRepository) ListTransactions(ctx context.Context, walletID uuid.UUID, p models.Page) ([]models.Transaction, int, error) {
	page := p.Normalize()
	q := executor(ctx, r.db, r.txGetter)

	countQuery := `SELECT COUNT(*) FROM wallet_transactions WHERE wallet_id = $1`
	var total int
	err := sqlx.GetContext(ctx, q, &total, countQuery, walletID)
	logQuery(countQuery, []any{walletID}, total, err)
	if err != nil {
		return nil, 0, mapError(err)
	}

	listQuery := `
		SELECT id, wallet_id, type, amount, description, reference, date
		FROM wallet_transactions
		WHERE wallet_id = $1
		ORDER BY date DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	args := []any{walletID, page.Limit, page.Offset()}

	items := []models.Transaction{}
	err = sqlx.SelectContext(ctx, q, &items, listQuery, args...)
	logQuery(listQuery, args, len(items), err)
	if err != nil {
		return nil, 0, mapError(err)
	}
	return items, total, nil
}

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// mapError translates driver errors into model sentinels.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return models.ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %v", models.ErrConflict, err)
	}
	return err
}
