package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var walletRowColumns = []string{"id", "owner_id", "balance", "credit_limit", "version", "created_at", "updated_at"}

func TestWalletWriterRepository_CreateIfAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletWriterRepository(db, GetTxFromContext)
	w := models.NewWallet(uuid.New(), time.Now())

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (owner_id) DO NOTHING")).
		WithArgs(w.ID, w.OwnerID, sqlmock.AnyArg(), sqlmock.AnyArg(), w.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.CreateIfAbsent(context.Background(), w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletWriterRepository_GetByOwnerIDForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletWriterRepository(db, GetTxFromContext)
	ownerID := uuid.New()
	walletID := uuid.New()
	now := time.Now()

	t.Run("locks row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM wallets w WHERE w.owner_id = $1 FOR UPDATE")).
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows(walletRowColumns).
				AddRow(walletID.String(), ownerID.String(), "-25.5000", "100.0000", 3, now, now))

		w, err := repo.GetByOwnerIDForUpdate(context.Background(), ownerID)
		require.NoError(t, err)
		assert.Equal(t, walletID, w.ID)
		assert.True(t, decimal.RequireFromString("-25.5").Equal(w.Balance))
		assert.True(t, decimal.NewFromInt(100).Equal(w.CreditLimit))
		assert.Equal(t, int64(3), w.Version)
	})

	t.Run("missing wallet", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(ownerID).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByOwnerIDForUpdate(context.Background(), ownerID)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletWriterRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletWriterRepository(db, GetTxFromContext)
	w := models.NewWallet(uuid.New(), time.Now())
	w.Version = 4

	t.Run("bumps version", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET balance = $2, credit_limit = $3, version = version + 1")).
			WithArgs(w.ID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(5))

		require.NoError(t, repo.Update(context.Background(), w))
		assert.Equal(t, int64(5), w.Version)
	})

	t.Run("stale version", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE wallets")).
			WillReturnError(sql.ErrNoRows)

		err := repo.Update(context.Background(), w)
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletWriterRepository_AppendTransactionInsideTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletWriterRepository(db, GetTxFromContext)
	tm := NewTxManager(db, 0)

	ref := "CLM-20261017-ABCDEF12"
	txn := &models.Transaction{
		ID:          uuid.New(),
		WalletID:    uuid.New(),
		Type:        models.TransactionCredit,
		Amount:      decimal.NewFromInt(50),
		Description: "Claim settlement",
		Reference:   &ref,
		Date:        time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wallet_transactions")).
		WithArgs(txn.ID, txn.WalletID, txn.Type, sqlmock.AnyArg(), txn.Description, sqlmock.AnyArg(), txn.Date).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return repo.AppendTransaction(ctx, txn)
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletReaderRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletReaderRepository(db, nil)
	minBalance := decimal.NewFromInt(-100)
	now := time.Now()

	filter := models.WalletFilter{
		MinBalance: &minBalance,
		Search:     "acme",
		Page:       models.Page{Page: 2, Limit: 5},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM wallets w JOIN users u ON u.id = w.owner_id WHERE w.balance >= $1 AND (u.name ILIKE $2 ESCAPE '\' OR u.email ILIKE $2 ESCAPE '\' OR u.company ILIKE $2 ESCAPE '\')`)).
		WithArgs(sqlmock.AnyArg(), "%acme%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	cols := append(append([]string{}, walletRowColumns...), "owner_name", "owner_email", "owner_company")
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY w.created_at DESC LIMIT $3 OFFSET $4")).
		WithArgs(sqlmock.AnyArg(), "%acme%", 5, 5).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(uuid.NewString(), uuid.NewString(), "10.0000", "0.0000", 0, now, now, "Jane", "jane@acme.test", "Acme Travel"))

	items, total, err := repo.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme Travel", items[0].OwnerCompany)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletReaderRepository_ListEscapesSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletReaderRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(`%100\%\_off\\%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
		WithArgs(`%100\%\_off\\%`, models.DefaultLimit, 0).
		WillReturnRows(sqlmock.NewRows(walletRowColumns))

	items, total, err := repo.List(context.Background(), models.WalletFilter{Search: `100%_off\`})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "acme", escapeLike("acme"))
	assert.Equal(t, `50\%`, escapeLike("50%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}

func TestWalletReaderRepository_ListTransactions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletReaderRepository(db, nil)
	walletID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM wallet_transactions WHERE wallet_id = $1")).
		WithArgs(walletID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY date DESC, id DESC LIMIT $2 OFFSET $3")).
		WithArgs(walletID, 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "wallet_id", "type", "amount", "description", "reference", "date"}).
			AddRow(uuid.NewString(), walletID.String(), "debit", "5.0000", "fee", nil, now).
			AddRow(uuid.NewString(), walletID.String(), "credit", "7.0000", "refund", "R-1", now.Add(-time.Hour)))

	items, total, err := repo.ListTransactions(context.Background(), walletID, models.Page{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, items, 2)
	assert.Nil(t, items[0].Reference)
	require.NotNil(t, items[1].Reference)
	assert.Equal(t, "R-1", *items[1].Reference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(sql.ErrNoRows), models.ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: pgUniqueViolation}), models.ErrConflict)

	other := &pgconn.PgError{Code: "22001"}
	assert.Equal(t, other, mapError(other))
}
