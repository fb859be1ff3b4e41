package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserReadRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)
	id := uuid.New()
	email := gofakeit.Email()
	now := time.Now()
	cols := []string{"id", "name", "email", "company", "role", "password_hash", "created_at", "updated_at"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE lower(email) = lower($1)")).
		WithArgs(email).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(id.String(), "Jane", email, "Acme", "agent", "hash", now, now))

	u, err := repo.GetByEmail(context.Background(), "  "+email+" ")
	require.NoError(t, err)
	assert.Equal(t, id, u.UserID)
	assert.Equal(t, models.RoleAgent, u.Role)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)
	u := &models.UserDB{
		UserID:       uuid.New(),
		Name:         gofakeit.Name(),
		Email:        gofakeit.Email(),
		Company:      gofakeit.Company(),
		Role:         models.RoleAgent,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	assert.NoError(t, repo.Save(context.Background(), u))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
	assert.ErrorIs(t, repo.Save(context.Background(), u), models.ErrConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}
