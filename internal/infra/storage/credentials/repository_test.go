package credentials

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_GetPasswordHash(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT password_hash FROM admin_credentials WHERE username = $1")).
		WithArgs("Admin").
		WillReturnRows(sqlmock.NewRows([]string{"password_hash"}).AddRow("$2a$10$hash"))

	hash, err := repo.GetPasswordHash(context.Background(), "Admin")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", hash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetPasswordHash_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT password_hash").
		WillReturnRows(sqlmock.NewRows([]string{"password_hash"}))

	_, err := repo.GetPasswordHash(context.Background(), "Admin")
	assert.ErrorIs(t, err, ErrCredentialsNotFound)
}

func TestRepository_UpsertPasswordHash(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO admin_credentials (username,password_hash) VALUES ($1,$2) ON CONFLICT (username) DO UPDATE")).
		WithArgs("Admin", "new-hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertPasswordHash(context.Background(), "Admin", "new-hash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertPasswordHash_Error(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("INSERT INTO admin_credentials").WillReturnError(errors.New("connection reset"))

	err := repo.UpsertPasswordHash(context.Background(), "Admin", "new-hash")
	assert.ErrorIs(t, err, ErrExecQuery)
}
