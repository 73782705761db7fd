package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-WeddingBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-WeddingBooking/pkg/psqlbuilder"
)

const tableCredentials = "admin_credentials"

// Repository хранилище хэшей паролей администратора
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPasswordHash возвращает bcrypt хэш пароля пользователя
func (r *Repository) GetPasswordHash(ctx context.Context, username string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("password_hash").
		From(tableCredentials).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: GetPasswordHash - build select query: %v", ErrBuildQuery, err)
	}

	var hash string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrCredentialsNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetPasswordHash - scan: %v", ErrExecQuery, err)
	}

	return hash, nil
}

// UpsertPasswordHash сохраняет новый хэш пароля
func (r *Repository) UpsertPasswordHash(ctx context.Context, username, hash string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableCredentials).
		Columns("username", "password_hash").
		Values(username, hash).
		Suffix("ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertPasswordHash - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertPasswordHash - execute: %v", ErrExecQuery, err)
	}

	return nil
}
