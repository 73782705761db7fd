package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-WeddingBooking/internal/domain"
	"github.com/m04kA/SMC-WeddingBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-WeddingBooking/pkg/psqlbuilder"
)

const tableBookings = "bookings"

var bookingColumns = []string{
	"id",
	"customer_name",
	"phone",
	"address",
	"shooting_date_time",
	"price",
	"deposit",
	"notes",
	"is_completed",
	"is_fully_paid",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"customer_name",
			"phone",
			"address",
			"shooting_date_time",
			"price",
			"deposit",
			"notes",
			"is_completed",
			"is_fully_paid",
		).
		Values(
			booking.CustomerName,
			booking.Phone,
			booking.Address,
			booking.ShootingDateTime,
			booking.Price,
			booking.Deposit,
			booking.Notes,
			booking.IsCompleted,
			booking.IsFullyPaid,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку до конца обновления
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру, отсортированные по времени съемки (ASC)
//
// Примеры:
//
//  1. Все бронирования:
//     filter := domain.BookingsFilter{Status: domain.StatusFilterAll}
//
//  2. Активные съемки за месяц:
//     filter := domain.BookingsFilter{Status: domain.StatusFilterActive, From: &monthStart, To: &nextMonthStart}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings)

	switch filter.Status {
	case domain.StatusFilterActive:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_completed": false})
	case domain.StatusFilterCompleted:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_completed": true})
	case domain.StatusFilterAll, "":
	default:
		return nil, fmt.Errorf("%w: List - unknown status %q", ErrInvalidFilter, filter.Status)
	}

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"shooting_date_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"shooting_date_time": *filter.To})
	}

	query, args, err := selectBuilder.
		OrderBy("shooting_date_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update применяет частичное обновление и возвращает обновленное бронирование
// updated_at всегда выставляется в NOW()
func (r *Repository) Update(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(tableBookings)

	if patch.CustomerName != nil {
		updateBuilder = updateBuilder.Set("customer_name", *patch.CustomerName)
	}
	if patch.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *patch.Phone)
	}
	if patch.Address != nil {
		updateBuilder = updateBuilder.Set("address", *patch.Address)
	}
	if patch.ShootingDateTime != nil {
		updateBuilder = updateBuilder.Set("shooting_date_time", *patch.ShootingDateTime)
	}
	if patch.Price != nil {
		updateBuilder = updateBuilder.Set("price", *patch.Price)
	}
	if patch.Deposit != nil {
		updateBuilder = updateBuilder.Set("deposit", *patch.Deposit)
	}
	if patch.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *patch.Notes)
	}
	if patch.IsCompleted != nil {
		updateBuilder = updateBuilder.Set("is_completed", *patch.IsCompleted)
	}
	if patch.IsFullyPaid != nil {
		updateBuilder = updateBuilder.Set("is_fully_paid", *patch.IsFullyPaid)
	}

	query, args, err := updateBuilder.
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.Phone,
		&booking.Address,
		&booking.ShootingDateTime,
		&booking.Price,
		&booking.Deposit,
		&booking.Notes,
		&booking.IsCompleted,
		&booking.IsFullyPaid,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
