package dbmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WeddingBooking/pkg/metrics"
)

func newMock(t *testing.T) (*DB, sqlmock.Sqlmock, *metrics.Metrics) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := metrics.New("test")
	return Wrap(db, m), mock, m
}

func TestOperationName(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "SELECT id FROM bookings", want: "select"},
		{query: "  insert into bookings (customer_name) VALUES ($1)", want: "insert"},
		{query: "\n\tUPDATE bookings SET is_completed = true", want: "update"},
		{query: "DELETE FROM bookings WHERE id = $1", want: "delete"},
		{query: "", want: "unknown"},
		{query: "   ", want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, operationName(tt.query))
		})
	}
}

func TestGetExecutor(t *testing.T) {
	db, mock, _ := newMock(t)

	ctx := context.Background()
	assert.Same(t, db, GetExecutor(ctx, db))
	assert.False(t, IsInTransaction(ctx))

	mock.ExpectBegin()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.Same(t, tx, GetExecutor(txCtx, db))
	assert.True(t, IsInTransaction(txCtx))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_ObservesQueries(t *testing.T) {
	db, mock, m := newMock(t)
	ctx := context.Background()

	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM bookings").WillReturnError(errors.New("connection reset"))

	_, err := db.ExecContext(ctx, "UPDATE bookings SET notes = $1", "")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "DELETE FROM bookings WHERE id = $1", 1)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("update", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("delete", "error")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTx_ObservesQueries(t *testing.T) {
	db, mock, m := newMock(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	_, err = tx.ExecContext(ctx, "INSERT INTO bookings (customer_name) VALUES ($1)", "Lan")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("insert", "success")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWrap_WithoutMetrics(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()

	db := Wrap(raw, nil)
	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 2))

	res, err := db.ExecContext(context.Background(), "UPDATE bookings SET notes = ''")
	require.NoError(t, err)
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
}
