package get_dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WeddingBooking/internal/domain"
	"github.com/m04kA/SMC-WeddingBooking/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRepo struct {
	bookings []*domain.Booking
	err      error
}

func (r *fakeRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return r.bookings, r.err
}

var now = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func booking(id int64, inDays float64, price, deposit int64) *domain.Booking {
	return &domain.Booking{
		ID:               id,
		ShootingDateTime: now.Add(time.Duration(inDays * 24 * float64(time.Hour))),
		Price:            decimal.NewFromInt(price),
		Deposit:          decimal.NewFromInt(deposit),
	}
}

func fixture() []*domain.Booking {
	paid := booking(2, 10, 20, 5)
	paid.IsFullyPaid = true

	completed := booking(5, -20, 30, 10)
	completed.IsCompleted = true

	return []*domain.Booking{
		booking(1, 3, 10, 4),  // ближайшая
		paid,                  // в окне, оплачена полностью
		booking(3, 45, 50, 0), // после окна
		booking(4, -2, 15, 5), // прошедшая, но не завершенная
		completed,
	}
}

func TestSummarize_Counts(t *testing.T) {
	resp := Summarize(fixture(), now)

	assert.Equal(t, 5, resp.TotalBookings)
	assert.Equal(t, 1, resp.CompletedBookings)
	assert.Equal(t, 2, resp.UpcomingBookings)
	assert.Equal(t, 1, resp.FutureBookings)
	assert.Equal(t, now.Add(30*24*time.Hour), resp.WindowEnd)
}

func TestSummarize_Money(t *testing.T) {
	resp := Summarize(fixture(), now)

	// активные: 10 + 20 + 50 + 15
	assert.True(t, decimal.NewFromInt(95).Equal(resp.TotalRevenue), resp.TotalRevenue.String())
	// 4 + 20 (оплачено) + 0 + 5, плюс 30 за завершенную
	assert.True(t, decimal.NewFromInt(59).Equal(resp.TotalCollected), resp.TotalCollected.String())
	assert.True(t, decimal.NewFromInt(36).Equal(resp.TotalRemaining), resp.TotalRemaining.String())
	assert.True(t, decimal.NewFromInt(30).Equal(resp.UpcomingRevenue), resp.UpcomingRevenue.String())
	// (10-4) + (20-5)
	assert.True(t, decimal.NewFromInt(21).Equal(resp.UpcomingRemaining), resp.UpcomingRemaining.String())
}

func TestSummarize_UpcomingList(t *testing.T) {
	resp := Summarize(fixture(), now)

	require.Len(t, resp.UpcomingList, 3)
	assert.Equal(t, int64(1), resp.UpcomingList[0].ID)
	assert.Equal(t, 3, resp.UpcomingList[0].DaysUntil)
	assert.Equal(t, int64(2), resp.UpcomingList[1].ID)
	assert.Equal(t, int64(3), resp.UpcomingList[2].ID)
}

func TestSummarize_UpcomingListLimit(t *testing.T) {
	bookings := make([]*domain.Booking, 0)
	for i := 8; i >= 1; i-- {
		bookings = append(bookings, booking(int64(i), float64(i), 1, 0))
	}

	resp := Summarize(bookings, now)

	require.Len(t, resp.UpcomingList, domain.UpcomingListLimit)
	for i, b := range resp.UpcomingList {
		assert.Equal(t, int64(i+1), b.ID)
	}
}

func TestSummarize_Empty(t *testing.T) {
	resp := Summarize(nil, now)

	assert.Zero(t, resp.TotalBookings)
	assert.Empty(t, resp.UpcomingList)
	assert.True(t, resp.TotalRemaining.IsZero())
}

func TestExecute(t *testing.T) {
	uc := NewUseCase(&fakeRepo{bookings: fixture()}, logger.NewNop()).
		WithTimeProvider(fixedTime{now: now})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalBookings)
	assert.Equal(t, now, resp.GeneratedAt)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := NewUseCase(&fakeRepo{err: errors.New("db down")}, logger.NewNop())

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
