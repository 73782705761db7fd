package get_calendar

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
	"github.com/m04kA/SMC-WeddingBooking/pkg/vntime"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRepo struct {
	bookings   []*domain.Booking
	err        error
	lastFilter domain.BookingsFilter
}

func (r *fakeRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	return r.bookings, r.err
}

func at(day, hour int) time.Time {
	return time.Date(2024, time.February, day, hour, 0, 0, 0, vntime.Location())
}

func newUseCase(repo *fakeRepo) *UseCase {
	return NewUseCase(repo, logger.NewNop()).
		WithTimeProvider(fixedTime{now: at(10, 8)})
}

func TestExecute_February2024(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{
		{ID: 1, ShootingDateTime: at(10, 15), Price: decimal.NewFromInt(1)},
		{ID: 2, ShootingDateTime: at(10, 7), Price: decimal.NewFromInt(1)},
		{ID: 3, ShootingDateTime: at(29, 9), Price: decimal.NewFromInt(1)},
	}}

	resp, err := newUseCase(repo).Execute(context.Background(), &Request{Year: 2024, Month: 2})
	require.NoError(t, err)

	assert.Equal(t, "Tháng 2", resp.MonthName)
	assert.Equal(t, []string{"CN", "T2", "T3", "T4", "T5", "T6", "T7"}, resp.WeekdayHeader)
	assert.Equal(t, 4, resp.LeadingBlanks) // 01.02.2024 - четверг
	require.Len(t, resp.Days, 29)

	tet := resp.Days[9]
	assert.Equal(t, 10, tet.Day)
	assert.Equal(t, "10/02/2024", tet.SolarDate)
	assert.Equal(t, 1, tet.Lunar.Day)
	assert.Equal(t, 1, tet.Lunar.Month)
	assert.Equal(t, 2024, tet.Lunar.Year)
	assert.True(t, tet.IsToday)
	require.Len(t, tet.Bookings, 2)
	assert.Equal(t, int64(2), tet.Bookings[0].ID)
	assert.Equal(t, int64(1), tet.Bookings[1].ID)

	eve := resp.Days[8]
	assert.Equal(t, 30, eve.Lunar.Day)
	assert.Equal(t, 12, eve.Lunar.Month)
	assert.Equal(t, 2023, eve.Lunar.Year)
	assert.False(t, eve.IsToday)
	assert.Empty(t, eve.Bookings)

	assert.Len(t, resp.Days[28].Bookings, 1)

	assert.Equal(t, domain.StatusFilterActive, repo.lastFilter.Status)
	require.NotNil(t, repo.lastFilter.From)
	require.NotNil(t, repo.lastFilter.To)
	assert.True(t, repo.lastFilter.From.Equal(at(1, 0)))
	assert.True(t, repo.lastFilter.To.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, vntime.Location())))
}

func TestExecute_LeapMonth(t *testing.T) {
	resp, err := newUseCase(&fakeRepo{}).Execute(context.Background(), &Request{Year: 2023, Month: 4})
	require.NoError(t, err)

	first := resp.Days[0]
	assert.Equal(t, 11, first.Lunar.Day)
	assert.Equal(t, 2, first.Lunar.Month)
	assert.True(t, first.Lunar.IsLeapMonth)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&fakeRepo{})

	_, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = uc.Execute(context.Background(), &Request{Year: 2024, Month: 0})
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = uc.Execute(context.Background(), &Request{Year: 1500, Month: 1})
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestExecute_RepositoryError(t *testing.T) {
	_, err := newUseCase(&fakeRepo{err: errors.New("db down")}).
		Execute(context.Background(), &Request{Year: 2024, Month: 2})
	assert.ErrorIs(t, err, ErrInternal)
}
