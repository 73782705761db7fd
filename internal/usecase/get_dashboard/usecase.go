package get_dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-WeddingBooking/internal/domain"
	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
)

// UseCase use case для получения сводки (dashboard)
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute считает статистику и финансы по всем бронированиям
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{Status: domain.StatusFilterAll})
	if err != nil {
		uc.logger.Error("GetDashboard: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	resp := Summarize(bookings, now)

	uc.logger.Info("GetDashboard: total=%d, completed=%d, upcoming=%d, future=%d",
		resp.TotalBookings, resp.CompletedBookings, resp.UpcomingBookings, resp.FutureBookings)
	return resp, nil
}

// Summarize считает сводку по списку бронирований относительно момента now
func Summarize(bookings []*domain.Booking, now time.Time) *Response {
	windowEnd := now.Add(domain.UpcomingWindow)

	resp := &Response{
		GeneratedAt:       now,
		WindowEnd:         windowEnd,
		TotalBookings:     len(bookings),
		UpcomingList:      make([]*models.BookingResponse, 0, domain.UpcomingListLimit),
		TotalRevenue:      decimal.Zero,
		TotalCollected:    decimal.Zero,
		UpcomingRevenue:   decimal.Zero,
		UpcomingRemaining: decimal.Zero,
	}

	upcoming := make([]*domain.Booking, 0)

	for _, b := range bookings {
		if b.IsCompleted {
			resp.CompletedBookings++
			resp.TotalCollected = resp.TotalCollected.Add(b.Price)
			continue
		}

		resp.TotalRevenue = resp.TotalRevenue.Add(b.Price)
		resp.TotalCollected = resp.TotalCollected.Add(b.Collected())

		if b.IsWithin(now, windowEnd) {
			resp.UpcomingBookings++
			resp.UpcomingRevenue = resp.UpcomingRevenue.Add(b.Price)
			resp.UpcomingRemaining = resp.UpcomingRemaining.Add(b.Remaining())
		}
		if b.ShootingDateTime.After(windowEnd) {
			resp.FutureBookings++
		}
		if !b.ShootingDateTime.Before(now) {
			upcoming = append(upcoming, b)
		}
	}

	resp.TotalRemaining = resp.TotalRevenue.Sub(resp.TotalCollected)

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].ShootingDateTime.Before(upcoming[j].ShootingDateTime)
	})
	if len(upcoming) > domain.UpcomingListLimit {
		upcoming = upcoming[:domain.UpcomingListLimit]
	}
	for _, b := range upcoming {
		resp.UpcomingList = append(resp.UpcomingList, models.FromDomainBooking(b, now))
	}

	return resp
}
