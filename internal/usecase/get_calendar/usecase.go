package get_calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-WeddingBooking/internal/domain"
	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-WeddingBooking/pkg/lunar"
	"github.com/m04kA/SMC-WeddingBooking/pkg/vntime"
)

// UseCase use case для построения календаря месяца с лунными датами
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

// Execute строит сетку месяца: солнечная и лунная дата каждого дня и активные съемки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, req.Month)
	}
	if req.Year < MinYear || req.Year > MaxYear {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, req.Year)
	}

	now := uc.timeProvider.Now()
	month := time.Month(req.Month)
	monthStart := vntime.Date(req.Year, month, 1)
	monthEnd := monthStart.AddDate(0, 1, 0)

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		Status: domain.StatusFilterActive,
		From:   &monthStart,
		To:     &monthEnd,
	})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list bookings for %d-%02d: %v", req.Year, req.Month, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	byDay := groupByDay(bookings)
	daysInMonth := vntime.DaysInMonth(req.Year, month)

	resp := &Response{
		Year:          req.Year,
		Month:         req.Month,
		MonthName:     vntime.MonthName(month),
		WeekdayHeader: vntime.WeekdayShortNames(),
		LeadingBlanks: int(vntime.FirstWeekdayOfMonth(req.Year, month)),
		Days:          make([]Day, 0, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		date := vntime.Date(req.Year, month, d)

		dayBookings := make([]*models.BookingResponse, 0, len(byDay[d]))
		for _, b := range byDay[d] {
			dayBookings = append(dayBookings, models.FromDomainBooking(b, now))
		}

		resp.Days = append(resp.Days, Day{
			Day:       d,
			SolarDate: vntime.FormatDate(date),
			Lunar:     lunar.Convert(d, req.Month, req.Year),
			IsToday:   vntime.IsSameDay(date, now),
			Bookings:  dayBookings,
		})
	}

	uc.logger.Info("GetCalendar: built %s %d with %d bookings", resp.MonthName, req.Year, len(bookings))
	return resp, nil
}

// groupByDay раскладывает бронирования по дню месяца (во вьетнамском времени), по возрастанию времени
func groupByDay(bookings []*domain.Booking) map[int][]*domain.Booking {
	result := make(map[int][]*domain.Booking)
	for _, b := range bookings {
		day := vntime.ToVietnam(b.ShootingDateTime).Day()
		result[day] = append(result[day], b)
	}
	for _, list := range result {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].ShootingDateTime.Before(list[j].ShootingDateTime)
		})
	}
	return result
}
