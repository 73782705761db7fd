package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-WeddingBooking/internal/domain"
	"github.com/m04kA/SMC-WeddingBooking/pkg/lunar"
	"github.com/m04kA/SMC-WeddingBooking/pkg/vntime"
)

// Request модели

// UpdateBookingRequest частичное обновление бронирования
// nil поля не изменяются; статус завершения меняется только через Complete
type UpdateBookingRequest struct {
	CustomerName     *string          `json:"customerName,omitempty" validate:"omitempty,min=1,max=255"`
	Phone            *string          `json:"phone,omitempty" validate:"omitempty,min=1,max=32"`
	Address          *string          `json:"address,omitempty" validate:"omitempty,min=1"`
	ShootingDateTime *time.Time       `json:"shootingDateTime,omitempty"`
	Price            *decimal.Decimal `json:"price,omitempty"`
	Deposit          *decimal.Decimal `json:"deposit,omitempty"`
	Notes            *string          `json:"notes,omitempty" validate:"omitempty,max=2000"`
	IsFullyPaid      *bool            `json:"isFullyPaid,omitempty"`
}

// ToDomainPatch конвертирует запрос в domain патч
func (r *UpdateBookingRequest) ToDomainPatch() domain.BookingPatch {
	return domain.BookingPatch{
		CustomerName:     r.CustomerName,
		Phone:            r.Phone,
		Address:          r.Address,
		ShootingDateTime: r.ShootingDateTime,
		Price:            r.Price,
		Deposit:          r.Deposit,
		Notes:            r.Notes,
		IsFullyPaid:      r.IsFullyPaid,
	}
}

// Response модели

// BookingResponse бронирование с вычисленными и отформатированными полями
type BookingResponse struct {
	ID               int64  `json:"id"`
	CustomerName     string `json:"customerName"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	ShootingDateTime string `json:"shootingDateTime"` // RFC3339
	Notes            string `json:"notes"`

	// Представление даты для вьетнамского пользователя
	ShootingDate string          `json:"shootingDate"` // dd/mm/yyyy
	ShootingTime string          `json:"shootingTime"` // HH:MM
	Weekday      string          `json:"weekday"`
	Lunar        lunar.LunarDate `json:"lunar"`
	LunarText    string          `json:"lunarText"`   // "d/m Âm lịch"
	DisplayDate  string          `json:"displayDate"` // "Thứ Bảy, 10/02/2024 - 1/1 Âm lịch"

	Price          float64 `json:"price"`
	Deposit        float64 `json:"deposit"`
	Remaining      float64 `json:"remaining"`
	DepositPercent int     `json:"depositPercent"`

	IsCompleted bool `json:"isCompleted"`
	IsFullyPaid bool `json:"isFullyPaid"`
	IsPast      bool `json:"isPast"`
	DaysUntil   int  `json:"daysUntil"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse относительно момента now
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		CustomerName:     b.CustomerName,
		Phone:            b.Phone,
		Address:          b.Address,
		ShootingDateTime: b.ShootingDateTime.Format(time.RFC3339),
		Notes:            b.Notes,

		ShootingDate: vntime.FormatDate(b.ShootingDateTime),
		ShootingTime: vntime.FormatTime(b.ShootingDateTime),
		Weekday:      vntime.WeekdayName(vntime.ToVietnam(b.ShootingDateTime).Weekday()),
		Lunar:        vntime.Lunar(b.ShootingDateTime),
		LunarText:    vntime.FormatLunarDate(b.ShootingDateTime),
		DisplayDate:  vntime.FormatDateTimeWithLunar(b.ShootingDateTime),

		Price:          b.Price.InexactFloat64(),
		Deposit:        b.Deposit.InexactFloat64(),
		Remaining:      b.Remaining().InexactFloat64(),
		DepositPercent: b.DepositPercent(),

		IsCompleted: b.IsCompleted,
		IsFullyPaid: b.IsFullyPaid,
		IsPast:      b.IsPast(now),
		DaysUntil:   b.DaysUntil(now),

		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking, now time.Time) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b, now))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
