package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatusFilter фильтр списка бронирований по состоянию
type BookingStatusFilter string

const (
	StatusFilterActive    BookingStatusFilter = "active"
	StatusFilterCompleted BookingStatusFilter = "completed"
	StatusFilterAll       BookingStatusFilter = "all"
)

// IsValid проверяет, что значение фильтра допустимо
func (f BookingStatusFilter) IsValid() bool {
	switch f {
	case StatusFilterActive, StatusFilterCompleted, StatusFilterAll:
		return true
	}
	return false
}

// Booking represents a wedding photo shoot booking
type Booking struct {
	ID               int64
	CustomerName     string
	Phone            string
	Address          string
	ShootingDateTime time.Time
	Price            decimal.Decimal
	Deposit          decimal.Decimal
	Notes            string

	IsCompleted bool // съемка проведена
	IsFullyPaid bool // клиент оплатил полную стоимость

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the shoot has not been completed yet
func (b *Booking) IsActive() bool {
	return !b.IsCompleted
}

// Remaining returns the amount still owed (price - deposit)
func (b *Booking) Remaining() decimal.Decimal {
	return b.Price.Sub(b.Deposit)
}

// DepositPercent returns deposit as a rounded percentage of price, 0 when price <= 0
func (b *Booking) DepositPercent() int {
	if !b.Price.IsPositive() {
		return 0
	}
	return int(b.Deposit.Div(b.Price).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// Collected returns the amount actually received
func (b *Booking) Collected() decimal.Decimal {
	if b.IsFullyPaid || b.IsCompleted {
		return b.Price
	}
	return b.Deposit
}

// IsPast returns true if the shooting time is before now
func (b *Booking) IsPast(now time.Time) bool {
	return b.ShootingDateTime.Before(now)
}

// DaysUntil returns ceil((shooting - now) / 24h); negative for past shoots
func (b *Booking) DaysUntil(now time.Time) int {
	hours := b.ShootingDateTime.Sub(now).Hours()
	return int(math.Ceil(hours / 24))
}

// IsWithin returns true if from <= shooting <= to
func (b *Booking) IsWithin(from, to time.Time) bool {
	return !b.ShootingDateTime.Before(from) && !b.ShootingDateTime.After(to)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Status BookingStatusFilter // пустое значение равносильно "all"
	From   *time.Time          // shooting_date_time >= From (опционально)
	To     *time.Time          // shooting_date_time < To (опционально)
}

// BookingPatch частичное обновление бронирования, nil - поле не меняется
type BookingPatch struct {
	CustomerName     *string
	Phone            *string
	Address          *string
	ShootingDateTime *time.Time
	Price            *decimal.Decimal
	Deposit          *decimal.Decimal
	Notes            *string
	IsCompleted      *bool
	IsFullyPaid      *bool
}

// IsEmpty returns true if nothing is going to be updated
func (p BookingPatch) IsEmpty() bool {
	return p.CustomerName == nil &&
		p.Phone == nil &&
		p.Address == nil &&
		p.ShootingDateTime == nil &&
		p.Price == nil &&
		p.Deposit == nil &&
		p.Notes == nil &&
		p.IsCompleted == nil &&
		p.IsFullyPaid == nil
}

// Apply returns a copy of the booking with the patch applied
func (p BookingPatch) Apply(b Booking) Booking {
	if p.CustomerName != nil {
		b.CustomerName = *p.CustomerName
	}
	if p.Phone != nil {
		b.Phone = *p.Phone
	}
	if p.Address != nil {
		b.Address = *p.Address
	}
	if p.ShootingDateTime != nil {
		b.ShootingDateTime = *p.ShootingDateTime
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.Deposit != nil {
		b.Deposit = *p.Deposit
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if p.IsCompleted != nil {
		b.IsCompleted = *p.IsCompleted
	}
	if p.IsFullyPaid != nil {
		b.IsFullyPaid = *p.IsFullyPaid
	}
	return b
}
