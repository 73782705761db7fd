package update_booking

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-WeddingBooking/internal/domain"
	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-WeddingBooking/pkg/vntime"
)

var errPartialDateTime = errors.New("shootingDate and shootingTime must be set together")

// UpdateBookingRequest HTTP request model, все поля опциональны
type UpdateBookingRequest struct {
	CustomerName *string  `json:"customerName,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Address      *string  `json:"address,omitempty"`
	ShootingDate *string  `json:"shootingDate,omitempty"` // YYYY-MM-DD
	ShootingTime *string  `json:"shootingTime,omitempty"` // HH:MM
	Price        *float64 `json:"price,omitempty"`
	Deposit      *float64 `json:"deposit,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	IsFullyPaid  *bool    `json:"isFullyPaid,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest() (*models.UpdateBookingRequest, error) {
	req := &models.UpdateBookingRequest{
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
		Address:      r.Address,
		Notes:        r.Notes,
		IsFullyPaid:  r.IsFullyPaid,
	}

	if (r.ShootingDate == nil) != (r.ShootingTime == nil) {
		return nil, errPartialDateTime
	}
	if r.ShootingDate != nil {
		shootingAt, err := time.ParseInLocation(
			domain.DateFormat+" "+domain.TimeFormat,
			*r.ShootingDate+" "+*r.ShootingTime,
			vntime.Location(),
		)
		if err != nil {
			return nil, err
		}
		req.ShootingDateTime = &shootingAt
	}

	if r.Price != nil {
		price := decimal.NewFromFloat(*r.Price)
		req.Price = &price
	}
	if r.Deposit != nil {
		deposit := decimal.NewFromFloat(*r.Deposit)
		req.Deposit = &deposit
	}

	return req, nil
}
