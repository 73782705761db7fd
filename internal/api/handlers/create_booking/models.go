package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-WeddingBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-WeddingBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-WeddingBooking/pkg/vntime"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName string  `json:"customerName"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	ShootingDate string  `json:"shootingDate"` // YYYY-MM-DD
	ShootingTime string  `json:"shootingTime"` // HH:MM, время Вьетнама
	Price        float64 `json:"price"`
	Deposit      float64 `json:"deposit"`
	Notes        string  `json:"notes"`
	IsFullyPaid  bool    `json:"isFullyPaid"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	shootingAt, err := time.ParseInLocation(
		domain.DateFormat+" "+domain.TimeFormat,
		r.ShootingDate+" "+r.ShootingTime,
		vntime.Location(),
	)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:     r.CustomerName,
		Phone:            r.Phone,
		Address:          r.Address,
		ShootingDateTime: shootingAt,
		Price:            decimal.NewFromFloat(r.Price),
		Deposit:          decimal.NewFromFloat(r.Deposit),
		Notes:            r.Notes,
		IsFullyPaid:      r.IsFullyPaid,
	}, nil
}
