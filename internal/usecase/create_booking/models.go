package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName     string          `validate:"required,max=255"`
	Phone            string          `validate:"required,max=32"`
	Address          string          `validate:"required"`
	ShootingDateTime time.Time       // Дата и время съемки
	Price            decimal.Decimal // Полная стоимость
	Deposit          decimal.Decimal // Задаток
	Notes            string          `validate:"max=2000"`
	IsFullyPaid      bool            // Клиент сразу оплатил полностью
}

// Response созданное бронирование
type Response = models.BookingResponse
