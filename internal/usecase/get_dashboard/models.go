package get_dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
)

// Response сводка по бронированиям на момент GeneratedAt
type Response struct {
	GeneratedAt time.Time
	WindowEnd   time.Time // GeneratedAt + 30 дней

	TotalBookings     int // все, включая завершенные
	CompletedBookings int
	UpcomingBookings  int // активные в окне [now, now+30d]
	FutureBookings    int // активные после окна

	// Ближайшие активные съемки (по возрастанию даты, не более 5)
	UpcomingList []*models.BookingResponse

	TotalRevenue      decimal.Decimal // стоимость активных
	TotalCollected    decimal.Decimal // получено по активным + стоимость завершенных
	TotalRemaining    decimal.Decimal // TotalRevenue - TotalCollected
	UpcomingRevenue   decimal.Decimal // стоимость активных в окне
	UpcomingRemaining decimal.Decimal // остаток по активным в окне
}
