package get_calendar

import (
	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-WeddingBooking/pkg/lunar"
)

// Поддерживаемый диапазон лет
const (
	MinYear = 1900
	MaxYear = 2199
)

// Request запрос сетки календаря на месяц
type Request struct {
	Year  int
	Month int // 1-12
}

// Response сетка календаря на месяц
type Response struct {
	Year          int
	Month         int
	MonthName     string   // "Tháng 2"
	WeekdayHeader []string // CN, T2 ... T7
	LeadingBlanks int      // пустые ячейки перед 1-м числом (неделя начинается с воскресенья)
	Days          []Day
}

// Day ячейка календаря
type Day struct {
	Day       int
	SolarDate string // dd/mm/yyyy
	Lunar     lunar.LunarDate
	IsToday   bool
	Bookings  []*models.BookingResponse // активные съемки дня по времени
}
