package get_calendar

import (
	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
	getCalendar "github.com/m04kA/SMC-WeddingBooking/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-WeddingBooking/pkg/lunar"
	"github.com/m04kA/SMC-WeddingBooking/pkg/vntime"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year          int      `json:"year"`
	Month         int      `json:"month"`
	MonthName     string   `json:"monthName"`
	WeekdayHeader []string `json:"weekdayHeader"`
	LeadingBlanks int      `json:"leadingBlanks"`
	Days          []Day    `json:"days"`
}

// Day ячейка календаря
type Day struct {
	Day       int                       `json:"day"`
	SolarDate string                    `json:"solarDate"`
	Lunar     lunar.LunarDate           `json:"lunar"`
	LunarText string                    `json:"lunarText"`
	IsToday   bool                      `json:"isToday"`
	Bookings  []*models.BookingResponse `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]Day, 0, len(resp.Days))
	for _, d := range resp.Days {
		dayBookings := d.Bookings
		if dayBookings == nil {
			dayBookings = []*models.BookingResponse{}
		}
		days = append(days, Day{
			Day:       d.Day,
			SolarDate: d.SolarDate,
			Lunar:     d.Lunar,
			LunarText: vntime.FormatLunar(d.Lunar),
			IsToday:   d.IsToday,
			Bookings:  dayBookings,
		})
	}

	return &CalendarResponse{
		Year:          resp.Year,
		Month:         resp.Month,
		MonthName:     resp.MonthName,
		WeekdayHeader: resp.WeekdayHeader,
		LeadingBlanks: resp.LeadingBlanks,
		Days:          days,
	}
}
