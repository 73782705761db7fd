package get_dashboard

import (
	"time"

	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
	getDashboard "github.com/m04kA/SMC-WeddingBooking/internal/usecase/get_dashboard"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	GeneratedAt string `json:"generatedAt"`
	WindowEnd   string `json:"windowEnd"`

	TotalBookings     int `json:"totalBookings"`
	CompletedBookings int `json:"completedBookings"`
	UpcomingBookings  int `json:"upcomingBookings"`
	FutureBookings    int `json:"futureBookings"`

	UpcomingList []*models.BookingResponse `json:"upcomingList"`

	TotalRevenue      float64 `json:"totalRevenue"`
	TotalCollected    float64 `json:"totalCollected"`
	TotalRemaining    float64 `json:"totalRemaining"`
	UpcomingRevenue   float64 `json:"upcomingRevenue"`
	UpcomingRemaining float64 `json:"upcomingRemaining"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDashboard.Response) *DashboardResponse {
	upcoming := resp.UpcomingList
	if upcoming == nil {
		upcoming = []*models.BookingResponse{}
	}

	return &DashboardResponse{
		GeneratedAt:       resp.GeneratedAt.Format(time.RFC3339),
		WindowEnd:         resp.WindowEnd.Format(time.RFC3339),
		TotalBookings:     resp.TotalBookings,
		CompletedBookings: resp.CompletedBookings,
		UpcomingBookings:  resp.UpcomingBookings,
		FutureBookings:    resp.FutureBookings,
		UpcomingList:      upcoming,
		TotalRevenue:      resp.TotalRevenue.InexactFloat64(),
		TotalCollected:    resp.TotalCollected.InexactFloat64(),
		TotalRemaining:    resp.TotalRemaining.InexactFloat64(),
		UpcomingRevenue:   resp.UpcomingRevenue.InexactFloat64(),
		UpcomingRemaining: resp.UpcomingRemaining.InexactFloat64(),
	}
}
