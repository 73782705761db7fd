package get_calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	getCalendar "github.com/m04kA/SMC-WeddingBooking/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-WeddingBooking/pkg/logger"
)

type stubUseCase struct{}

func (stubUseCase) Execute(_ context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, getCalendar.ErrInvalidMonth
	}
	return &getCalendar.Response{
		Year:  req.Year,
		Month: req.Month,
		Days:  []getCalendar.Day{{Day: 1, SolarDate: "01/02/2024"}},
	}, nil
}

func get(query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(stubUseCase{}, logger.NewNop()).Handle(w,
		httptest.NewRequest(http.MethodGet, "/api/v1/calendar"+query, nil))
	return w
}

func TestHandle(t *testing.T) {
	w := get("?year=2024&month=2")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bookings":[]`)

	assert.Equal(t, http.StatusBadRequest, get("?year=abc&month=2").Code)
	assert.Equal(t, http.StatusBadRequest, get("?year=2024").Code)
	assert.Equal(t, http.StatusBadRequest, get("?year=2024&month=13").Code)
}
