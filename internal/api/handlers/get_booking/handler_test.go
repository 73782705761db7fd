package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings"
	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-WeddingBooking/pkg/logger"
)

type stubService struct{ err error }

func (s stubService) GetByID(_ context.Context, id int64) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{ID: id, CustomerName: "Nguyễn Thị Lan", LunarText: "1/1 Âm lịch"}, nil
}

func serve(svc stubService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{name: "ok", path: "/bookings/5", status: http.StatusOK},
		{name: "bad id", path: "/bookings/abc", status: http.StatusBadRequest},
		{name: "not found", path: "/bookings/5", err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "internal", path: "/bookings/5", err: bookings.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(stubService{err: tt.err}, tt.path)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandle_Body(t *testing.T) {
	w := serve(stubService{}, "/bookings/5")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.BookingResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, "Nguyễn Thị Lan", got.CustomerName)
	assert.Equal(t, "1/1 Âm lịch", got.LunarText)
}

func TestHandle_NotFoundMessage(t *testing.T) {
	w := serve(stubService{err: bookings.ErrBookingNotFound}, "/bookings/5")

	assert.JSONEq(t, `{"code":404,"message":"`+msgNotFound+`"}`, w.Body.String())
}
