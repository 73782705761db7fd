package complete_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings"
	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-WeddingBooking/pkg/logger"
)

type stubService struct{ err error }

func (s stubService) Complete(_ context.Context, id int64) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{ID: id, IsCompleted: true}, nil
}

func serve(svc stubService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}/complete", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, path, nil))
	return w
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{name: "ok", path: "/bookings/3/complete", status: http.StatusOK},
		{name: "bad id", path: "/bookings/abc/complete", status: http.StatusBadRequest},
		{name: "not found", path: "/bookings/3/complete", err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "already completed", path: "/bookings/3/complete", err: bookings.ErrAlreadyCompleted, status: http.StatusConflict},
		{name: "internal", path: "/bookings/3/complete", err: bookings.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(stubService{err: tt.err}, tt.path)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
