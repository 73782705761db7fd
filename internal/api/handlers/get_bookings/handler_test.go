package get_bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings"
	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-WeddingBooking/pkg/logger"
)

type stubService struct {
	err    error
	status string
}

func (s *stubService) List(_ context.Context, status string) (*models.BookingListResponse, error) {
	s.status = status
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{
		Bookings: []*models.BookingResponse{{ID: 1}, {ID: 2}},
		Total:    2,
	}, nil
}

func serve(svc *stubService, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "default", target: "/bookings", status: http.StatusOK},
		{name: "completed", target: "/bookings?status=completed", status: http.StatusOK},
		{name: "invalid status", target: "/bookings?status=archived", err: fmt.Errorf("%w: %q", bookings.ErrInvalidStatus, "archived"), status: http.StatusBadRequest},
		{name: "internal", target: "/bookings", err: bookings.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&stubService{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandle_PassesStatusAndReturnsList(t *testing.T) {
	svc := &stubService{}
	w := serve(svc, "/bookings?status=all")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "all", svc.status)

	var got models.BookingListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, 2, got.Total)
	assert.Len(t, got.Bookings, 2)
}

func TestHandle_InvalidStatusMessage(t *testing.T) {
	w := serve(&stubService{err: bookings.ErrInvalidStatus}, "/bookings?status=x")

	assert.JSONEq(t, `{"code":400,"message":"`+msgInvalidStatus+`"}`, w.Body.String())
}
