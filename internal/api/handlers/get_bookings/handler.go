package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WeddingBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings"
)

const (
	msgInvalidStatus = "trạng thái không hợp lệ, dùng active, completed hoặc all"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?status=active|completed|all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /bookings - Invalid status: %q", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: status=%q, error=%v", status, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: status=%q, count=%d", status, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
