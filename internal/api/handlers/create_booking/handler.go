package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WeddingBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-WeddingBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgInvalidDateTime    = "ngày giờ chụp không hợp lệ, định dạng YYYY-MM-DD và HH:MM"
	msgInvalidInput       = "vui lòng điền đầy đủ tên, số điện thoại, địa chỉ và giá hợp lệ"
	msgDepositExceeds     = "tiền cọc không được lớn hơn tổng giá"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid shooting date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrDepositExceedsPrice):
			handlers.RespondBadRequest(w, msgDepositExceeds)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, date=%s", result.ID, result.ShootingDate)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
