package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-WeddingBooking/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-WeddingBooking/internal/usecase/get_calendar"
)

const (
	msgInvalidYear  = "năm không hợp lệ"
	msgInvalidMonth = "tháng không hợp lệ, từ 1 đến 12"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?year=2024&month=2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}
	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidYear):
			handlers.RespondBadRequest(w, msgInvalidYear)

		case errors.Is(err, getCalendar.ErrInvalidMonth):
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built: year=%d, month=%d", year, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
