package get_lunar

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-WeddingBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WeddingBooking/internal/domain"
	"github.com/m04kA/SMC-WeddingBooking/pkg/lunar"
	"github.com/m04kA/SMC-WeddingBooking/pkg/vntime"
)

const (
	msgInvalidDate = "ngày không hợp lệ, định dạng YYYY-MM-DD"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/lunar?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")

	date, err := time.ParseInLocation(domain.DateFormat, raw, vntime.Location())
	if err != nil {
		h.logger.Warn("GET /lunar - Invalid date %q: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	lunarDate, err := lunar.ConvertChecked(date.Day(), int(date.Month()), date.Year())
	if err != nil {
		h.logger.Warn("GET /lunar - Conversion rejected %q: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &LunarResponse{
		SolarDate:   vntime.FormatDate(date),
		Weekday:     vntime.WeekdayName(date.Weekday()),
		Lunar:       lunarDate,
		LunarText:   vntime.FormatLunar(lunarDate),
		DisplayDate: vntime.FormatDateTimeWithLunar(date),
	})
}
