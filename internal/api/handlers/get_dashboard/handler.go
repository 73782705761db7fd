package get_dashboard

import (
	"net/http"

	"github.com/m04kA/SMC-WeddingBooking/internal/api/handlers"
)

type Handler struct {
	useCase GetDashboardUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to build dashboard: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard - Dashboard built: total=%d, upcoming=%d",
		result.TotalBookings, result.UpcomingBookings)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
