package login

import (
	"errors"
	"net"
	"net/http"

	"github.com/m04kA/SMC-WeddingBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WeddingBooking/internal/service/auth"
)

const (
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgMissingCredentials = "vui lòng nhập tên đăng nhập và mật khẩu"
	msgInvalidCredentials = "tên đăng nhập hoặc mật khẩu không đúng"
	msgTooManyAttempts    = "quá nhiều lần đăng nhập, vui lòng thử lại sau"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), req.ToServiceRequest(clientIP(r)))
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, auth.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrTooManyAttempts):
			w.Header().Set("Retry-After", "60")
			handlers.RespondTooManyRequests(w, msgTooManyAttempts)

		default:
			h.logger.Error("POST /auth/login - Failed to login: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Logged in: username=%s, remember_me=%t", result.Username, req.RememberMe)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}

// clientIP адрес клиента без порта
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
