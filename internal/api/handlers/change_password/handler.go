package change_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WeddingBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WeddingBooking/internal/api/middleware"
	"github.com/m04kA/SMC-WeddingBooking/internal/service/auth"
)

const (
	msgInvalidRequestBody = "dữ liệu yêu cầu không hợp lệ"
	msgMissingFields      = "vui lòng điền đầy đủ thông tin"
	msgWrongPassword      = "mật khẩu hiện tại không đúng"
	msgPasswordTooShort   = "mật khẩu mới phải có ít nhất 4 ký tự"
	msgPasswordMismatch   = "mật khẩu xác nhận không khớp"
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

// Handle PUT /api/v1/auth/password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.GetUsername(r.Context())

	var req ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /auth/password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.ChangePassword(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, auth.ErrWrongPassword):
			h.logger.Warn("PUT /auth/password - Wrong current password: username=%s", username)
			handlers.RespondBadRequest(w, msgWrongPassword)

		case errors.Is(err, auth.ErrPasswordTooShort):
			handlers.RespondBadRequest(w, msgPasswordTooShort)

		case errors.Is(err, auth.ErrPasswordMismatch):
			handlers.RespondBadRequest(w, msgPasswordMismatch)

		default:
			h.logger.Error("PUT /auth/password - Failed to change password: username=%s, error=%v", username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /auth/password - Password changed: username=%s", username)
	handlers.RespondNoContent(w)
}
