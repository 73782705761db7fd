package change_password

import (
	"context"

	"github.com/m04kA/SMC-WeddingBooking/internal/service/auth"
)

type AuthService interface {
	ChangePassword(ctx context.Context, req *auth.ChangePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
