package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-WeddingBooking/internal/api/handlers"
)

type contextKey int

const (
	usernameKey contextKey = iota
	requestIDKey
)

const (
	msgMissingToken = "thiếu token xác thực"
	msgInvalidToken = "phiên đăng nhập không hợp lệ hoặc đã hết hạn"
)

// Auth пропускает запрос только с валидным заголовком Authorization: Bearer <token>
// Имя пользователя кладется в контекст
func Auth(validator TokenValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			username, err := validator.ValidateToken(token)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUsername возвращает имя пользователя, установленное Auth
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok && username != ""
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
