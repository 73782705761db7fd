package middleware

import "time"

// TokenValidator проверяет токен сессии и возвращает имя пользователя
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// HTTPRecorder принимает метрики HTTP запросов
type HTTPRecorder interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
