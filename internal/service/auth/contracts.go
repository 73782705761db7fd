package auth

import (
	"context"
	"time"
)

// CredentialsRepository хранилище хэшей паролей
type CredentialsRepository interface {
	GetPasswordHash(ctx context.Context, username string) (string, error)
	UpsertPasswordHash(ctx context.Context, username, hash string) error
}

// AttemptRecorder счетчик попыток входа
type AttemptRecorder interface {
	IncLoginAttempt(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
