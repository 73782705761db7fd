package auth

import (
	"time"

	"golang.org/x/time/rate"
)

// Login attempt results для метрик
const (
	AttemptSuccess  = "success"
	AttemptFailure  = "failure"
	AttemptThrottle = "throttled"
)

// Config параметры аутентификации
type Config struct {
	Username          string
	DefaultPassword   string // используется, пока пароль не сохранен в БД
	Secret            []byte
	TokenTTL          time.Duration
	RememberTTL       time.Duration
	MinPasswordLength int
	LoginRate         rate.Limit
	LoginBurst        int
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
	ClientIP   string `json:"-"`
}

// LoginResult выданный токен
type LoginResult struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// ChangePasswordRequest запрос на смену пароля
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}
