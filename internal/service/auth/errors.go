package auth

import "errors"

var (
	// ErrInvalidCredentials неверное имя пользователя или пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrTooManyAttempts превышен лимит попыток входа
	ErrTooManyAttempts = errors.New("auth: too many login attempts")

	// ErrWrongPassword текущий пароль указан неверно
	ErrWrongPassword = errors.New("auth: current password is wrong")

	// ErrPasswordTooShort новый пароль короче минимальной длины
	ErrPasswordTooShort = errors.New("auth: new password is too short")

	// ErrPasswordMismatch новый пароль и подтверждение не совпадают
	ErrPasswordMismatch = errors.New("auth: password confirmation does not match")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInvalidToken токен не прошел проверку
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("auth: internal error")
)
