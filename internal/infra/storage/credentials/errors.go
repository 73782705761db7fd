package credentials

import "errors"

var (
	// ErrCredentialsNotFound возвращается, когда для пользователя нет сохраненного пароля
	ErrCredentialsNotFound = errors.New("credentials.repository: credentials not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("credentials.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("credentials.repository: failed to execute query")
)
