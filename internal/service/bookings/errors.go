package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidStatus возвращается при неизвестном фильтре статуса
	ErrInvalidStatus = errors.New("invalid booking status filter")

	// ErrDepositExceedsPrice возвращается, когда задаток больше стоимости
	ErrDepositExceedsPrice = errors.New("deposit exceeds price")

	// ErrAlreadyCompleted возвращается при повторном завершении съемки
	ErrAlreadyCompleted = errors.New("booking already completed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
