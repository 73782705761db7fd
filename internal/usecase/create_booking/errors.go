package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDepositExceedsPrice возвращается, когда задаток больше стоимости
	ErrDepositExceedsPrice = errors.New("create_booking: deposit exceeds price")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
