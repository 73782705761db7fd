package create_booking

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// normalizeRequest убирает пробелы по краям текстовых полей
func normalizeRequest(req *Request) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	req.Notes = strings.TrimSpace(req.Notes)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.ShootingDateTime.IsZero() {
		return fmt.Errorf("%w: shootingDateTime is required", ErrInvalidInput)
	}

	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Deposit.IsNegative() {
		return fmt.Errorf("%w: deposit must not be negative", ErrInvalidInput)
	}

	if req.Deposit.GreaterThan(req.Price) {
		return ErrDepositExceedsPrice
	}

	return nil
}
