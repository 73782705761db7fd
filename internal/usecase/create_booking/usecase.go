package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WeddingBooking/internal/domain"
	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	events       EventRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	events EventRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		events:       events,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Новое бронирование всегда создается незавершенным
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("CreateBooking: customer=%q, shooting=%s, price=%s, deposit=%s",
		req.CustomerName, req.ShootingDateTime.Format(domain.DateTimeFormat), req.Price, req.Deposit)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	booking := &domain.Booking{
		CustomerName:     req.CustomerName,
		Phone:            req.Phone,
		Address:          req.Address,
		ShootingDateTime: req.ShootingDateTime,
		Price:            req.Price,
		Deposit:          req.Deposit,
		Notes:            req.Notes,
		IsCompleted:      false,
		IsFullyPaid:      req.IsFullyPaid,
	}

	// 2. Сохраняем в транзакции
	var created *domain.Booking
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = uc.bookingRepo.Create(txCtx, booking)
		return err
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.events.IncBookingEvent(domain.EventBookingCreated)
	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	return models.FromDomainBooking(created, uc.timeProvider.Now()), nil
}
