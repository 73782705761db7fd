package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-WeddingBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-WeddingBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-WeddingBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-WeddingBooking/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	events       EventRecorder
	timeProvider TimeProvider
	validate     *validator.Validate
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	events EventRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		events:       events,
		timeProvider: &RealTimeProvider{},
		validate:     validator.New(),
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// List возвращает бронирования по фильтру статуса (active, completed, all)
// Пустой статус равносилен active. Сначала идут последние созданные
func (s *Service) List(ctx context.Context, status string) (*models.BookingListResponse, error) {
	filter := domain.StatusFilterActive
	if status != "" {
		filter = domain.BookingStatusFilter(status)
	}
	if !filter.IsValid() {
		s.logger.Warn("List: invalid status=%s", status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.logger.Info("List: fetching bookings, status=%s", filter)

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{Status: filter})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].ID > bookings[j].ID
		}
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, s.timeProvider.Now()), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// Update частично обновляет бронирование
// Статус завершения не меняется; задаток после обновления не может превышать стоимость
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d", id)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.Deposit != nil && req.Deposit.IsNegative() {
		return nil, fmt.Errorf("%w: deposit must not be negative", ErrInvalidInput)
	}

	patch := req.ToDomainPatch()

	var updated *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		merged := patch.Apply(*current)
		if merged.Deposit.GreaterThan(merged.Price) {
			return ErrDepositExceedsPrice
		}

		updated, err = s.bookingRepo.Update(txCtx, id, patch)
		return err
	})
	if err != nil {
		return nil, s.mapRepositoryError("Update", id, err)
	}

	s.events.IncBookingEvent(domain.EventBookingUpdated)
	s.logger.Info("Update: successfully updated booking id=%d", id)
	return models.FromDomainBooking(updated, s.timeProvider.Now()), nil
}

// Complete отмечает съемку как проведенную
func (s *Service) Complete(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Complete: completing booking id=%d", id)

	var updated *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if current.IsCompleted {
			return ErrAlreadyCompleted
		}

		updated, err = s.bookingRepo.Update(txCtx, id, domain.BookingPatch{IsCompleted: ptr.Ptr(true)})
		return err
	})
	if err != nil {
		return nil, s.mapRepositoryError("Complete", id, err)
	}

	s.events.IncBookingEvent(domain.EventBookingCompleted)
	s.logger.Info("Complete: booking id=%d marked as completed", id)
	return models.FromDomainBooking(updated, s.timeProvider.Now()), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return s.mapRepositoryError("Delete", id, err)
	}

	s.events.IncBookingEvent(domain.EventBookingDeleted)
	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// mapRepositoryError переводит ошибки репозитория в ошибки сервиса
func (s *Service) mapRepositoryError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%d not found", op, id)
		return ErrBookingNotFound
	case errors.Is(err, ErrDepositExceedsPrice), errors.Is(err, ErrAlreadyCompleted):
		s.logger.Warn("%s: booking id=%d rejected: %v", op, id, err)
		return err
	default:
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
