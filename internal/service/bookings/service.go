package bookings

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DeliveryBooking/internal/service/bookings/models"
)

// Service сервис для работы с историей бронирований поставщика
type Service struct {
	reservationRepo ReservationRepository
	cache           CacheInvalidator
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	cache CacheInvalidator,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		cache:           cache,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetSupplierBookings получает историю бронирований поставщика
func (s *Service) GetSupplierBookings(ctx context.Context, supplierID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("GetSupplierBookings: fetching reservations for supplier=%d", supplierID)

	reservations, err := s.reservationRepo.GetBySupplier(ctx, supplierID)
	if err != nil {
		s.logger.Error("GetSupplierBookings: repository error for supplier=%d: %v", supplierID, err)
		return nil, fmt.Errorf("%w: GetSupplierBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSupplierBookings: successfully fetched %d reservations for supplier=%d",
		len(reservations), supplierID)
	return models.FromDomainReservationList(reservations, s.timeProvider.Now()), nil
}

// Cancel отменяет бронирование по публичному коду.
// Поставщик может отменить только своё бронирование и только предстоящее.
func (s *Service) Cancel(ctx context.Context, code string, supplierID int64) error {
	s.logger.Info("Cancel: cancelling reservation code=%s by supplier=%d", code, supplierID)

	reservation, err := s.reservationRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation code=%s not found", code)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for code=%s: %v", code, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if reservation.SupplierID != supplierID {
		s.logger.Warn("Cancel: access denied for supplier=%d to reservation code=%s", supplierID, code)
		return ErrAccessDenied
	}

	if !reservation.IsUpcoming(s.timeProvider.Now()) {
		s.logger.Warn("Cancel: reservation code=%s is in the past, date=%s", code, reservation.Date)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.DeleteByCode(ctx, code); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation code=%s not found during deletion", code)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for code=%s: %v", code, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Слоты освободились, сбрасываем кеш даты. Ошибка кеша не откатывает отмену.
	if day, err := reservation.Day(); err == nil {
		if err := s.cache.Invalidate(ctx, day); err != nil {
			s.logger.Warn("Cancel: cache invalidation failed for code=%s: %v", code, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled reservation code=%s", code)
	return nil
}
