package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// UseCase use case создания бронирования.
//
// Непосредственно перед записью повторно проверяет занятость выбранных слотов
// по принудительно свежим данным: между оптимистичной проверкой (check_slot)
// и подтверждением другой поставщик мог занять слот. Проверка best-effort,
// без блокировок на уровне хранилища - остаточная гонка между финальной
// проверкой и самой записью принята как допустимый риск.
type UseCase struct {
	reservationRepo ReservationRepository
	freshFetcher    FreshReservationFetcher
	cache           CacheInvalidator
	mailer          Mailer
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	freshFetcher FreshReservationFetcher,
	cache CacheInvalidator,
	mailer Mailer,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		freshFetcher:    freshFetcher,
		cache:           cache,
		mailer:          mailer,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: supplier=%d, date=%s, units=%d, slots=%v",
		req.SupplierID, req.Date.Format(domain.DateFormat), req.Units, req.StartTimes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Выбор должен быть корректным вариантом каталога
	if err := validateSelection(req.Date, req.Units, req.StartTimes); err != nil {
		uc.logger.Warn("CreateBooking: selection validation failed: %v", err)
		return nil, err
	}

	// 4. Финальная проверка конфликтов по свежим данным, минуя кеш
	reservations, err := uc.freshFetcher.GetByDateFresh(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to fetch reservations for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	occupied := domain.BuildOccupiedSet(reservations, req.Date)
	if occupied.ContainsAny(req.StartTimes) {
		uc.logger.Warn("CreateBooking: conflict detected for supplier=%d, date=%s, slots=%v",
			req.SupplierID, req.Date.Format(domain.DateFormat), req.StartTimes)
		return nil, ErrSlotConflict
	}

	// 5. Запись бронирования в формате хранилища
	reservation := &domain.Reservation{
		Code:          uuid.NewString(),
		Date:          domain.StorageDate(req.Date),
		OccupiedTime:  domain.EncodeOccupiedTime(req.StartTimes),
		SupplierID:    req.SupplierID,
		SupplierName:  req.SupplierName,
		SupplierEmail: req.SupplierEmail,
		Units:         req.Units,
		OrderRefs:     strings.Join(req.OrderRefs, domain.OrderRefSeparator),
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to persist reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to persist reservation: %v", ErrInternal, err)
	}

	// 6. Сброс кеша даты: список слотов изменился. Ошибка кеша не откатывает
	// бронирование - TTL кеша короткий, а все проверки идут мимо кеша.
	if err := uc.cache.Invalidate(ctx, req.Date); err != nil {
		uc.logger.Warn("CreateBooking: cache invalidation failed for %s: %v",
			req.Date.Format(domain.DateFormat), err)
	}

	// 7. Подтверждение письмом, best-effort
	if err := uc.mailer.SendBookingConfirmation(created); err != nil {
		uc.logger.Warn("CreateBooking: confirmation email failed for %s: %v", created.Code, err)
	}

	uc.logger.Info("CreateBooking: reservation %s created (id=%d, occupied_time=%q)",
		created.Code, created.ID, created.OccupiedTime)

	return &Response{
		ID:           created.ID,
		Code:         created.Code,
		Date:         created.Date,
		OccupiedTime: created.OccupiedTime,
		StartTimes:   req.StartTimes,
		Units:        created.Units,
		OrderRefs:    created.OrderRefs,
		CreatedAt:    created.CreatedAt,
	}, nil
}
