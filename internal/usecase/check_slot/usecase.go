package check_slot

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// UseCase use case оптимистичной проверки выбранного слота.
//
// Выполняется в момент, когда поставщик выбрал вариант из списка: между
// отрисовкой списка и выбором другой поставщик мог занять слот. Та же
// проверка повторяется еще раз непосредственно перед записью (create_booking).
type UseCase struct {
	reservations FreshReservationFetcher
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservations FreshReservationFetcher, logger Logger) *UseCase {
	return &UseCase{
		reservations: reservations,
		logger:       logger,
	}
}

// Execute выполняет оптимистичную проверку выбранных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlot: supplier=%d, date=%s, units=%d, slots=%v",
		req.SupplierID, req.Date.Format(domain.DateFormat), req.Units, req.StartTimes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Выбор должен быть корректным вариантом каталога
	if err := validateSelection(req.Date, req.Units, req.StartTimes); err != nil {
		uc.logger.Warn("CheckSlot: selection validation failed: %v", err)
		return nil, err
	}

	// 3. Принудительно свежие бронирования, минуя кеш
	reservations, err := uc.reservations.GetByDateFresh(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckSlot: failed to fetch reservations for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	// 4. Для сдвоенного варианта конфликтом считается занятость любой половины
	occupied := domain.BuildOccupiedSet(reservations, req.Date)
	if occupied.ContainsAny(req.StartTimes) {
		uc.logger.Warn("CheckSlot: conflict detected for supplier=%d, date=%s, slots=%v",
			req.SupplierID, req.Date.Format(domain.DateFormat), req.StartTimes)
		return nil, ErrSlotConflict
	}

	uc.logger.Info("CheckSlot: slots %v still free on %s", req.StartTimes, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:         req.Date,
		StartTimes:   req.StartTimes,
		OccupiedTime: domain.EncodeOccupiedTime(req.StartTimes),
	}, nil
}
