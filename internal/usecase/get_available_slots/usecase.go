package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// UseCase use case получения доступных слотов на дату поставки
type UseCase struct {
	reservations ReservationFetcher
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservations ReservationFetcher, logger Logger) *UseCase {
	return &UseCase{
		reservations: reservations,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: supplier=%d, date=%s, units=%d",
		req.SupplierID, req.Date.Format(domain.DateFormat), req.Units)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Каталог слотов на день недели (воскресенье - пустой каталог, не ошибка)
	catalog := domain.SlotCatalog(req.Date)
	if len(catalog) == 0 {
		uc.logger.Info("GetAvailableSlots: no slots on %s (%s)",
			req.Date.Format(domain.DateFormat), req.Date.Weekday())
		return &Response{Date: req.Date, Units: req.Units, Options: []Option{}}, nil
	}

	// 3. Текущие бронирования на дату. Ошибка получения - жесткий отказ:
	// доступность не вычисляется по устаревшим или частичным данным.
	reservations, err := uc.reservations.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to fetch reservations for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	// 4. Занятые слоты и доступные варианты
	occupied := domain.BuildOccupiedSet(reservations, req.Date)
	options := buildOptions(catalog, occupied, req.Units)

	uc.logger.Info("GetAvailableSlots: %d options for date=%s, units=%d (%d slots occupied)",
		len(options), req.Date.Format(domain.DateFormat), req.Units, len(occupied))

	return &Response{
		Date:    req.Date,
		Units:   req.Units,
		Options: options,
	}, nil
}
