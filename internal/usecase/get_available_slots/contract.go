package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ReservationFetcher источник текущих бронирований на дату.
// Для отрисовки списка слотов допустим кешированный результат.
type ReservationFetcher interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
