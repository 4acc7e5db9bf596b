package check_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// FreshReservationFetcher источник бронирований, принудительно минующий кеш.
// Повторная проверка имеет смысл только по свежим данным.
type FreshReservationFetcher interface {
	GetByDateFresh(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
