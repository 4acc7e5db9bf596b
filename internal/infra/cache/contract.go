package cache

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ReservationFetcher источник списков бронирований (репозиторий)
type ReservationFetcher interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
