package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований поставок
type ReservationRepository interface {
	GetBySupplier(ctx context.Context, supplierID int64) ([]*domain.Reservation, error)
	GetByCode(ctx context.Context, code string) (*domain.Reservation, error)
	DeleteByCode(ctx context.Context, code string) error
}

// CacheInvalidator интерфейс сброса кеша бронирований по дате
type CacheInvalidator interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
