package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ReservationRepository интерфейс записи бронирований в хранилище
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// FreshReservationFetcher источник бронирований, принудительно минующий кеш
type FreshReservationFetcher interface {
	GetByDateFresh(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// CacheInvalidator сброс кеша даты после изменения списка бронирований
type CacheInvalidator interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// Mailer отправка подтверждения бронирования
type Mailer interface {
	SendBookingConfirmation(res *domain.Reservation) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
