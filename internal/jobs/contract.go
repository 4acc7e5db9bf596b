package jobs

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ReservationFetcher интерфейс получения бронирований на дату
type ReservationFetcher interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// Mailer интерфейс отправки напоминаний
type Mailer interface {
	SendBookingReminder(reservation *domain.Reservation) error
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
