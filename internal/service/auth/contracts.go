package auth

import (
	"context"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// SupplierRepository интерфейс таблицы учетных данных поставщиков
type SupplierRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Supplier, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
