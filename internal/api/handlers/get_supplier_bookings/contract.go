package get_supplier_bookings

import (
	"context"

	"github.com/m04kA/SMC-DeliveryBooking/internal/service/bookings/models"
)

type BookingsService interface {
	GetSupplierBookings(ctx context.Context, supplierID int64) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
