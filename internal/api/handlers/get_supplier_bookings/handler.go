package get_supplier_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
)

const msgUnauthorized = "требуется авторизация"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/suppliers/bookings
// Возвращает историю бронирований авторизованного поставщика
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	supplier, ok := middleware.SupplierFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /suppliers/bookings - Missing supplier claims in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetSupplierBookings(r.Context(), supplier.SupplierID)
	if err != nil {
		h.logger.Error("GET /suppliers/bookings - Failed to fetch bookings: supplier_id=%d, error=%v",
			supplier.SupplierID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /suppliers/bookings - Bookings retrieved: supplier_id=%d, count=%d",
		supplier.SupplierID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
