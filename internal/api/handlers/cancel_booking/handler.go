package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-DeliveryBooking/internal/service/bookings"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgMissingCode     = "код бронирования обязателен"
	msgBookingNotFound = "бронирование не найдено"
	msgAccessDenied    = "бронирование принадлежит другому поставщику"
	msgCannotCancel    = "прошедшую поставку нельзя отменить"
)

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

// Handle PATCH /api/v1/bookings/{code}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	supplier, ok := middleware.SupplierFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{code}/cancel - Missing supplier claims in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	code := mux.Vars(r)["code"]
	if code == "" {
		h.logger.Warn("PATCH /bookings/{code}/cancel - Missing code: supplier_id=%d", supplier.SupplierID)
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	err := h.service.Cancel(r.Context(), code, supplier.SupplierID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrReservationNotFound):
			h.logger.Warn("PATCH /bookings/{code}/cancel - Not found: code=%s, supplier_id=%d",
				code, supplier.SupplierID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{code}/cancel - Access denied: code=%s, supplier_id=%d",
				code, supplier.SupplierID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingsService.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{code}/cancel - Cannot cancel past booking: code=%s, supplier_id=%d",
				code, supplier.SupplierID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{code}/cancel - Failed to cancel: code=%s, supplier_id=%d, error=%v",
				code, supplier.SupplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{code}/cancel - Booking cancelled: code=%s, supplier_id=%d",
		code, supplier.SupplierID)
	w.WriteHeader(http.StatusNoContent)
}
