package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/metrics"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные параметры запроса"
	msgInvalidBookingDate = "дата поставки не может быть в прошлом"
	msgInvalidTimeSlot    = "некорректный выбор временного слота"
	msgSlotConflict       = "выбранный слот уже занят, выберите другой"
	msgStoreConflict      = "не удалось получить актуальную занятость слотов, попробуйте позже"
)

type Handler struct {
	useCase CreateBookingUseCase
	metrics *metrics.Metrics // nil, если метрики выключены
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, metricsCollector *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metricsCollector,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	supplier, ok := middleware.SupplierFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing supplier claims in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(supplier)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: supplier_id=%d, error=%v",
				supplier.SupplierID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: supplier_id=%d, date=%s",
				supplier.SupplierID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: supplier_id=%d, date=%s",
				supplier.SupplierID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: supplier_id=%d, date=%s, slots=%v",
				supplier.SupplierID, req.Date, req.StartTimes)
			if h.metrics != nil {
				h.metrics.BookingConflicts.Inc()
			}
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrFetchFailed):
			h.logger.Error("POST /bookings - Availability unknown: supplier_id=%d, date=%s, error=%v",
				supplier.SupplierID, req.Date, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: supplier_id=%d, date=%s, error=%v",
				supplier.SupplierID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.BookingsCreated.Inc()
	}

	h.logger.Info("POST /bookings - Booking created: code=%s, supplier_id=%d, date=%s, slots=%v",
		result.Code, supplier.SupplierID, req.Date, req.StartTimes)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
