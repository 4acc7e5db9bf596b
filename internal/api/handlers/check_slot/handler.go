package check_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
	checkSlot "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/check_slot"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные параметры запроса"
	msgInvalidTimeSlot    = "некорректный выбор временного слота"
	msgSlotConflict       = "выбранный слот уже занят, выберите другой"
	msgStoreConflict      = "не удалось получить актуальную занятость слотов, попробуйте позже"
)

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	supplier, ok := middleware.SupplierFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/check - Missing supplier claims in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CheckSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(supplier.SupplierID)
	if err != nil {
		h.logger.Warn("POST /bookings/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSlot.ErrInvalidInput):
			h.logger.Warn("POST /bookings/check - Invalid input: supplier_id=%d, error=%v",
				supplier.SupplierID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkSlot.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings/check - Invalid time slot: supplier_id=%d, date=%s",
				supplier.SupplierID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, checkSlot.ErrSlotConflict):
			h.logger.Warn("POST /bookings/check - Slot conflict: supplier_id=%d, date=%s, slots=%v",
				supplier.SupplierID, req.Date, req.StartTimes)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, checkSlot.ErrFetchFailed):
			h.logger.Error("POST /bookings/check - Availability unknown: supplier_id=%d, date=%s, error=%v",
				supplier.SupplierID, req.Date, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreConflict)

		default:
			h.logger.Error("POST /bookings/check - Failed to check slot: supplier_id=%d, date=%s, error=%v",
				supplier.SupplierID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/check - Slot available: supplier_id=%d, date=%s, slots=%v",
		supplier.SupplierID, req.Date, req.StartTimes)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
