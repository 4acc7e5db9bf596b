package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers"
	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/get_available_slots"
)

const (
	msgUnauthorized  = "требуется авторизация"
	msgMissingDate   = "дата обязательна"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUnits  = "количество паллет обязательно"
	msgInvalidUnits  = "некорректное количество паллет"
	msgInvalidInput  = "некорректные параметры запроса"
	msgStoreConflict = "не удалось получить актуальную занятость слотов, попробуйте позже"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD), units (required, >0)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	supplier, ok := middleware.SupplierFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /slots - Missing supplier claims in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date: supplier_id=%d", supplier.SupplierID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	unitsStr := r.URL.Query().Get("units")
	if unitsStr == "" {
		h.logger.Warn("GET /slots - Missing units: supplier_id=%d", supplier.SupplierID)
		handlers.RespondBadRequest(w, msgMissingUnits)
		return
	}

	units, err := strconv.Atoi(unitsStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid units: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnits)
		return
	}

	useCaseReq, err := ToUseCaseRequest(supplier.SupplierID, dateStr, units)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: supplier_id=%d, error=%v", supplier.SupplierID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrFetchFailed):
			h.logger.Error("GET /slots - Availability unknown: supplier_id=%d, date=%s, error=%v",
				supplier.SupplierID, dateStr, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreConflict)

		default:
			h.logger.Error("GET /slots - Failed to get slots: supplier_id=%d, date=%s, error=%v",
				supplier.SupplierID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved: supplier_id=%d, date=%s, units=%d, options_count=%d",
		supplier.SupplierID, dateStr, units, len(result.Options))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
