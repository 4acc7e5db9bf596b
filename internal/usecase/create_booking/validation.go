package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SupplierID <= 0 {
		return fmt.Errorf("%w: supplierID must be positive", ErrInvalidInput)
	}

	if req.SupplierEmail == "" {
		return fmt.Errorf("%w: supplierEmail is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Units <= 0 {
		return fmt.Errorf("%w: units must be positive", ErrInvalidInput)
	}

	if len(req.StartTimes) == 0 {
		return fmt.Errorf("%w: startTimes is required", ErrInvalidInput)
	}

	for _, start := range req.StartTimes {
		if err := start.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if len(req.OrderRefs) == 0 {
		return fmt.Errorf("%w: at least one order reference is required", ErrInvalidInput)
	}
	for _, ref := range req.OrderRefs {
		if strings.TrimSpace(ref) == "" {
			return fmt.Errorf("%w: order reference must not be empty", ErrInvalidInput)
		}
	}

	return nil
}

// validateDate проверяет, что дата поставки не в прошлом
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateSelection проверяет, что выбранные слоты образуют корректный
// вариант для запрошенного объема: один слот каталога для обычной поставки,
// два смежных слота каталога для крупной.
func validateSelection(date time.Time, units int, startTimes []types.TimeString) error {
	if units >= domain.HighVolumeUnitThreshold {
		if len(startTimes) != 2 {
			return fmt.Errorf("%w: high-volume delivery requires exactly two contiguous slots", ErrInvalidTimeSlot)
		}

		next, err := startTimes[0].AddMinutes(domain.SlotDurationMinutes)
		if err != nil || next != startTimes[1] {
			return fmt.Errorf("%w: slots must be contiguous", ErrInvalidTimeSlot)
		}
	} else if len(startTimes) != 1 {
		return fmt.Errorf("%w: regular delivery requires exactly one slot", ErrInvalidTimeSlot)
	}

	for _, start := range startTimes {
		if !domain.InCatalog(date, start) {
			return fmt.Errorf("%w: %s is not a bookable slot on %s",
				ErrInvalidTimeSlot, start, date.Format(domain.DateFormat))
		}
	}

	return nil
}
