package domain

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

// SlotCatalog returns the ordered list of bookable half-hour slot start times
// for the weekday of the given date. Sunday has no slots. The catalog depends
// only on the weekday, never on existing reservations.
func SlotCatalog(date time.Time) []types.TimeString {
	switch date.Weekday() {
	case time.Sunday:
		return []types.TimeString{}
	case time.Saturday:
		return generateSlots(SaturdayOpenTime, SaturdayCloseTime)
	default:
		return generateSlots(WeekdayOpenTime, WeekdayCloseTime)
	}
}

// generateSlots генерирует слоты от открытия до закрытия с шагом SlotDurationMinutes.
// Слот, конец которого выходит за время закрытия, не включается.
func generateSlots(openTime, closeTime types.TimeString) []types.TimeString {
	slots := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slotEnd, err := current.AddMinutes(SlotDurationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		slots = append(slots, current)

		current, err = current.AddMinutes(SlotDurationMinutes)
		if err != nil {
			break
		}
	}

	return slots
}

// InCatalog reports whether start is one of the catalog slots for the date.
func InCatalog(date time.Time, start types.TimeString) bool {
	for _, slot := range SlotCatalog(date) {
		if slot == start {
			return true
		}
	}
	return false
}
