package domain

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

// Reservation represents one persisted delivery-slot booking in the shared
// list store. Date and OccupiedTime are kept in their raw stored form; use
// BuildOccupiedSet / Day to interpret them.
type Reservation struct {
	ID            int64
	Code          string // публичный код бронирования (uuid)
	Date          string // "YYYY-MM-DD" или "YYYY-MM-DD 00:00:00"
	OccupiedTime  string // "HH:MM:SS" или "HH:MM:SS, HH:MM:SS"
	SupplierID    int64
	SupplierName  string
	SupplierEmail string
	Units         int
	OrderRefs     string // номера заказов через ", "
	CreatedAt     time.Time
}

// SlotTimes возвращает каноничные слоты бронирования ("HH:MM")
func (r *Reservation) SlotTimes() []types.TimeString {
	return ParseOccupiedTimes(r.OccupiedTime)
}

// IsHighVolume returns true when the reservation needed a merged one-hour slot.
func (r *Reservation) IsHighVolume() bool {
	return r.Units >= HighVolumeUnitThreshold
}

// Day парсит календарный день бронирования из сохраненной даты
func (r *Reservation) Day() (time.Time, error) {
	stored := r.Date
	if len(stored) > len(DateFormat) {
		stored = stored[:len(DateFormat)]
	}
	return time.Parse(DateFormat, stored)
}

// IsUpcoming reports whether the reservation's day is today or later.
func (r *Reservation) IsUpcoming(now time.Time) bool {
	day, err := r.Day()
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !day.Before(today)
}
