package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

// OccupiedSet множество занятых слотов на одну дату, ключ - каноничное "HH:MM"
type OccupiedSet map[types.TimeString]struct{}

// Add добавляет слот в множество
func (s OccupiedSet) Add(slot types.TimeString) {
	s[slot] = struct{}{}
}

// Contains проверяет, занят ли слот
func (s OccupiedSet) Contains(slot types.TimeString) bool {
	_, ok := s[slot]
	return ok
}

// ContainsAny проверяет, занят ли хотя бы один из слотов
func (s OccupiedSet) ContainsAny(slots []types.TimeString) bool {
	for _, slot := range slots {
		if s.Contains(slot) {
			return true
		}
	}
	return false
}

// BuildOccupiedSet normalizes the raw occupied-time fields of the stored
// reservations into a flat set of "HH:MM" keys for the target date.
//
// The store is not under this system's schema control, so the field may hold
// one value or two values joined by a comma, with or without seconds, and the
// stored date may carry a midnight time-of-day suffix. Values that fail to
// parse are treated as vacant (fail-open): under-reporting occupancy is safer
// than silently losing booking capability, and the commit-time re-check bounds
// the damage to one extra conflict error.
func BuildOccupiedSet(reservations []*Reservation, date time.Time) OccupiedSet {
	occupied := make(OccupiedSet)

	for _, res := range reservations {
		if !MatchesDate(res.Date, date) {
			continue
		}
		for _, slot := range ParseOccupiedTimes(res.OccupiedTime) {
			occupied.Add(slot)
		}
	}

	return occupied
}

// ParseOccupiedTimes разбирает сырое значение поля occupied_time в список
// каноничных слотов "HH:MM". Нераспознанные фрагменты пропускаются.
func ParseOccupiedTimes(raw string) []types.TimeString {
	parts := strings.Split(raw, ",")
	slots := make([]types.TimeString, 0, len(parts))

	for _, part := range parts {
		slot, err := NormalizeTimeValue(part)
		if err != nil {
			// fail-open: битое значение считается свободным слотом
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}

// NormalizeTimeValue приводит одно значение времени к каноничному "HH:MM".
// Принимает "H:MM", "HH:MM" и "HH:MM:SS" (секунды отбрасываются).
func NormalizeTimeValue(raw string) (types.TimeString, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("empty time value")
	}

	fields := strings.Split(trimmed, ":")
	if len(fields) < 2 {
		return "", fmt.Errorf("time value %q has no minute component", trimmed)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return "", fmt.Errorf("time value %q: bad hour: %v", trimmed, err)
	}

	minute, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return "", fmt.Errorf("time value %q: bad minute: %v", trimmed, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("time value %q out of range", trimmed)
	}

	return types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// EncodeOccupiedTime кодирует слоты бронирования в формат хранилища:
// "HH:MM:SS" для одиночного слота, "HH:MM:SS, HH:MM:SS" для сдвоенного.
func EncodeOccupiedTime(slots []types.TimeString) string {
	encoded := make([]string, len(slots))
	for i, slot := range slots {
		encoded[i] = slot.String() + ":00"
	}
	return strings.Join(encoded, OccupiedTimeSeparator)
}

// StorageDate возвращает дату в формате хранилища ("YYYY-MM-DD 00:00:00")
func StorageDate(date time.Time) string {
	return date.Format(DateFormat) + StoredDateSuffix
}

// MatchesDate reports whether a stored date value belongs to the target day.
// Stored dates come both as bare "YYYY-MM-DD" and as "YYYY-MM-DD 00:00:00"
// depending on which tool wrote the row, so matching is by date prefix.
func MatchesDate(storedDate string, date time.Time) bool {
	return strings.HasPrefix(strings.TrimSpace(storedDate), date.Format(DateFormat))
}
