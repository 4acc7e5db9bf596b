package types

import (
	"fmt"
	"time"
)

// TimeLayout формат времени "HH:MM"
const TimeLayout = "15:04"

// TimeString represents a time of day as a zero-padded "HH:MM" string.
// The zero value ("") is invalid; use NewTimeString or NewTimeStringFromString.
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return NewTimeString(t), nil
}

// String returns the canonical "HH:MM" representation.
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero returns true for the empty (unset) value.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (ts TimeString) Validate() error {
	_, err := time.Parse(TimeLayout, string(ts))
	if err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// minutesOfDay возвращает количество минут с начала суток
func (ts TimeString) minutesOfDay() (int, error) {
	t, err := time.Parse(TimeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("invalid time string format: %v", err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед (по модулю суток)
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := ts.minutesOfDay()
	if err != nil {
		return "", err
	}

	total = (total + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether ts is strictly earlier than other.
// Both values are zero-padded, so lexicographic order matches time order.
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter reports whether ts is strictly later than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}
