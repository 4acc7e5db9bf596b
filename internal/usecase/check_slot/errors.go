package check_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_slot: invalid input data")

	// ErrInvalidTimeSlot возвращается, когда выбранное время не входит в каталог даты
	// или не образует корректный вариант для запрошенного объема
	ErrInvalidTimeSlot = errors.New("check_slot: invalid time slot selection")

	// ErrSlotConflict возвращается, когда выбранный слот уже занят другим
	// поставщиком. Ожидаемая, восстановимая ситуация: нужно выбрать слот заново.
	ErrSlotConflict = errors.New("check_slot: selected slot is no longer available")

	// ErrFetchFailed возвращается, когда не удалось получить свежие бронирования
	ErrFetchFailed = errors.New("check_slot: failed to fetch reservations, availability unknown")
)
