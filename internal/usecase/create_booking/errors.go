package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата поставки в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда выбранное время не входит в каталог даты
	// или не образует корректный вариант для запрошенного объема
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot selection")

	// ErrSlotConflict возвращается, когда финальная проверка перед записью нашла
	// слот занятым (другой поставщик успел подтвердиться раньше).
	// Восстановимая ситуация: выбор сбрасывается, поставщик выбирает заново.
	ErrSlotConflict = errors.New("create_booking: selected slot is no longer available")

	// ErrFetchFailed возвращается, когда не удалось получить свежие бронирования
	ErrFetchFailed = errors.New("create_booking: failed to fetch reservations, availability unknown")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
