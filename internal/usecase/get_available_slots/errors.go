package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrFetchFailed возвращается, когда не удалось получить текущие бронирования.
	// Доступность в этом случае неизвестна - частичный результат не подставляется.
	ErrFetchFailed = errors.New("get_available_slots: failed to fetch reservations, availability unknown")
)
