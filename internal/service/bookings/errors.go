package bookings

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому поставщику
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается при попытке отменить прошедшую поставку
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
