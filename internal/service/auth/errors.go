package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле.
	// Не различает "нет такого поставщика" и "неверный пароль".
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidInput возвращается при пустом email или пароле
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
