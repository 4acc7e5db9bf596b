package mailer

import "errors"

var (
	// ErrDisabled возвращается, когда отправка писем выключена конфигурацией
	ErrDisabled = errors.New("mailer: email sending is disabled")

	// ErrBuildAttachment возвращается при ошибке генерации PDF талона
	ErrBuildAttachment = errors.New("mailer: failed to build booking slip")

	// ErrSendFailed возвращается, когда SendGrid вернул ошибку или неуспешный статус
	ErrSendFailed = errors.New("mailer: failed to send email")
)
