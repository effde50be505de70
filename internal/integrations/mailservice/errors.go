package mailservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mailservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что MailService недоступен и письмо не поставлено в очередь
	ErrServiceDegraded = errors.New("mailservice unavailable: graceful degradation applied")
)
