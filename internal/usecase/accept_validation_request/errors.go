package accept_validation_request

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("accept_validation_request: request not found")

	// ErrAlreadyProcessed возвращается, когда заявка уже обработана
	ErrAlreadyProcessed = errors.New("accept_validation_request: request already processed")

	// ErrClaimPeriodNotSet возвращается, когда администратор не настроил период выдачи
	ErrClaimPeriodNotSet = errors.New("accept_validation_request: claim period is not set")

	// ErrClaimPeriodExpired возвращается, когда период выдачи закончился
	// или все слоты заполнены; заявка остаётся pending
	ErrClaimPeriodExpired = errors.New("accept_validation_request: claim period has expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("accept_validation_request: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("accept_validation_request: internal error")
)
