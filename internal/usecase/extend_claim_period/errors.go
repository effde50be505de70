package extend_claim_period

import "errors"

var (
	// ErrPeriodNotSet возвращается, когда период выдачи не настроен -
	// продлевать нечего
	ErrPeriodNotSet = errors.New("extend_claim_period: claim period is not set")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("extend_claim_period: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("extend_claim_period: internal error")
)
