package get_slot_occupancy

import "errors"

var (
	// ErrPeriodNotSet возвращается, когда период выдачи не настроен
	ErrPeriodNotSet = errors.New("get_slot_occupancy: claim period is not set")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_slot_occupancy: internal error")
)
