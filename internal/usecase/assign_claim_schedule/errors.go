package assign_claim_schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrPeriodNotSet возвращается, когда период выдачи не настроен администратором
	// (документа настроек нет либо одна из дат пустая)
	ErrPeriodNotSet = errors.New("assign_claim_schedule: claim period is not set")

	// ErrPeriodExpired возвращается, когда период выдачи закончился
	// либо все слоты внутри периода заполнены
	ErrPeriodExpired = errors.New("assign_claim_schedule: claim period has expired")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_claim_schedule: internal error")
)

// ExpiredError несёт отформатированную дату окончания периода для пользовательского сообщения
// errors.Is(err, ErrPeriodExpired) работает через Unwrap
type ExpiredError struct {
	EndDateLabel string // "January 5, 2026"
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("%v: ended %s", ErrPeriodExpired, e.EndDateLabel)
}

func (e *ExpiredError) Unwrap() error {
	return ErrPeriodExpired
}
