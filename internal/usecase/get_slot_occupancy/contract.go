package get_slot_occupancy

import (
	"context"

	"github.com/m04kA/CIV-StickerService/internal/domain"
)

// PeriodRepository интерфейс репозитория настроек периода выдачи
type PeriodRepository interface {
	Get(ctx context.Context) (*domain.ClaimPeriod, error)
}

// SlotCounterRepository интерфейс репозитория счётчиков слотов
type SlotCounterRepository interface {
	ListByDates(ctx context.Context, dates []string) ([]*domain.SlotCounter, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
