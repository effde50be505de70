package assign_claim_schedule

import (
	"context"
	"time"

	"github.com/m04kA/CIV-StickerService/internal/domain"
)

// PeriodRepository интерфейс репозитория настроек периода выдачи
type PeriodRepository interface {
	Get(ctx context.Context) (*domain.ClaimPeriod, error)
}

// SlotCounterRepository интерфейс репозитория счётчиков слотов
type SlotCounterRepository interface {
	Get(ctx context.Context, slotKey string) (*domain.SlotCounter, error)
	Upsert(ctx context.Context, counter *domain.SlotCounter) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
