package period

import (
	"context"
	"time"

	"github.com/m04kA/CIV-StickerService/internal/domain"
)

// PeriodRepository интерфейс репозитория настроек периода выдачи
type PeriodRepository interface {
	Get(ctx context.Context) (*domain.ClaimPeriod, error)
	Upsert(ctx context.Context, p *domain.ClaimPeriod) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
