package extend_claim_period

import (
	"context"

	"github.com/m04kA/CIV-StickerService/internal/domain"
)

// PeriodRepository интерфейс репозитория настроек периода выдачи
type PeriodRepository interface {
	Get(ctx context.Context) (*domain.ClaimPeriod, error)
	UpdateEndDate(ctx context.Context, endDate string, extensionDays int, updatedBy string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
