package get_claim_period

import (
	"context"

	"github.com/m04kA/CIV-StickerService/internal/service/period/models"
)

type PeriodService interface {
	Get(ctx context.Context) (*models.PeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
