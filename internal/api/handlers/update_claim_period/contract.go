package update_claim_period

import (
	"context"

	"github.com/m04kA/CIV-StickerService/internal/service/period/models"
)

type PeriodService interface {
	Set(ctx context.Context, req *models.SetPeriodRequest) (*models.PeriodResponse, error)
	Clear(ctx context.Context, updatedBy string) (*models.PeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
