package extend_claim_period

import (
	"context"

	extendPeriod "github.com/m04kA/CIV-StickerService/internal/usecase/extend_claim_period"
)

type ExtendClaimPeriodUseCase interface {
	Execute(ctx context.Context, req *extendPeriod.Request) (*extendPeriod.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
