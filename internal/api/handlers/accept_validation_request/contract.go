package accept_validation_request

import (
	"context"

	acceptRequest "github.com/m04kA/CIV-StickerService/internal/usecase/accept_validation_request"
)

type AcceptValidationRequestUseCase interface {
	Execute(ctx context.Context, req *acceptRequest.Request) (*acceptRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
