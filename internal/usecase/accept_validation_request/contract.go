package accept_validation_request

import (
	"context"
	"time"

	"github.com/m04kA/CIV-StickerService/internal/domain"
	requestRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/request"
	"github.com/m04kA/CIV-StickerService/internal/integrations/mailservice"
	assignClaimSchedule "github.com/m04kA/CIV-StickerService/internal/usecase/assign_claim_schedule"
)

// RequestRepository интерфейс репозитория заявок на валидацию
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ValidationRequest, error)
	MarkAccepted(ctx context.Context, id int64, params requestRepo.AcceptParams) error
}

// ScheduleAllocator интерфейс аллокатора расписания выдачи
type ScheduleAllocator interface {
	Execute(ctx context.Context) (*assignClaimSchedule.Response, error)
}

// MailServiceClient интерфейс клиента для MailService
type MailServiceClient interface {
	QueueAcceptanceEmailWithGracefulDegradation(ctx context.Context, email *mailservice.AcceptanceEmail) (*mailservice.QueueResponse, error)
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
