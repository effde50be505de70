package accept_validation_request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CIV-StickerService/internal/domain"
	requestRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/request"
	"github.com/m04kA/CIV-StickerService/internal/integrations/mailservice"
	assignClaimSchedule "github.com/m04kA/CIV-StickerService/internal/usecase/assign_claim_schedule"
)

// UseCase use case принятия заявки на валидацию ID
//
// Порядок шагов важен: расписание выдачи резервируется ДО любых мутаций заявки.
// Если аллокатор вернул not_set/expired, заявка остаётся pending и письмо не
// отправляется - ни одно место не было занято
type UseCase struct {
	requestRepo  RequestRepository
	allocator    ScheduleAllocator
	mailClient   MailServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	allocator ScheduleAllocator,
	mailClient MailServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:  requestRepo,
		allocator:    allocator,
		mailClient:   mailClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет принятие заявки: назначает расписание выдачи стикера,
// генерирует QR-токен, переводит заявку в accepted и ставит письмо в очередь
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AcceptValidationRequest: request=%d, reviewer=%s, expiration_days=%d",
		req.RequestID, req.ReviewedBy, req.ExpirationDays)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AcceptValidationRequest: validation failed: %v", err)
		return nil, err
	}

	expirationDays := clampExpirationDays(req.ExpirationDays)

	// 2. Загружаем заявку и проверяем, что она ещё не обработана
	validationReq, err := uc.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			uc.logger.Warn("AcceptValidationRequest: request id=%d not found", req.RequestID)
			return nil, ErrRequestNotFound
		}
		uc.logger.Error("AcceptValidationRequest: failed to get request id=%d: %v", req.RequestID, err)
		return nil, fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
	}

	if !validationReq.CanBeAccepted() {
		uc.logger.Warn("AcceptValidationRequest: request id=%d already processed (status=%s)",
			req.RequestID, validationReq.Status)
		return nil, ErrAlreadyProcessed
	}

	// 3. Резервируем место в расписании выдачи
	// Каждый успешный вызов аллокатора потребляет одно место, поэтому он
	// вызывается ровно один раз и только после всех проверок
	schedule, err := uc.allocator.Execute(ctx)
	if err != nil {
		switch {
		case errors.Is(err, assignClaimSchedule.ErrPeriodNotSet):
			uc.logger.Warn("AcceptValidationRequest: claim period is not set")
			return nil, ErrClaimPeriodNotSet
		case errors.Is(err, assignClaimSchedule.ErrPeriodExpired):
			uc.logger.Warn("AcceptValidationRequest: claim period expired: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrClaimPeriodExpired, err)
		default:
			uc.logger.Error("AcceptValidationRequest: allocator failed: %v", err)
			return nil, fmt.Errorf("%w: failed to assign claim schedule: %v", ErrInternal, err)
		}
	}

	// 4. Генерируем QR-токен
	now := uc.timeProvider.Now()
	qrToken := uuid.NewString()
	qrExpiresAt := now.AddDate(0, 0, expirationDays)

	// 5. Переводим заявку в accepted с денормализацией расписания
	// Статус-гард в репозитории защищает от гонки двух ревьюеров
	acceptParams := requestRepo.AcceptParams{
		ClaimDate:      schedule.Date.Format(domain.DateFormat),
		ClaimDateLabel: schedule.DateLabel,
		ClaimSlotKey:   schedule.SlotKey,
		ClaimSlotLabel: schedule.TimeSlot.Label,
		QRToken:        qrToken,
		QRExpiresAt:    qrExpiresAt,
		ReviewedBy:     req.ReviewedBy,
	}

	if err := uc.requestRepo.MarkAccepted(ctx, req.RequestID, acceptParams); err != nil {
		switch {
		case errors.Is(err, requestRepo.ErrRequestNotPending):
			// Другой ревьюер успел принять заявку между проверкой и записью.
			// Зарезервированное место остаётся занятым - оно освободится
			// только продлением периода администратором
			uc.logger.Warn("AcceptValidationRequest: request id=%d was processed concurrently, seat %s leaked",
				req.RequestID, schedule.SlotKey)
			return nil, ErrAlreadyProcessed
		case errors.Is(err, requestRepo.ErrRequestNotFound):
			return nil, ErrRequestNotFound
		default:
			uc.logger.Error("AcceptValidationRequest: failed to mark accepted id=%d: %v", req.RequestID, err)
			return nil, fmt.Errorf("%w: failed to mark request accepted: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("AcceptValidationRequest: request id=%d accepted, slot=%s, reviewer=%s",
		req.RequestID, schedule.SlotKey, req.ReviewedBy)

	// 6. Ставим письмо в очередь (best-effort: недоступность почты не
	// откатывает принятие, письмо можно переотправить вручную)
	emailQueued := true
	_, err = uc.mailClient.QueueAcceptanceEmailWithGracefulDegradation(ctx, &mailservice.AcceptanceEmail{
		To:             validationReq.Email,
		StudentName:    validationReq.StudentName,
		StudentID:      validationReq.StudentID,
		ClaimDateLabel: schedule.DateLabel,
		ClaimSlotLabel: schedule.TimeSlot.Label,
		QRToken:        qrToken,
		QRExpiresAt:    qrExpiresAt.Format(time.RFC3339),
	})
	if err != nil {
		emailQueued = false
	}

	return &Response{
		RequestID:      validationReq.ID,
		StudentID:      validationReq.StudentID,
		StudentName:    validationReq.StudentName,
		Email:          validationReq.Email,
		Status:         string(domain.RequestAccepted),
		ClaimDate:      schedule.Date,
		ClaimDateLabel: schedule.DateLabel,
		ClaimSlotLabel: schedule.TimeSlot.Label,
		ClaimSlotKey:   schedule.SlotKey,
		QRToken:        qrToken,
		QRExpiresAt:    qrExpiresAt,
		ReviewedBy:     req.ReviewedBy,
		EmailQueued:    emailQueued,
	}, nil
}
