package extend_claim_period

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CIV-StickerService/internal/domain"
	periodRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/period"
)

// UseCase use case продления периода выдачи стикеров.
// Меняет только дату окончания: студенты, уже получившие расписание,
// сохраняют свои слоты, а освободившиеся дни открываются для новых заявок
type UseCase struct {
	periodRepo PeriodRepository
	calendar   domain.ClaimCalendar
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(periodRepo PeriodRepository, calendar domain.ClaimCalendar, logger Logger) *UseCase {
	return &UseCase{
		periodRepo: periodRepo,
		calendar:   calendar,
		logger:     logger,
	}
}

// Execute продлевает период выдачи на заданное число дней
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExtendClaimPeriod: days=%d, updated_by=%s", req.ExtensionDays, req.UpdatedBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ExtendClaimPeriod: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем текущий период - продлевать можно только настроенный период
	period, err := uc.periodRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			uc.logger.Warn("ExtendClaimPeriod: claim period is not configured")
			return nil, ErrPeriodNotSet
		}
		uc.logger.Error("ExtendClaimPeriod: failed to get period: %v", err)
		return nil, fmt.Errorf("%w: failed to get claim period: %v", ErrInternal, err)
	}

	if period.EndDate == "" {
		uc.logger.Warn("ExtendClaimPeriod: end date is empty, nothing to extend")
		return nil, ErrPeriodNotSet
	}

	// 3. Вычисляем новую дату окончания
	// End() нормализует хранимое значение (YYYY-MM-DD или RFC3339) к календарному дню
	currentEnd, err := period.End(uc.calendar.Location)
	if err != nil {
		uc.logger.Warn("ExtendClaimPeriod: stored end date is unparsable: %v", err)
		return nil, ErrPeriodNotSet
	}

	newEnd := currentEnd.AddDate(0, 0, req.ExtensionDays)
	newEndDate := newEnd.Format(domain.DateFormat)

	// 4. Сохраняем новую дату окончания
	if err := uc.periodRepo.UpdateEndDate(ctx, newEndDate, req.ExtensionDays, req.UpdatedBy); err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			return nil, ErrPeriodNotSet
		}
		uc.logger.Error("ExtendClaimPeriod: failed to update end date: %v", err)
		return nil, fmt.Errorf("%w: failed to update end date: %v", ErrInternal, err)
	}

	uc.logger.Info("ExtendClaimPeriod: period extended %s -> %s (+%d days)",
		period.EndDate, newEndDate, req.ExtensionDays)

	return &Response{
		StartDate:       period.StartDate,
		PreviousEndDate: period.EndDate,
		NewEndDate:      newEndDate,
		NewEndDateLabel: newEnd.Format(domain.EndDateLabelFormat),
		ExtensionDays:   req.ExtensionDays,
		UpdatedBy:       req.UpdatedBy,
	}, nil
}
