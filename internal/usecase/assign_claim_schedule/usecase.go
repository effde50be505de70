package assign_claim_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CIV-StickerService/internal/domain"
	periodRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/period"
	counterRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/slotcounter"
)

// UseCase use case назначения расписания выдачи стикера
//
// Алгоритм first-fit: слоты перебираются по возрастанию даты, внутри дня -
// в объявленном порядке слотов. Назначается самый ранний слот, в котором
// осталось место. Резервирование места - единственная запись, которую
// выполняет этот usecase, и она идёт через сериализуемую транзакцию:
// при гонке за последнее место в слоте выигрывает ровно один вызов,
// проигравший переходит к следующему слоту
type UseCase struct {
	periodRepo   PeriodRepository
	counterRepo  SlotCounterRepository
	txManager    TransactionManager
	calendar     domain.ClaimCalendar
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	periodRepo PeriodRepository,
	counterRepo SlotCounterRepository,
	txManager TransactionManager,
	calendar domain.ClaimCalendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		periodRepo:   periodRepo,
		counterRepo:  counterRepo,
		txManager:    txManager,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute назначает расписание выдачи: находит самый ранний слот со свободным
// местом внутри настроенного периода и резервирует в нём одно место
//
// Каждый успешный вызов потребляет одно место - usecase не идемпотентен,
// вызывающая сторона обязана вызывать его не более одного раза на принятие заявки
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Читаем настройки периода выдачи
	period, err := uc.periodRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			uc.logger.Warn("AssignClaimSchedule: claim period is not configured")
			return nil, ErrPeriodNotSet
		}
		uc.logger.Error("AssignClaimSchedule: failed to get claim period: %v", err)
		return nil, fmt.Errorf("%w: failed to get claim period: %v", ErrInternal, err)
	}

	// 2. Пустая строка и отсутствие значения означают одно и то же:
	// настройки UI сохраняют "" при сбросе периода
	if !period.IsSet() {
		uc.logger.Warn("AssignClaimSchedule: claim period is incomplete (start=%q, end=%q)",
			period.StartDate, period.EndDate)
		return nil, ErrPeriodNotSet
	}

	// 3. Нормализуем границы: начало - к 00:00:00 своего дня,
	// конец - к 23:59:59.999..., чтобы период включал весь последний день
	startDate, err := period.Start(uc.calendar.Location)
	if err != nil {
		uc.logger.Warn("AssignClaimSchedule: unparsable start date: %v", err)
		return nil, ErrPeriodNotSet
	}

	endDate, err := period.End(uc.calendar.Location)
	if err != nil {
		uc.logger.Warn("AssignClaimSchedule: unparsable end date: %v", err)
		return nil, ErrPeriodNotSet
	}

	now := uc.timeProvider.Now()

	// 4. Период целиком в прошлом
	if endDate.Before(now) {
		uc.logger.Warn("AssignClaimSchedule: claim period ended %s", endDate.Format(domain.DateFormat))
		return nil, &ExpiredError{EndDateLabel: endDate.Format(domain.EndDateLabelFormat)}
	}

	// 5. Сканируем кандидатов: по возрастанию даты, внутри дня - по порядку слотов
	for cursor := startDate; !cursor.After(endDate); cursor = cursor.AddDate(0, 0, 1) {
		if !uc.calendar.IsClaimDay(cursor) {
			continue
		}

		for slotIndex, slot := range uc.calendar.Slots {
			slotKey := domain.SlotKey(cursor, slotIndex)

			reserved, err := uc.reserveSeat(ctx, cursor, slotIndex, slotKey)
			if err != nil {
				// Инфраструктурные сбои не ретраятся здесь - пробрасываем наверх
				uc.logger.Error("AssignClaimSchedule: reservation failed for %s: %v", slotKey, err)
				return nil, err
			}

			if reserved {
				uc.logger.Info("AssignClaimSchedule: reserved seat in %s (%s)", slotKey, slot.Label)
				return &Response{
					Date:      cursor,
					DateLabel: cursor.Format(domain.DateLabelFormat),
					TimeSlot:  slot,
					SlotKey:   slotKey,
				}, nil
			}
		}
	}

	// 6. Все слоты внутри периода заполнены - трактуем как expired
	uc.logger.Warn("AssignClaimSchedule: no free slot in period %s - %s",
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))
	return nil, &ExpiredError{EndDateLabel: endDate.Format(domain.EndDateLabelFormat)}
}

// reserveSeat атомарно резервирует одно место в слоте
//
// Чтение count и условная запись count+1 выполняются в одной сериализуемой
// транзакции: два конкурентных вызова не могут оба занять последнее место.
// Возвращает false без записи, если слот заполнен
func (uc *UseCase) reserveSeat(ctx context.Context, date time.Time, slotIndex int, slotKey string) (bool, error) {
	var reserved bool

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		count := 0

		counter, err := uc.counterRepo.Get(txCtx, slotKey)
		if err != nil && !errors.Is(err, counterRepo.ErrCounterNotFound) {
			return fmt.Errorf("%w: failed to get counter %s: %v", ErrInternal, slotKey, err)
		}
		if counter != nil {
			count = counter.Count
		}

		if count >= uc.calendar.MaxPerSlot {
			reserved = false
			return nil
		}

		err = uc.counterRepo.Upsert(txCtx, &domain.SlotCounter{
			Key:       slotKey,
			Date:      date.Format(domain.DateFormat),
			SlotIndex: slotIndex,
			Count:     count + 1,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to increment counter %s: %v", ErrInternal, slotKey, err)
		}

		reserved = true
		return nil
	})

	if err != nil {
		return false, err
	}

	return reserved, nil
}
