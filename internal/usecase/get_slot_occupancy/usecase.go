package get_slot_occupancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CIV-StickerService/internal/domain"
	periodRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/period"
)

// UseCase use case отчета о заполненности слотов выдачи.
// Читает счётчики вне транзакции: отчет допускает небольшое отставание
// от резервирований, идущих параллельно
type UseCase struct {
	periodRepo  PeriodRepository
	counterRepo SlotCounterRepository
	calendar    domain.ClaimCalendar
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	periodRepo PeriodRepository,
	counterRepo SlotCounterRepository,
	calendar domain.ClaimCalendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		periodRepo:  periodRepo,
		counterRepo: counterRepo,
		calendar:    calendar,
		logger:      logger,
	}
}

// Execute возвращает заполненность всех слотов за период выдачи
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Загружаем настройки периода
	period, err := uc.periodRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			return nil, ErrPeriodNotSet
		}
		uc.logger.Error("GetSlotOccupancy: failed to get period: %v", err)
		return nil, fmt.Errorf("%w: failed to get claim period: %v", ErrInternal, err)
	}

	if !period.IsSet() {
		return nil, ErrPeriodNotSet
	}

	startDate, err := period.Start(uc.calendar.Location)
	if err != nil {
		uc.logger.Warn("GetSlotOccupancy: unparsable start date: %v", err)
		return nil, ErrPeriodNotSet
	}
	endDate, err := period.End(uc.calendar.Location)
	if err != nil {
		uc.logger.Warn("GetSlotOccupancy: unparsable end date: %v", err)
		return nil, ErrPeriodNotSet
	}

	// 2. Собираем дни выдачи в периоде
	dates := make([]string, 0)
	for cursor := startDate; !cursor.After(endDate); cursor = cursor.AddDate(0, 0, 1) {
		if uc.calendar.IsClaimDay(cursor) {
			dates = append(dates, cursor.Format(domain.DateFormat))
		}
	}

	// 3. Загружаем существующие счётчики одним запросом
	counters, err := uc.counterRepo.ListByDates(ctx, dates)
	if err != nil {
		uc.logger.Error("GetSlotOccupancy: failed to list counters: %v", err)
		return nil, fmt.Errorf("%w: failed to list slot counters: %v", ErrInternal, err)
	}

	countByKey := make(map[string]int, len(counters))
	for _, counter := range counters {
		countByKey[counter.Key] = counter.Count
	}

	// 4. Собираем отчет: слоты без счётчика показываются с нулём
	resp := &Response{
		StartDate:    period.StartDate,
		EndDate:      period.EndDate,
		EndDateLabel: endDate.Format(domain.EndDateLabelFormat),
		Days:         make([]DayOccupancy, 0, len(dates)),
	}

	for cursor := startDate; !cursor.After(endDate); cursor = cursor.AddDate(0, 0, 1) {
		if !uc.calendar.IsClaimDay(cursor) {
			continue
		}

		day := DayOccupancy{
			Date:      cursor.Format(domain.DateFormat),
			DateLabel: cursor.Format(domain.DateLabelFormat),
			Slots:     make([]SlotView, 0, len(uc.calendar.Slots)),
		}

		for slotIndex, slot := range uc.calendar.Slots {
			occupancy := domain.SlotOccupancy{
				Date:      day.Date,
				SlotIndex: slotIndex,
				TimeSlot:  slot,
				Count:     countByKey[domain.SlotKey(cursor, slotIndex)],
				Capacity:  uc.calendar.MaxPerSlot,
			}

			day.Slots = append(day.Slots, SlotView{
				SlotKey:   domain.SlotKey(cursor, slotIndex),
				Label:     slot.Label,
				Count:     occupancy.Count,
				Capacity:  occupancy.Capacity,
				Available: occupancy.AvailableSeats(),
				IsFull:    occupancy.IsFull(),
			})

			resp.TotalReserved += occupancy.Count
			resp.TotalCapacity += occupancy.Capacity
		}

		resp.Days = append(resp.Days, day)
	}

	return resp, nil
}
