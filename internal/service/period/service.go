package period

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/CIV-StickerService/internal/domain"
	periodRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/period"
	"github.com/m04kA/CIV-StickerService/internal/service/period/models"
)

// Service сервис для работы с настройками периода выдачи стикеров
type Service struct {
	periodRepo   PeriodRepository
	calendar     domain.ClaimCalendar
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса периода выдачи
func NewService(
	periodRepo PeriodRepository,
	calendar domain.ClaimCalendar,
	logger Logger,
) *Service {
	return &Service{
		periodRepo:   periodRepo,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Get возвращает текущие настройки периода выдачи
// Ненастроенный период - не ошибка: интерфейс администратора показывает
// состояние "период не задан"
func (s *Service) Get(ctx context.Context) (*models.PeriodResponse, error) {
	period, err := s.periodRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			return models.EmptyPeriod(), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPeriod(period, s.timeProvider.Now(), s.calendar.Location), nil
}

// Set устанавливает период выдачи
// Обе даты обязательны и дата начала не может быть позже даты окончания
func (s *Service) Set(ctx context.Context, req *models.SetPeriodRequest) (*models.PeriodResponse, error) {
	s.logger.Info("Set: start=%s, end=%s, updated_by=%s", req.StartDate, req.EndDate, req.UpdatedBy)

	// 1. Валидируем входные данные
	if err := s.validatePeriod(req); err != nil {
		s.logger.Warn("Set: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем настройки
	updatedBy := strings.TrimSpace(req.UpdatedBy)
	period := &domain.ClaimPeriod{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		UpdatedBy: &updatedBy,
	}

	if err := s.periodRepo.Upsert(ctx, period); err != nil {
		s.logger.Error("Set: repository error: %v", err)
		return nil, fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Set: claim period saved %s .. %s", req.StartDate, req.EndDate)
	return models.FromDomainPeriod(period, s.timeProvider.Now(), s.calendar.Location), nil
}

// Clear сбрасывает период выдачи
// Сохраняет пустые строки вместо удаления строки настроек: обе формы
// "не настроено" обрабатываются читателями одинаково
func (s *Service) Clear(ctx context.Context, updatedBy string) (*models.PeriodResponse, error) {
	s.logger.Info("Clear: resetting claim period, updated_by=%s", updatedBy)

	if strings.TrimSpace(updatedBy) == "" {
		return nil, fmt.Errorf("%w: updatedBy is required", ErrInvalidInput)
	}

	trimmed := strings.TrimSpace(updatedBy)
	period := &domain.ClaimPeriod{
		StartDate: "",
		EndDate:   "",
		UpdatedBy: &trimmed,
	}

	if err := s.periodRepo.Upsert(ctx, period); err != nil {
		s.logger.Error("Clear: repository error: %v", err)
		return nil, fmt.Errorf("%w: Clear - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Clear: claim period reset")
	return models.EmptyPeriod(), nil
}

// validatePeriod валидирует запрос на установку периода
func (s *Service) validatePeriod(req *models.SetPeriodRequest) error {
	if strings.TrimSpace(req.UpdatedBy) == "" {
		return fmt.Errorf("%w: updatedBy is required", ErrInvalidInput)
	}

	if req.StartDate == "" || req.EndDate == "" {
		return fmt.Errorf("%w: both startDate and endDate are required", ErrInvalidInput)
	}

	period := &domain.ClaimPeriod{StartDate: req.StartDate, EndDate: req.EndDate}

	start, err := period.Start(s.calendar.Location)
	if err != nil {
		return fmt.Errorf("%w: startDate must be YYYY-MM-DD or RFC3339", ErrInvalidInput)
	}
	end, err := period.End(s.calendar.Location)
	if err != nil {
		return fmt.Errorf("%w: endDate must be YYYY-MM-DD or RFC3339", ErrInvalidInput)
	}

	if start.After(end) {
		return fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
	}

	return nil
}
