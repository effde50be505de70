package models

import (
	"time"

	"github.com/m04kA/CIV-StickerService/internal/domain"
)

// Request модели

// SetPeriodRequest запрос на установку периода выдачи
// Обе даты обязательны; для сброса периода используется отдельная операция Clear
type SetPeriodRequest struct {
	StartDate string `json:"startDate"` // YYYY-MM-DD или RFC3339
	EndDate   string `json:"endDate"`   // YYYY-MM-DD или RFC3339
	UpdatedBy string `json:"-"`         // Заполняется из заголовка аутентификации
}

// Response модели

// PeriodResponse ответ с текущими настройками периода выдачи
type PeriodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	IsSet    bool `json:"isSet"`
	IsActive bool `json:"isActive"` // Текущий момент внутри периода

	StartDateLabel string `json:"startDateLabel,omitempty"` // "Monday, January 5, 2026"
	EndDateLabel   string `json:"endDateLabel,omitempty"`   // "January 10, 2026"

	UpdatedAt         time.Time `json:"updatedAt,omitempty"`
	UpdatedBy         *string   `json:"updatedBy,omitempty"`
	LastExtensionDays *int      `json:"lastExtensionDays,omitempty"`
}

// Методы конвертации

// FromDomainPeriod конвертирует domain модель в DTO
// Метки дат заполняются только для корректно настроенного периода
func FromDomainPeriod(p *domain.ClaimPeriod, now time.Time, loc *time.Location) *PeriodResponse {
	resp := &PeriodResponse{
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		IsSet:             p.IsSet(),
		UpdatedAt:         p.UpdatedAt,
		UpdatedBy:         p.UpdatedBy,
		LastExtensionDays: p.LastExtensionDays,
	}

	if !resp.IsSet {
		return resp
	}

	start, err := p.Start(loc)
	if err != nil {
		return resp
	}
	end, err := p.End(loc)
	if err != nil {
		return resp
	}

	resp.StartDateLabel = start.Format(domain.DateLabelFormat)
	resp.EndDateLabel = end.Format(domain.EndDateLabelFormat)
	resp.IsActive = !now.Before(start) && !now.After(end)

	return resp
}

// EmptyPeriod возвращает DTO ненастроенного периода
func EmptyPeriod() *PeriodResponse {
	return &PeriodResponse{}
}
