package domain

import (
	"fmt"
	"time"
)

// ClaimPeriod настроенный период выдачи стикеров.
// Даты хранятся строками: YYYY-MM-DD или RFC3339.
// Пустая строка означает "не настроено" - интерфейс настроек сохраняет ""
// при сбросе периода, поэтому отсутствие и пустота трактуются одинаково.
type ClaimPeriod struct {
	StartDate string
	EndDate   string

	UpdatedAt         time.Time
	UpdatedBy         *string
	LastExtensionDays *int
}

// IsSet возвращает true, если обе граничные даты заданы
func (p *ClaimPeriod) IsSet() bool {
	return p.StartDate != "" && p.EndDate != ""
}

// Start возвращает начало периода, нормализованное к 00:00:00.000 календарного дня
func (p *ClaimPeriod) Start(loc *time.Location) (time.Time, error) {
	t, err := parsePeriodDate(p.StartDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q: %w", p.StartDate, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// End возвращает конец периода, нормализованный к 23:59:59.999999999 календарного
// дня: период включает весь последний день независимо от сохранённого времени
func (p *ClaimPeriod) End(loc *time.Location) (time.Time, error) {
	t, err := parsePeriodDate(p.EndDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid end date %q: %w", p.EndDate, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), loc), nil
}

// parsePeriodDate парсит дату периода: сначала RFC3339, затем YYYY-MM-DD
func parsePeriodDate(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), nil
	}
	return time.ParseInLocation(DateFormat, raw, loc)
}
