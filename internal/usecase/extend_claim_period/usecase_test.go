package extend_claim_period

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CIV-StickerService/internal/domain"
	periodRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/period"
)

// --- Фейки ---

type fakePeriodRepo struct {
	period *domain.ClaimPeriod
	getErr error
	updErr error

	updateCalls   int
	lastEndDate   string
	lastDays      int
	lastUpdatedBy string
}

func (f *fakePeriodRepo) Get(_ context.Context) (*domain.ClaimPeriod, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.period
	return &copied, nil
}

func (f *fakePeriodRepo) UpdateEndDate(_ context.Context, endDate string, days int, updatedBy string) error {
	f.updateCalls++
	f.lastEndDate = endDate
	f.lastDays = days
	f.lastUpdatedBy = updatedBy
	if f.updErr != nil {
		return f.updErr
	}
	f.period.EndDate = endDate
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCalendar() domain.ClaimCalendar {
	calendar := domain.DefaultClaimCalendar()
	calendar.Location = time.UTC
	return calendar
}

// --- Тесты ---

func TestExecute_ExtendsEndDate(t *testing.T) {
	repo := &fakePeriodRepo{period: &domain.ClaimPeriod{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-10",
	}}
	uc := NewUseCase(repo, testCalendar(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ExtensionDays: 14, UpdatedBy: "admin"})
	require.NoError(t, err)

	assert.Equal(t, "2026-01-05", resp.StartDate)
	assert.Equal(t, "2026-01-10", resp.PreviousEndDate)
	assert.Equal(t, "2026-01-24", resp.NewEndDate)
	assert.Equal(t, "January 24, 2026", resp.NewEndDateLabel)
	assert.Equal(t, 14, resp.ExtensionDays)

	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, "2026-01-24", repo.lastEndDate)
	assert.Equal(t, 14, repo.lastDays)
	assert.Equal(t, "admin", repo.lastUpdatedBy)
}

func TestExecute_TimestampEndDateIsNormalized(t *testing.T) {
	// Дата окончания, сохранённая интерфейсом как timestamp,
	// нормализуется к календарному дню перед продлением
	repo := &fakePeriodRepo{period: &domain.ClaimPeriod{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-10T00:00:00Z",
	}}
	uc := NewUseCase(repo, testCalendar(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ExtensionDays: 7, UpdatedBy: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-17", resp.NewEndDate)
}

func TestExecute_PeriodNotConfigured(t *testing.T) {
	tests := []struct {
		name string
		repo *fakePeriodRepo
	}{
		{"нет строки настроек", &fakePeriodRepo{getErr: periodRepo.ErrPeriodNotFound}},
		{"пустая дата окончания", &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: ""}}},
		{"нечитаемая дата окончания", &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "not-a-date"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.repo, testCalendar(), nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{ExtensionDays: 7, UpdatedBy: "admin"})
			require.Nil(t, resp)
			assert.ErrorIs(t, err, ErrPeriodNotSet)
			assert.Zero(t, tt.repo.updateCalls)
		})
	}
}

func TestExecute_InvalidExtensionDays(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"ноль дней", Request{ExtensionDays: 0, UpdatedBy: "admin"}},
		{"отрицательное число дней", Request{ExtensionDays: -3, UpdatedBy: "admin"}},
		{"больше максимума", Request{ExtensionDays: 91, UpdatedBy: "admin"}},
		{"пустой автор изменения", Request{ExtensionDays: 7, UpdatedBy: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-10"}}
			uc := NewUseCase(repo, testCalendar(), nopLogger{})

			resp, err := uc.Execute(context.Background(), &tt.req)
			require.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, repo.updateCalls)
		})
	}
}

func TestExecute_BoundaryExtensionDays(t *testing.T) {
	for _, days := range []int{domain.MinExtensionDays, domain.MaxExtensionDays} {
		repo := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-10"}}
		uc := NewUseCase(repo, testCalendar(), nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{ExtensionDays: days, UpdatedBy: "admin"})
		require.NoError(t, err)
		assert.Equal(t, days, repo.lastDays)
	}
}

func TestExecute_RepoFailurePropagates(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &fakePeriodRepo{
		period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-10"},
		updErr: repoErr,
	}
	uc := NewUseCase(repo, testCalendar(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ExtensionDays: 7, UpdatedBy: "admin"})
	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}
