package assign_claim_schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CIV-StickerService/internal/domain"
	periodRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/period"
	counterRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/slotcounter"
)

// --- Фейки ---

type fakePeriodRepo struct {
	mu     sync.Mutex
	period *domain.ClaimPeriod
	err    error

	getCalls int
}

func (f *fakePeriodRepo) Get(_ context.Context) (*domain.ClaimPeriod, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.period, nil
}

// fakeCounterStore in-memory хранилище счётчиков
// Атомарность обеспечивает fakeTxManager, который держит мьютекс на время всей транзакции
type fakeCounterStore struct {
	counters map[string]*domain.SlotCounter

	getErr    error
	upsertErr error

	getCalls    int
	upsertCalls int
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counters: make(map[string]*domain.SlotCounter)}
}

func (f *fakeCounterStore) Get(_ context.Context, slotKey string) (*domain.SlotCounter, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	counter, ok := f.counters[slotKey]
	if !ok {
		return nil, counterRepo.ErrCounterNotFound
	}
	copied := *counter
	return &copied, nil
}

func (f *fakeCounterStore) Upsert(_ context.Context, counter *domain.SlotCounter) error {
	f.upsertCalls++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	copied := *counter
	f.counters[counter.Key] = &copied
	return nil
}

func (f *fakeCounterStore) seed(date string, slotIndex int, count int) {
	key := fmt.Sprintf("%s_slot%d", date, slotIndex)
	f.counters[key] = &domain.SlotCounter{Key: key, Date: date, SlotIndex: slotIndex, Count: count}
}

func (f *fakeCounterStore) count(key string) int {
	if counter, ok := f.counters[key]; ok {
		return counter.Count
	}
	return 0
}

// fakeTxManager сериализует транзакции глобальным мьютексом -
// то же свойство, что даёт SERIALIZABLE для счётчика одного слота
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) Now() time.Time {
	return f.now
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

func newTestUseCase(periods *fakePeriodRepo, store *fakeCounterStore, now time.Time) *UseCase {
	uc := NewUseCase(periods, store, &fakeTxManager{}, testCalendar(), nopLogger{})
	uc.timeProvider = &fakeTime{now: now}
	return uc
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.UTC)
	require.NoError(t, err)
	return parsed
}

// --- Тесты ---

// 2026-01-05 - понедельник
func TestExecute_AssignsEarliestSlotOfEarliestDay(t *testing.T) {
	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-09"}}
	store := newFakeCounterStore()
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-05 09:00:00"))

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2026-01-05_slot0", resp.SlotKey)
	assert.Equal(t, "Monday, January 5, 2026", resp.DateLabel)
	assert.Equal(t, "8:00 AM – 11:00 AM", resp.TimeSlot.Label)
	assert.Equal(t, 8, resp.TimeSlot.StartHour)
	assert.Equal(t, 11, resp.TimeSlot.EndHour)
	assert.Equal(t, 1, store.count("2026-01-05_slot0"))
	assert.Equal(t, 1, store.upsertCalls, "ровно один счётчик должен быть записан")
}

func TestExecute_PeriodNotConfigured(t *testing.T) {
	periods := &fakePeriodRepo{err: periodRepo.ErrPeriodNotFound}
	store := newFakeCounterStore()
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-05 09:00:00"))

	resp, err := uc.Execute(context.Background())
	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPeriodNotSet)
	assert.Zero(t, store.getCalls, "при not_set счётчики не читаются")
	assert.Zero(t, store.upsertCalls, "при not_set счётчики не пишутся")
}

func TestExecute_PeriodIncomplete(t *testing.T) {
	tests := []struct {
		name   string
		period domain.ClaimPeriod
	}{
		{"обе даты пустые", domain.ClaimPeriod{StartDate: "", EndDate: ""}},
		{"пустая дата начала", domain.ClaimPeriod{StartDate: "", EndDate: "2026-01-09"}},
		{"пустая дата окончания", domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := &fakePeriodRepo{period: &tt.period}
			store := newFakeCounterStore()
			uc := newTestUseCase(periods, store, mustTime(t, "2026-01-05 09:00:00"))

			resp, err := uc.Execute(context.Background())
			require.Nil(t, resp)
			assert.ErrorIs(t, err, ErrPeriodNotSet)
			assert.Zero(t, store.getCalls)
			assert.Zero(t, store.upsertCalls)
		})
	}
}

func TestExecute_PeriodExpired(t *testing.T) {
	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-10"}}
	store := newFakeCounterStore()
	uc := newTestUseCase(periods, store, mustTime(t, "2026-02-01 09:00:00"))

	resp, err := uc.Execute(context.Background())
	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPeriodExpired)

	var expired *ExpiredError
	require.ErrorAs(t, err, &expired)
	assert.Equal(t, "January 10, 2026", expired.EndDateLabel)

	assert.Zero(t, store.upsertCalls, "при expired счётчики не меняются")
}

// Нормализация делает период включающим весь последний день:
// вечером последнего дня назначение ещё работает
func TestExecute_EndDayIsInclusive(t *testing.T) {
	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-05"}}
	store := newFakeCounterStore()
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-05 22:30:00"))

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05_slot0", resp.SlotKey)
}

// 2026-01-04 - воскресенье
func TestExecute_SundayOnlyPeriodIsExpired(t *testing.T) {
	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-04", EndDate: "2026-01-04"}}
	store := newFakeCounterStore()
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-04 09:00:00"))

	resp, err := uc.Execute(context.Background())
	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPeriodExpired)
	assert.Zero(t, store.upsertCalls)
}

func TestExecute_SundayIsSkippedToMonday(t *testing.T) {
	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-04", EndDate: "2026-01-05"}}
	store := newFakeCounterStore()
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-04 09:00:00"))

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05_slot0", resp.SlotKey)
	assert.Equal(t, "Monday, January 5, 2026", resp.DateLabel)
}

func TestExecute_SkipsFullSlotWithinDay(t *testing.T) {
	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-05"}}
	store := newFakeCounterStore()
	store.seed("2026-01-05", 0, domain.MaxPerSlot)
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-05 09:00:00"))

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05_slot1", resp.SlotKey)
	assert.Equal(t, "1:00 PM – 4:00 PM", resp.TimeSlot.Label)

	// Заполненный слот не тронут
	assert.Equal(t, domain.MaxPerSlot, store.count("2026-01-05_slot0"))
	assert.Equal(t, 1, store.count("2026-01-05_slot1"))
}

func TestExecute_SpillsToNextDayWhenDayIsFull(t *testing.T) {
	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-06"}}
	store := newFakeCounterStore()
	for slotIndex := 0; slotIndex < domain.SlotsPerDay; slotIndex++ {
		store.seed("2026-01-05", slotIndex, domain.MaxPerSlot)
	}
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-05 09:00:00"))

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-01-06_slot0", resp.SlotKey)
	assert.Equal(t, "Tuesday, January 6, 2026", resp.DateLabel)
}

func TestExecute_AllSlotsFullIsExpired(t *testing.T) {
	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-06"}}
	store := newFakeCounterStore()
	for _, date := range []string{"2026-01-05", "2026-01-06"} {
		for slotIndex := 0; slotIndex < domain.SlotsPerDay; slotIndex++ {
			store.seed(date, slotIndex, domain.MaxPerSlot)
		}
	}
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-05 09:00:00"))

	resp, err := uc.Execute(context.Background())
	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPeriodExpired)

	var expired *ExpiredError
	require.ErrorAs(t, err, &expired)
	assert.Equal(t, "January 6, 2026", expired.EndDateLabel)

	assert.Zero(t, store.upsertCalls, "исчерпание вместимости не мутирует счётчики")
}

// Сквозной сценарий: один понедельник, 300 мест, последовательное заполнение
func TestExecute_SingleDayExhaustion(t *testing.T) {
	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-05"}}
	store := newFakeCounterStore()
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-05 09:00:00"))

	totalSeats := domain.SlotsPerDay * domain.MaxPerSlot

	for i := 0; i < totalSeats; i++ {
		resp, err := uc.Execute(context.Background())
		require.NoError(t, err, "вызов %d должен получить место", i+1)

		wantSlot := i / domain.MaxPerSlot
		assert.Equal(t, fmt.Sprintf("2026-01-05_slot%d", wantSlot), resp.SlotKey, "вызов %d", i+1)
	}

	for slotIndex := 0; slotIndex < domain.SlotsPerDay; slotIndex++ {
		assert.Equal(t, domain.MaxPerSlot, store.count(fmt.Sprintf("2026-01-05_slot%d", slotIndex)))
	}

	// Все 300 мест заняты - следующий вызов получает expired
	resp, err := uc.Execute(context.Background())
	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPeriodExpired)
}

// Свойство отсутствия овербукинга: конкурентные вызовы никогда не превышают
// вместимость слота, каждый успех потребляет ровно одно место
func TestExecute_ConcurrentCallsDoNotOverbook(t *testing.T) {
	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-05"}}
	store := newFakeCounterStore()
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-05 09:00:00"))

	totalSeats := domain.SlotsPerDay * domain.MaxPerSlot
	callers := totalSeats + 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	successKeys := make(map[string]int)
	expiredCount := 0

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := uc.Execute(context.Background())

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if errors.Is(err, ErrPeriodExpired) {
					expiredCount++
				}
				return
			}
			successKeys[resp.SlotKey]++
		}()
	}
	wg.Wait()

	successes := 0
	for _, n := range successKeys {
		successes += n
	}

	assert.Equal(t, totalSeats, successes, "успехов ровно столько, сколько мест")
	assert.Equal(t, callers-totalSeats, expiredCount, "остальные вызовы получают expired")

	for slotIndex := 0; slotIndex < domain.SlotsPerDay; slotIndex++ {
		key := fmt.Sprintf("2026-01-05_slot%d", slotIndex)
		assert.Equal(t, domain.MaxPerSlot, store.count(key), "счётчик %s не превышает вместимость", key)
		assert.Equal(t, domain.MaxPerSlot, successKeys[key], "каждое место %s выдано ровно один раз", key)
	}
}

func TestExecute_AlternateCalendar(t *testing.T) {
	// Инжектируемый календарь: один слот в день, вместимость 2, выдача только по средам
	calendar := domain.ClaimCalendar{
		Slots:      []domain.TimeSlot{{Label: "9:00 AM – 12:00 PM", StartHour: 9, EndHour: 12}},
		MaxPerSlot: 2,
		ClaimDays:  [7]bool{time.Wednesday: true},
		Location:   time.UTC,
	}

	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-11"}}
	store := newFakeCounterStore()
	uc := NewUseCase(periods, store, &fakeTxManager{}, calendar, nopLogger{})
	uc.timeProvider = &fakeTime{now: mustTime(t, "2026-01-05 09:00:00")}

	// 2026-01-07 - среда, единственный допустимый день периода
	for i := 0; i < 2; i++ {
		resp, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "2026-01-07_slot0", resp.SlotKey)
	}

	resp, err := uc.Execute(context.Background())
	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPeriodExpired)
}

func TestExecute_CounterStoreFailurePropagates(t *testing.T) {
	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{StartDate: "2026-01-05", EndDate: "2026-01-05"}}
	store := newFakeCounterStore()
	store.getErr = errors.New("connection refused")
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-05 09:00:00"))

	resp, err := uc.Execute(context.Background())
	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, store.upsertCalls)
}

func TestExecute_PeriodRepoFailurePropagates(t *testing.T) {
	periods := &fakePeriodRepo{err: errors.New("connection refused")}
	store := newFakeCounterStore()
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-05 09:00:00"))

	resp, err := uc.Execute(context.Background())
	require.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}

// Период может храниться и как RFC3339 с временем - нормализация обрезает время
func TestExecute_TimestampPeriodIsNormalized(t *testing.T) {
	periods := &fakePeriodRepo{period: &domain.ClaimPeriod{
		StartDate: "2026-01-05T15:30:00Z",
		EndDate:   "2026-01-05T08:00:00Z",
	}}
	store := newFakeCounterStore()
	// Вечер последнего дня: если бы конец не нормализовался к 23:59:59, период считался бы истёкшим
	uc := newTestUseCase(periods, store, mustTime(t, "2026-01-05 20:00:00"))

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05_slot0", resp.SlotKey)
}
