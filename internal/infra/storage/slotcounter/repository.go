package slotcounter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CIV-StickerService/internal/domain"
	"github.com/m04kA/CIV-StickerService/pkg/dbmetrics"
	"github.com/m04kA/CIV-StickerService/pkg/psqlbuilder"
)

// Repository репозиторий счётчиков слотов выдачи
// Счётчик создается лениво при первой попытке резервирования и никогда не удаляется
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория счётчиков слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает счётчик по ключу слота
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Get(ctx context.Context, slotKey string) (*domain.SlotCounter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"slot_key",
		"claim_date",
		"slot_index",
		"count",
		"updated_at",
	).
		From("sticker_claim_slots").
		Where(squirrel.Eq{"slot_key": slotKey}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var counter domain.SlotCounter
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&counter.Key,
		&counter.Date,
		&counter.SlotIndex,
		&counter.Count,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCounterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan counter: %v", ErrScanRow, err)
	}

	counter.UpdatedAt = updatedAt.Time

	return &counter, nil
}

// Upsert записывает новое значение счётчика, создавая запись при отсутствии
// Вызывается только внутри сериализуемой транзакции резервирования -
// это единственный путь записи count
func (r *Repository) Upsert(ctx context.Context, counter *domain.SlotCounter) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sticker_claim_slots").
		Columns("slot_key", "claim_date", "slot_index", "count").
		Values(counter.Key, counter.Date, counter.SlotIndex, counter.Count).
		Suffix(`ON CONFLICT (slot_key) DO UPDATE SET
			count = EXCLUDED.count,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListByDates возвращает счётчики по списку дат (YYYY-MM-DD)
// Слоты без счётчика в выборку не попадают - они ещё не резервировались
func (r *Repository) ListByDates(ctx context.Context, dates []string) ([]*domain.SlotCounter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(dates) == 0 {
		return []*domain.SlotCounter{}, nil
	}

	query, args, err := psqlbuilder.Select(
		"slot_key",
		"claim_date",
		"slot_index",
		"count",
		"updated_at",
	).
		From("sticker_claim_slots").
		Where(squirrel.Eq{"claim_date": dates}).
		OrderBy("claim_date ASC", "slot_index ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counters := make([]*domain.SlotCounter, 0)

	for rows.Next() {
		var counter domain.SlotCounter
		var updatedAt sql.NullTime

		err := rows.Scan(
			&counter.Key,
			&counter.Date,
			&counter.SlotIndex,
			&counter.Count,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByDates - scan row: %v", ErrScanRow, err)
		}

		counter.UpdatedAt = updatedAt.Time

		counters = append(counters, &counter)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDates - rows error: %v", ErrScanRow, err)
	}

	return counters, nil
}
