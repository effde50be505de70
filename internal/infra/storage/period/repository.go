package period

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

// settingsRowID настройки периода выдачи хранятся в единственной строке
const settingsRowID = 1

// Repository репозиторий настроек периода выдачи стикеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория периода выдачи
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает текущие настройки периода выдачи
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Get(ctx context.Context) (*domain.ClaimPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"start_date",
		"end_date",
		"updated_at",
		"updated_by",
		"last_extension_days",
	).
		From("claim_period_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.ClaimPeriod
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.StartDate,
		&p.EndDate,
		&updatedAt,
		&p.UpdatedBy,
		&p.LastExtensionDays,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan period: %v", ErrScanRow, err)
	}

	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// Upsert сохраняет настройки периода выдачи
// Пустые строки в датах означают "период сброшен"
func (r *Repository) Upsert(ctx context.Context, p *domain.ClaimPeriod) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("claim_period_settings").
		Columns("id", "start_date", "end_date", "updated_by").
		Values(settingsRowID, p.StartDate, p.EndDate, p.UpdatedBy).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			updated_by = EXCLUDED.updated_by,
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

// UpdateEndDate продлевает период выдачи: меняет только дату окончания
func (r *Repository) UpdateEndDate(ctx context.Context, endDate string, extensionDays int, updatedBy string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("claim_period_settings").
		Set("end_date", endDate).
		Set("last_extension_days", extensionDays).
		Set("updated_by", updatedBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateEndDate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateEndDate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateEndDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPeriodNotFound
	}

	return nil
}
