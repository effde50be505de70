package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CIV-StickerService/internal/domain"
	"github.com/m04kA/CIV-StickerService/pkg/dbmetrics"
	"github.com/m04kA/CIV-StickerService/pkg/psqlbuilder"
)

// requestColumns колонки заявки в порядке сканирования
var requestColumns = []string{
	"id",
	"student_id",
	"student_name",
	"email",
	"course",
	"section",
	"status",
	"claim_date",
	"claim_date_label",
	"claim_slot_key",
	"claim_slot_label",
	"qr_token",
	"qr_expires_at",
	"reviewed_by",
	"reject_remarks",
	"accepted_at",
	"created_at",
	"updated_at",
}

// AcceptParams данные, записываемые в заявку при принятии
type AcceptParams struct {
	ClaimDate      string
	ClaimDateLabel string
	ClaimSlotKey   string
	ClaimSlotLabel string
	QRToken        string
	QRExpiresAt    time.Time
	ReviewedBy     string
}

// Repository репозиторий заявок на валидацию ID
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID возвращает заявку по ID
// Если в контексте передана активная транзакция, использует её
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ValidationRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("validation_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return req, nil
}

// MarkAccepted переводит заявку в статус accepted с денормализацией расписания выдачи
// Статус-гард WHERE status = 'pending' защищает от повторного принятия:
// при гонке двух ревьюеров выигрывает ровно один
func (r *Repository) MarkAccepted(ctx context.Context, id int64, params AcceptParams) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("validation_requests").
		Set("status", domain.RequestAccepted).
		Set("claim_date", params.ClaimDate).
		Set("claim_date_label", params.ClaimDateLabel).
		Set("claim_slot_key", params.ClaimSlotKey).
		Set("claim_slot_label", params.ClaimSlotLabel).
		Set("qr_token", params.QRToken).
		Set("qr_expires_at", params.QRExpiresAt).
		Set("reviewed_by", params.ReviewedBy).
		Set("reject_remarks", nil).
		Set("accepted_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.RequestPending,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkAccepted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkAccepted - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkAccepted - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо заявки нет, либо она уже обработана - различаем отдельным запросом
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrRequestNotPending
	}

	return nil
}

// rowScanner абстракция над *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.ValidationRequest, error) {
	var req domain.ValidationRequest
	var acceptedAt, qrExpiresAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.StudentID,
		&req.StudentName,
		&req.Email,
		&req.Course,
		&req.Section,
		&req.Status,
		&req.ClaimDate,
		&req.ClaimDateLabel,
		&req.ClaimSlotKey,
		&req.ClaimSlotLabel,
		&req.QRToken,
		&qrExpiresAt,
		&req.ReviewedBy,
		&req.RejectRemarks,
		&acceptedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if acceptedAt.Valid {
		req.AcceptedAt = &acceptedAt.Time
	}
	if qrExpiresAt.Valid {
		req.QRExpiresAt = &qrExpiresAt.Time
	}
	req.CreatedAt = createdAt.Time
	req.UpdatedAt = updatedAt.Time

	return &req, nil
}
