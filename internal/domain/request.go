package domain

import "time"

// RequestStatus статус заявки на валидацию ID
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
	RequestClaimed  RequestStatus = "claimed" // Стикер выдан на окне OSA
)

// ValidationRequest заявка студента на валидацию ID
type ValidationRequest struct {
	ID          int64
	StudentID   string
	StudentName string
	Email       string
	Course      string
	Section     string
	Status      RequestStatus

	// Денормализованное расписание выдачи, заполняется при принятии
	ClaimDate      *string // YYYY-MM-DD
	ClaimDateLabel *string
	ClaimSlotKey   *string
	ClaimSlotLabel *string

	QRToken       *string
	QRExpiresAt   *time.Time
	ReviewedBy    *string
	RejectRemarks *string
	AcceptedAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending возвращает true, если заявка ещё не рассмотрена
func (r *ValidationRequest) IsPending() bool {
	return r.Status == RequestPending
}

// CanBeAccepted возвращает true, если заявку можно принять
func (r *ValidationRequest) CanBeAccepted() bool {
	return r.Status == RequestPending
}

// IsProcessed возвращает true, если заявка уже рассмотрена
func (r *ValidationRequest) IsProcessed() bool {
	return r.Status != RequestPending
}
