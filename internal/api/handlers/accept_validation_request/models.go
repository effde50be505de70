package accept_validation_request

import (
	"time"

	"github.com/m04kA/CIV-StickerService/internal/domain"
	acceptRequest "github.com/m04kA/CIV-StickerService/internal/usecase/accept_validation_request"
)

// AcceptRequest HTTP request model
type AcceptRequest struct {
	ExpirationDays int `json:"expirationDays,omitempty"` // 0 = дефолтный срок
}

// AcceptResponse HTTP response model
type AcceptResponse struct {
	RequestID   int64  `json:"requestId"`
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	Email       string `json:"email"`
	Status      string `json:"status"`

	ClaimDate      string `json:"claimDate"`      // "2026-01-05"
	ClaimDateLabel string `json:"claimDateLabel"` // "Monday, January 5, 2026"
	ClaimSlotLabel string `json:"claimSlotLabel"` // "8:00 AM – 11:00 AM"
	ClaimSlotKey   string `json:"claimSlotKey"`   // "2026-01-05_slot0"

	QRToken     string `json:"qrToken"`
	QRExpiresAt string `json:"qrExpiresAt"` // RFC3339
	ReviewedBy  string `json:"reviewedBy"`

	EmailQueued bool `json:"emailQueued"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(r *acceptRequest.Response) *AcceptResponse {
	return &AcceptResponse{
		RequestID:      r.RequestID,
		StudentID:      r.StudentID,
		StudentName:    r.StudentName,
		Email:          r.Email,
		Status:         r.Status,
		ClaimDate:      r.ClaimDate.Format(domain.DateFormat),
		ClaimDateLabel: r.ClaimDateLabel,
		ClaimSlotLabel: r.ClaimSlotLabel,
		ClaimSlotKey:   r.ClaimSlotKey,
		QRToken:        r.QRToken,
		QRExpiresAt:    r.QRExpiresAt.Format(time.RFC3339),
		ReviewedBy:     r.ReviewedBy,
		EmailQueued:    r.EmailQueued,
	}
}
