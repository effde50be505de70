package accept_validation_request

import "time"

// Request модель запроса на принятие заявки
type Request struct {
	RequestID      int64  // ID заявки на валидацию
	ReviewedBy     string // Имя ревьюера (админ или OSA)
	ExpirationDays int    // Срок действия QR-кода в днях, 0 = дефолт
}

// Response модель ответа с принятой заявкой и назначенным расписанием выдачи
type Response struct {
	RequestID   int64
	StudentID   string
	StudentName string
	Email       string
	Status      string

	// Назначенное расписание выдачи стикера
	ClaimDate      time.Time // Назначенная дата (полночь)
	ClaimDateLabel string    // "Monday, January 5, 2026"
	ClaimSlotLabel string    // "8:00 AM – 11:00 AM"
	ClaimSlotKey   string    // "2026-01-05_slot0"

	QRToken     string
	QRExpiresAt time.Time
	ReviewedBy  string

	// EmailQueued false, если MailService был недоступен (graceful degradation)
	EmailQueued bool
}
