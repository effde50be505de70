package mailservice

// AcceptanceEmail запрос на постановку в очередь письма о принятии заявки
// Рендеринг шаблона и сама отправка - на стороне MailService
type AcceptanceEmail struct {
	To             string `json:"to"`
	StudentName    string `json:"studentName"`
	StudentID      string `json:"studentId"`
	ClaimDateLabel string `json:"claimDateLabel"` // "Monday, January 5, 2026"
	ClaimSlotLabel string `json:"claimSlotLabel"` // "8:00 AM – 11:00 AM"
	QRToken        string `json:"qrToken"`
	QRExpiresAt    string `json:"qrExpiresAt"` // RFC3339
}

// QueueResponse ответ MailService на постановку письма в очередь
type QueueResponse struct {
	MessageID string `json:"messageId"`
}

// ErrorResponse модель ошибки от MailService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
