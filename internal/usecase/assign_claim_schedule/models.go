package assign_claim_schedule

import (
	"time"

	"github.com/m04kA/CIV-StickerService/internal/domain"
)

// Response модель ответа с назначенным расписанием выдачи
// Все поля согласованы между собой: SlotKey соответствует Date и TimeSlot
type Response struct {
	Date      time.Time       // Назначенная дата (полночь)
	DateLabel string          // "Monday, January 5, 2026"
	TimeSlot  domain.TimeSlot // Назначенный слот
	SlotKey   string          // Ключ зарезервированного счётчика, "2026-01-05_slot0"
}
