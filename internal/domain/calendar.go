package domain

import (
	"fmt"
	"time"
)

// ClaimCalendar описывает дни и слоты, доступные для выдачи стикеров.
// Передается значением, а не зашит константами, чтобы тесты могли
// использовать альтернативные календари
type ClaimCalendar struct {
	Slots      []TimeSlot     // Фиксированный порядок слотов определяет приоритет внутри дня
	MaxPerSlot int            // Вместимость каждого слота
	ClaimDays  [7]bool        // Индексируется time.Weekday
	Location   *time.Location // Часовой пояс кампуса
}

// DefaultClaimCalendar возвращает боевой календарь выдачи:
// три слота в день, с понедельника по субботу, 100 мест в слоте
func DefaultClaimCalendar() ClaimCalendar {
	return ClaimCalendar{
		Slots: []TimeSlot{
			{Label: "8:00 AM – 11:00 AM", StartHour: 8, EndHour: 11},
			{Label: "1:00 PM – 4:00 PM", StartHour: 13, EndHour: 16},
			{Label: "5:00 PM – 7:00 PM", StartHour: 17, EndHour: 19},
		},
		MaxPerSlot: MaxPerSlot,
		ClaimDays: [7]bool{
			time.Sunday:    false,
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
			time.Saturday:  true,
		},
		Location: time.Local,
	}
}

// IsClaimDay возвращает true, если в указанную дату возможна выдача стикеров
func (c *ClaimCalendar) IsClaimDay(date time.Time) bool {
	return c.ClaimDays[date.Weekday()]
}

// SlotKey собирает составной ключ счётчика из даты и индекса слота
func SlotKey(date time.Time, slotIndex int) string {
	return fmt.Sprintf("%s_slot%d", date.Format(DateFormat), slotIndex)
}
