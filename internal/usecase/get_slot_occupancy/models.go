package get_slot_occupancy

// SlotView заполненность одного слота
type SlotView struct {
	SlotKey   string // "2026-01-05_slot0"
	Label     string // "8:00 AM – 11:00 AM"
	Count     int
	Capacity  int
	Available int
	IsFull    bool
}

// DayOccupancy заполненность всех слотов одного дня выдачи
type DayOccupancy struct {
	Date      string // YYYY-MM-DD
	DateLabel string // "Monday, January 5, 2026"
	Slots     []SlotView
}

// Response модель ответа с заполненностью слотов за весь период выдачи
type Response struct {
	StartDate    string
	EndDate      string
	EndDateLabel string // "January 10, 2026"

	Days []DayOccupancy

	TotalReserved int // Всего занятых мест за период
	TotalCapacity int // Всего мест за период
}
