package domain

import "time"

// TimeSlot фиксированное дневное окно выдачи
type TimeSlot struct {
	Label     string // Человекочитаемая метка, например "8:00 AM – 11:00 AM"
	StartHour int    // 0-23
	EndHour   int    // 0-23, StartHour < EndHour
}

// SlotCounter персистентный счётчик резервирований слота.
// Одна запись на пару (дата, индекс слота), создается лениво при первом резервировании
type SlotCounter struct {
	Key       string // "<YYYY-MM-DD>_slot<N>"
	Date      string // YYYY-MM-DD
	SlotIndex int
	Count     int
	UpdatedAt time.Time
}

// ClaimSchedule назначенное расписание выдачи стикера
type ClaimSchedule struct {
	Date      time.Time
	DateLabel string // "Monday, January 5, 2026"
	TimeSlot  TimeSlot
	SlotKey   string
}

// SlotOccupancy заполненность одного слота для отчетности
type SlotOccupancy struct {
	Date      string
	SlotIndex int
	TimeSlot  TimeSlot
	Count     int
	Capacity  int
}

// AvailableSeats возвращает количество свободных мест в слоте
func (s *SlotOccupancy) AvailableSeats() int {
	free := s.Capacity - s.Count
	if free < 0 {
		return 0
	}
	return free
}

// IsFull возвращает true, если в слоте не осталось свободных мест
func (s *SlotOccupancy) IsFull() bool {
	return s.Count >= s.Capacity
}

// OccupancyRate возвращает заполненность слота в процентах (0-100)
func (s *SlotOccupancy) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Count) / float64(s.Capacity) * 100
}
