package get_slot_occupancy

import (
	getSlotOccupancy "github.com/m04kA/CIV-StickerService/internal/usecase/get_slot_occupancy"
)

// SlotResponse заполненность одного слота
type SlotResponse struct {
	SlotKey   string `json:"slotKey"`
	Label     string `json:"label"`
	Count     int    `json:"count"`
	Capacity  int    `json:"capacity"`
	Available int    `json:"available"`
	IsFull    bool   `json:"isFull"`
}

// DayResponse заполненность слотов одного дня выдачи
type DayResponse struct {
	Date      string         `json:"date"`
	DateLabel string         `json:"dateLabel"`
	Slots     []SlotResponse `json:"slots"`
}

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	EndDateLabel string `json:"endDateLabel"`

	Days []DayResponse `json:"days"`

	TotalReserved int `json:"totalReserved"`
	TotalCapacity int `json:"totalCapacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(r *getSlotOccupancy.Response) *OccupancyResponse {
	resp := &OccupancyResponse{
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		EndDateLabel:  r.EndDateLabel,
		Days:          make([]DayResponse, 0, len(r.Days)),
		TotalReserved: r.TotalReserved,
		TotalCapacity: r.TotalCapacity,
	}

	for _, day := range r.Days {
		dayResp := DayResponse{
			Date:      day.Date,
			DateLabel: day.DateLabel,
			Slots:     make([]SlotResponse, 0, len(day.Slots)),
		}

		for _, slot := range day.Slots {
			dayResp.Slots = append(dayResp.Slots, SlotResponse{
				SlotKey:   slot.SlotKey,
				Label:     slot.Label,
				Count:     slot.Count,
				Capacity:  slot.Capacity,
				Available: slot.Available,
				IsFull:    slot.IsFull,
			})
		}

		resp.Days = append(resp.Days, dayResp)
	}

	return resp
}
