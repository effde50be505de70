package extend_claim_period

import (
	extendPeriod "github.com/m04kA/CIV-StickerService/internal/usecase/extend_claim_period"
)

// ExtendPeriodRequest HTTP request model
type ExtendPeriodRequest struct {
	ExtensionDays int `json:"extensionDays"` // 1-90
}

// ExtendPeriodResponse HTTP response model
type ExtendPeriodResponse struct {
	StartDate       string `json:"startDate"`
	PreviousEndDate string `json:"previousEndDate"`
	NewEndDate      string `json:"newEndDate"`
	NewEndDateLabel string `json:"newEndDateLabel"` // "January 24, 2026"
	ExtensionDays   int    `json:"extensionDays"`
	UpdatedBy       string `json:"updatedBy"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(r *extendPeriod.Response) *ExtendPeriodResponse {
	return &ExtendPeriodResponse{
		StartDate:       r.StartDate,
		PreviousEndDate: r.PreviousEndDate,
		NewEndDate:      r.NewEndDate,
		NewEndDateLabel: r.NewEndDateLabel,
		ExtensionDays:   r.ExtensionDays,
		UpdatedBy:       r.UpdatedBy,
	}
}
