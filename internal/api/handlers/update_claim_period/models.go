package update_claim_period

// UpdatePeriodRequest HTTP request model
// Обе даты пустые - период сбрасывается, интерфейс настроек
// сохраняет пустые строки при отключении выдачи
type UpdatePeriodRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// IsClear возвращает true, если запрос сбрасывает период
func (r *UpdatePeriodRequest) IsClear() bool {
	return r.StartDate == "" && r.EndDate == ""
}
