package extend_claim_period

// Request модель запроса на продление периода выдачи
type Request struct {
	ExtensionDays int    // Количество дней продления (1-90)
	UpdatedBy     string // Имя администратора
}

// Response модель ответа с продлённым периодом
type Response struct {
	StartDate       string // Дата начала (не меняется)
	PreviousEndDate string // Дата окончания до продления, YYYY-MM-DD
	NewEndDate      string // Дата окончания после продления, YYYY-MM-DD
	NewEndDateLabel string // "January 24, 2026"
	ExtensionDays   int
	UpdatedBy       string
}
