package domain

// Форматы дат
const (
	DateFormat         = "2006-01-02"              // YYYY-MM-DD
	DateLabelFormat    = "Monday, January 2, 2006" // Длинный формат для писем и UI
	EndDateLabelFormat = "January 2, 2006"         // Формат даты окончания периода
)

// Параметры слотов выдачи
const (
	// MaxPerSlot вместимость одного слота (одинаковая для всех слотов)
	MaxPerSlot = 100

	// SlotsPerDay количество слотов выдачи в день
	SlotsPerDay = 3
)

// Срок действия QR-кода
const (
	DefaultQRExpirationDays = 7
	MinQRExpirationDays     = 1
	MaxQRExpirationDays     = 30
)

// Продление периода выдачи
const (
	MinExtensionDays = 1
	MaxExtensionDays = 90
)
