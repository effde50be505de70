package period

import "errors"

var (
	// ErrPeriodNotFound возвращается, когда настройки периода выдачи не найдены
	ErrPeriodNotFound = errors.New("period.repository: claim period not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("period.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("period.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("period.repository: failed to scan row")
)
