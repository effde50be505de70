package slotcounter

import "errors"

var (
	// ErrCounterNotFound возвращается, когда счётчик слота ещё не создан
	ErrCounterNotFound = errors.New("slotcounter.repository: counter not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slotcounter.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slotcounter.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slotcounter.repository: failed to scan row")
)
