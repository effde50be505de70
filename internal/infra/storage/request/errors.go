package request

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка на валидацию не найдена
	ErrRequestNotFound = errors.New("request.repository: validation request not found")

	// ErrRequestNotPending возвращается, когда заявка уже обработана
	// и не может быть принята повторно
	ErrRequestNotPending = errors.New("request.repository: validation request is not pending")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("request.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("request.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("request.repository: failed to scan row")
)
