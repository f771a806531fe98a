package specialoccasion

import "errors"

var (
	// ErrOccasionNotFound возвращается, когда переопределение не найдено
	ErrOccasionNotFound = errors.New("specialoccasion.repository: special occasion not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("specialoccasion.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("specialoccasion.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("specialoccasion.repository: failed to scan row")
)
