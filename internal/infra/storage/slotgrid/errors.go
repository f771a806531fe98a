package slotgrid

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slotgrid.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slotgrid.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slotgrid.repository: failed to scan row")

	// ErrPartialInsert возвращается при ошибке вставки одного из батчей:
	// площадка остается с неполной сеткой и требует повторной генерации
	ErrPartialInsert = errors.New("slotgrid.repository: partial batch insert failure")
)
