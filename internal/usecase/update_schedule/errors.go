package update_schedule

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrPermissionDenied возвращается, когда пользователь не владеет площадкой
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrGridRegenerationFailed возвращается, когда расписание сохранено,
	// но пересборка сетки слотов не удалась
	ErrGridRegenerationFailed = errors.New("slot grid regeneration failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
