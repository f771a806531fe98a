package overrides

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("overrides.service: venue not found")

	// ErrFieldNotFound возвращается, когда поле не найдено в площадке
	ErrFieldNotFound = errors.New("overrides.service: field not found")

	// ErrOccasionNotFound возвращается, когда переопределение не найдено
	ErrOccasionNotFound = errors.New("overrides.service: special occasion not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец площадки
	ErrAccessDenied = errors.New("overrides.service: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("overrides.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("overrides.service: internal error")
)
