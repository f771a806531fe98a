package notificationservice

import "errors"

var (
	// ErrInvalidResponse возвращается при неожиданном ответе NotificationService
	ErrInvalidResponse = errors.New("notificationservice: invalid response")

	// ErrServiceDegraded возвращается при недоступности NotificationService
	// Уведомления не критичны для доступности - вызывающая сторона только логирует
	ErrServiceDegraded = errors.New("notificationservice: service degraded")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notificationservice: internal error")
)
