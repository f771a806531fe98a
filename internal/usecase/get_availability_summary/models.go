package get_availability_summary

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Request модель запроса календарной сводки доступности
type Request struct {
	UserID    int64     // ID пользователя (0 для анонимных запросов, только для логирования)
	VenueID   int64     // ID площадки
	FieldID   *int64    // ID поля (nil = уровень площадки)
	StartDate time.Time // Начало диапазона включительно
	EndDate   time.Time // Конец диапазона включительно
}

// Response модель ответа: статус по каждому дню диапазона
type Response struct {
	VenueID int64
	FieldID *int64
	// Days отображение даты (YYYY-MM-DD) в статус дня
	Days map[string]domain.DayStatus
}
