package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID  int64     // ID пользователя (0 для анонимных запросов, только для логирования)
	VenueID int64     // ID площадки
	FieldID *int64    // ID поля (nil = уровень площадки)
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date    time.Time // Дата, на которую запрашивались слоты
	VenueID int64     // ID площадки
	FieldID *int64    // ID поля (nil = уровень площадки)
	Slots   []Slot    // Список доступных слотов, отсортированный по времени начала

	// Closed признак закрытия площадки на эту дату (переопределение closed,
	// неподтвержденная площадка или закрытое поле); Slots при этом пуст
	Closed       bool
	ClosedReason string

	// CustomHours особое время работы на эту дату (если действует)
	CustomHours *HoursInfo
	// CustomPricing особые цены на эту дату (если действуют)
	CustomPricing *PricingInfo
}

// Slot модель доступного временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	EndTime         types.TimeString // Время конца слота (например, "11:00")
	DurationMinutes int              // Длительность слота в минутах
}

// HoursInfo особое время работы из переопределения custom_hours
type HoursInfo struct {
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// PricingInfo особые цены из переопределения custom_pricing
type PricingInfo struct {
	DayPrice   float64
	NightPrice float64
}
