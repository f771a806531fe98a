package update_schedule

import "github.com/m04kA/SMC-VenueService/pkg/types"

// Request модель запроса обновления расписания площадки
type Request struct {
	UserID        int64            // ID пользователя-владельца
	VenueID       int64            // ID площадки
	OpeningTime   types.TimeString // Время открытия (HH:MM)
	ClosingTime   types.TimeString // Время закрытия (HH:MM)
	DaysAvailable []int64          // Рабочие дни недели (0 = воскресенье ... 6 = суббота)
}

// Response модель ответа с обновленным расписанием
type Response struct {
	VenueID       int64
	OpeningTime   types.TimeString
	ClosingTime   types.TimeString
	DaysAvailable []int64
}
