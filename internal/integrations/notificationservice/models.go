package notificationservice

// ScheduleChangedEvent событие изменения расписания площадки
// NotificationService рассылает предупреждения пользователям с активными
// бронированиями на эту площадку
type ScheduleChangedEvent struct {
	VenueID       int64   `json:"venueId"`
	OpeningTime   string  `json:"openingTime"`
	ClosingTime   string  `json:"closingTime"`
	DaysAvailable []int64 `json:"daysAvailable"`
}
