package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// buildOccupiedIntervals собирает занятые интервалы из подтвержденных бронирований
// Для мульти-слотовых бронирований используются под-интервалы booking_slots,
// иначе собственный интервал брони
func buildOccupiedIntervals(bookings []*domain.Booking) []domain.TimeInterval {
	intervals := make([]domain.TimeInterval, 0, len(bookings))
	for _, booking := range bookings {
		if !booking.OccupiesSlots() {
			continue
		}
		intervals = append(intervals, booking.OccupiedIntervals()...)
	}
	return intervals
}

// filterByOccupied убирает слоты сетки, реально пересекающиеся с занятыми интервалами
//
// Пересечение проверяется по интервалам, а не по точному совпадению строк:
// бронь 10:30-11:30 блокирует оба слота 10:00-11:00 и 11:00-12:00.
// Граничащие интервалы (бронь кончается ровно в начале слота) не пересекаются
func filterByOccupied(slots []domain.TimeSlot, occupied []domain.TimeInterval) []domain.TimeSlot {
	if len(occupied) == 0 {
		return slots
	}

	available := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		blocked := false
		for _, interval := range occupied {
			if slot.Interval().Overlaps(interval) {
				blocked = true
				break
			}
		}
		if !blocked {
			available = append(available, slot)
		}
	}
	return available
}

// filterByLookahead убирает слоты, начинающиеся не позже now + lookahead минут
// Применяется только для сегодняшней даты: бронировать слот без запаса
// времени на дорогу нельзя
//
// Слот с нечитаемым временем начала СОХРАНЯЕТСЯ (fail open): лучше показать
// лишний слот, чем молча спрятать бронируемый инвентарь
func filterByLookahead(slots []domain.TimeSlot, now time.Time, lookaheadMinutes int, log Logger) []domain.TimeSlot {
	cutoff := now.Hour()*60 + now.Minute() + lookaheadMinutes

	available := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		startMinutes, err := slot.StartTime.Minutes()
		if err != nil {
			log.Warn("filterByLookahead: slot id=%d has malformed start time %q, keeping it: %v",
				slot.ID, slot.StartTime, err)
			available = append(available, slot)
			continue
		}
		// Слот, начинающийся ровно в now+lookahead, исключается; на минуту позже - остается
		if startMinutes > cutoff {
			available = append(available, slot)
		}
	}
	return available
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
