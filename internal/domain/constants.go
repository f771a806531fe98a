package domain

// Default availability configuration values
const (
	DefaultSlotDurationMinutes = 60 // slot grid step
	DefaultLookaheadMinutes    = 30 // minimum lead time for same-day bookings
	DefaultGridInsertBatchSize = 100
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 240 // 4 hours
	MaxSummaryRangeDays    = 92  // ~3 months of calendar display
	MaxTitleLength         = 200
	MaxReasonLength        = 500
)

// LimitedAvailabilityThreshold доля свободных слотов, ниже которой день
// помечается как limited в календарной сводке
const LimitedAvailabilityThreshold = 0.30

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DayStatus per-day availability status for calendar display
type DayStatus string

const (
	DayAvailable   DayStatus = "available"
	DayLimited     DayStatus = "limited"
	DayUnavailable DayStatus = "unavailable"
)

// ClassifyDay returns the calendar status for a day given total and available
// slot counts: an empty grid or a fully booked day is unavailable, 30% of the
// grid or less is limited, anything above that is available
func ClassifyDay(total, available int) DayStatus {
	if total <= 0 || available <= 0 {
		return DayUnavailable
	}
	if float64(available) <= float64(total)*LimitedAvailabilityThreshold {
		return DayLimited
	}
	return DayAvailable
}
