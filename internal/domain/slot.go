package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// TimeSlot represents a materialized slot grid row
// Two parallel grids exist per venue: venue-level rows (FieldID = nil, used when
// the caller does not select a field) and one full grid per field
type TimeSlot struct {
	ID        int64
	VenueID   int64
	FieldID   *int64 // nil = venue-level slot
	DayOfWeek int    // 0 = воскресенье ... 6 = суббота
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool
	CreatedAt time.Time
}

// IsVenueLevel returns true if the slot belongs to the venue-level grid
func (s *TimeSlot) IsVenueLevel() bool {
	return s.FieldID == nil
}

// Interval returns the slot's time interval
func (s *TimeSlot) Interval() TimeInterval {
	return TimeInterval{Start: s.StartTime, End: s.EndTime}
}

// TimeInterval a half-open [Start, End) time range within a day
type TimeInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps returns true if the two intervals actually share time
// Touching boundaries (one ends exactly where the other starts) do not overlap
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.IsBefore(other.End) && i.End.IsAfter(other.Start)
}

// Key returns the interval identity used for deduplication
func (i TimeInterval) Key() string {
	return i.Start.String() + "-" + i.End.String()
}
