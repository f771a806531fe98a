package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a booking as seen by the availability engine
// Bookings are written by an external booking flow; this service only reads them
type Booking struct {
	ID          int64
	VenueID     int64
	FieldID     *int64 // nil = venue-level booking
	UserID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus

	// Slots sub-intervals of the booking when it spans several grid slots
	// Empty for single-slot bookings: the booking's own start/end is the interval
	Slots []BookingSlot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlots returns true if the booking blocks availability
// Only confirmed bookings occupy slots; pending and cancelled ones never do
func (b *Booking) OccupiesSlots() bool {
	return b.Status == StatusConfirmed
}

// OccupiedIntervals returns the time intervals the booking blocks:
// the booking-slot sub-intervals when present, otherwise the booking's own span
func (b *Booking) OccupiedIntervals() []TimeInterval {
	if len(b.Slots) > 0 {
		intervals := make([]TimeInterval, len(b.Slots))
		for i, s := range b.Slots {
			intervals[i] = TimeInterval{Start: s.StartTime, End: s.EndTime}
		}
		return intervals
	}
	return []TimeInterval{{Start: b.StartTime, End: b.EndTime}}
}

// BookingSlot represents a sub-interval of a multi-slot booking
type BookingSlot struct {
	ID        int64
	BookingID int64
	StartTime types.TimeString
	EndTime   types.TimeString
}

// VenueBookingsFilter фильтр для выборки бронирований площадки
//
// FieldID задает область поиска так же, как в сетке слотов:
// nil означает бронирования уровня площадки (field_id IS NULL),
// конкретное значение - бронирования этого поля. Бронирования чужих полей
// никогда не блокируют слоты запрошенной области
type VenueBookingsFilter struct {
	VenueID   int64
	FieldID   *int64
	StartDate *time.Time     // начало периода включительно
	EndDate   *time.Time     // конец периода включительно
	Status    *BookingStatus // nil = любой статус
}
