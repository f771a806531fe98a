package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// VenueStatus represents the moderation status of a venue
type VenueStatus string

const (
	VenueStatusPending   VenueStatus = "pending"
	VenueStatusApproved  VenueStatus = "approved"
	VenueStatusSuspended VenueStatus = "suspended"
)

// Venue represents a bookable venue with its operating schedule
type Venue struct {
	ID          int64
	OwnerID     int64
	Name        string
	OpeningTime types.TimeString
	ClosingTime types.TimeString
	// DaysAvailable дни недели, в которые площадка работает (0 = воскресенье ... 6 = суббота)
	DaysAvailable []int64
	Status        VenueStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsApproved returns true if the venue passed moderation and serves availability
func (v *Venue) IsApproved() bool {
	return v.Status == VenueStatusApproved
}

// OperatesOn returns true if the venue works on the given weekday
func (v *Venue) OperatesOn(weekday time.Weekday) bool {
	for _, d := range v.DaysAvailable {
		if int(weekday) == int(d) {
			return true
		}
	}
	return false
}

// FieldStatus represents the operational status of a field
type FieldStatus string

const (
	FieldStatusOpen   FieldStatus = "open"
	FieldStatusClosed FieldStatus = "closed"
)

// Field represents a single playing field inside a venue
// A closed field contributes no available slots regardless of the grid
type Field struct {
	ID        int64
	VenueID   int64
	Name      string
	Status    FieldStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true if the field is operational
func (f *Field) IsOpen() bool {
	return f.Status == FieldStatusOpen
}
