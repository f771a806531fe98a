package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// OverrideType represents the kind of a special occasion override
type OverrideType string

const (
	OverrideClosed        OverrideType = "closed"
	OverrideCustomHours   OverrideType = "custom_hours"
	OverrideCustomPricing OverrideType = "custom_pricing"
)

// SpecialOccasion represents a date-ranged exception to normal venue availability
// Optionally scoped to a single field; unscoped records (FieldID = nil) apply to
// the venue-level grid, mirroring the slot grid duality
//
// IsRecurring and RecurrencePattern are stored for the admin screens but the
// resolver matches literal [StartDate, EndDate] containment only; a yearly
// closure has to be re-entered to take effect again
type SpecialOccasion struct {
	ID        int64
	VenueID   int64
	FieldID   *int64 // nil = applies to the venue-level grid
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Type      OverrideType

	// Payload columns; only the ones matching Type are meaningful,
	// Effect() converts them into the typed variant
	Reason     *string
	OpenTime   *types.TimeString
	CloseTime  *types.TimeString
	DayPrice   *float64
	NightPrice *float64

	IsRecurring       bool
	RecurrencePattern *string // weekly | monthly | yearly

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains returns true if the date falls inside [StartDate, EndDate] (inclusive)
func (o *SpecialOccasion) Contains(date time.Time) bool {
	day := truncateToDay(date)
	return !day.Before(truncateToDay(o.StartDate)) && !day.After(truncateToDay(o.EndDate))
}

// IsFieldScoped returns true if the override applies to a single field
func (o *SpecialOccasion) IsFieldScoped() bool {
	return o.FieldID != nil
}

// Effect converts the stored payload columns into the typed override variant
func (o *SpecialOccasion) Effect() OverrideEffect {
	switch o.Type {
	case OverrideClosed:
		reason := o.Title
		if o.Reason != nil && *o.Reason != "" {
			reason = *o.Reason
		}
		return OverrideEffect{Type: OverrideClosed, Closed: &ClosedOverride{Reason: reason}}
	case OverrideCustomHours:
		eff := OverrideEffect{Type: OverrideCustomHours, CustomHours: &CustomHoursOverride{}}
		if o.OpenTime != nil {
			eff.CustomHours.OpenTime = *o.OpenTime
		}
		if o.CloseTime != nil {
			eff.CustomHours.CloseTime = *o.CloseTime
		}
		return eff
	case OverrideCustomPricing:
		eff := OverrideEffect{Type: OverrideCustomPricing, CustomPricing: &CustomPricingOverride{}}
		if o.DayPrice != nil {
			eff.CustomPricing.DayPrice = *o.DayPrice
		}
		if o.NightPrice != nil {
			eff.CustomPricing.NightPrice = *o.NightPrice
		}
		return eff
	default:
		return NoOverride()
	}
}

// OverrideEffect tagged union describing the resolver's verdict for a date
// Exactly one payload pointer is set, matching Type; the zero value means
// no override applies
type OverrideEffect struct {
	Type          OverrideType // "" = no override
	Closed        *ClosedOverride
	CustomHours   *CustomHoursOverride
	CustomPricing *CustomPricingOverride
}

// ClosedOverride payload of a closure override
type ClosedOverride struct {
	Reason string
}

// CustomHoursOverride payload of a custom working hours override
type CustomHoursOverride struct {
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// CustomPricingOverride payload of a custom pricing override
type CustomPricingOverride struct {
	DayPrice   float64
	NightPrice float64
}

// NoOverride returns the verdict for a date with no override in effect
func NoOverride() OverrideEffect {
	return OverrideEffect{}
}

// IsClosed returns true if the verdict is a closure
func (e OverrideEffect) IsClosed() bool {
	return e.Type == OverrideClosed
}

// None returns true if no override applies
func (e OverrideEffect) None() bool {
	return e.Type == ""
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
