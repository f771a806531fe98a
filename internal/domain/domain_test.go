package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

func TestTimeInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeInterval
		b    TimeInterval
		want bool
	}{
		{
			name: "identical intervals",
			a:    TimeInterval{Start: "10:00", End: "11:00"},
			b:    TimeInterval{Start: "10:00", End: "11:00"},
			want: true,
		},
		{
			name: "partial overlap",
			a:    TimeInterval{Start: "10:00", End: "11:00"},
			b:    TimeInterval{Start: "10:30", End: "11:30"},
			want: true,
		},
		{
			name: "containment",
			a:    TimeInterval{Start: "09:00", End: "12:00"},
			b:    TimeInterval{Start: "10:00", End: "11:00"},
			want: true,
		},
		{
			name: "touching boundaries do not overlap",
			a:    TimeInterval{Start: "10:00", End: "11:00"},
			b:    TimeInterval{Start: "11:00", End: "12:00"},
			want: false,
		},
		{
			name: "disjoint",
			a:    TimeInterval{Start: "08:00", End: "09:00"},
			b:    TimeInterval{Start: "11:00", End: "12:00"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestClassifyDay(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		available int
		want      DayStatus
	}{
		{name: "no grid", total: 0, available: 0, want: DayUnavailable},
		{name: "fully booked", total: 17, available: 0, want: DayUnavailable},
		{name: "negative available", total: 17, available: -1, want: DayUnavailable},
		{name: "well below threshold", total: 17, available: 2, want: DayLimited},
		{name: "just below threshold", total: 17, available: 4, want: DayLimited}, // 4/17 ≈ 23.5%
		{name: "above threshold", total: 17, available: 10, want: DayAvailable},
		{name: "everything free", total: 17, available: 17, want: DayAvailable},
		{name: "exactly at threshold", total: 10, available: 3, want: DayLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDay(tt.total, tt.available))
		})
	}
}

func TestBooking_OccupiedIntervals(t *testing.T) {
	t.Run("single slot booking uses its own span", func(t *testing.T) {
		b := &Booking{StartTime: "10:00", EndTime: "11:00", Status: StatusConfirmed}
		intervals := b.OccupiedIntervals()
		assert.Equal(t, []TimeInterval{{Start: "10:00", End: "11:00"}}, intervals)
	})

	t.Run("multi slot booking uses sub intervals", func(t *testing.T) {
		b := &Booking{
			StartTime: "10:00",
			EndTime:   "12:00",
			Status:    StatusConfirmed,
			Slots: []BookingSlot{
				{StartTime: "10:00", EndTime: "11:00"},
				{StartTime: "11:00", EndTime: "12:00"},
			},
		}
		intervals := b.OccupiedIntervals()
		assert.Len(t, intervals, 2)
		assert.Equal(t, TimeInterval{Start: "10:00", End: "11:00"}, intervals[0])
		assert.Equal(t, TimeInterval{Start: "11:00", End: "12:00"}, intervals[1])
	})
}

func TestBooking_OccupiesSlots(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).OccupiesSlots())
	assert.False(t, (&Booking{Status: StatusPending}).OccupiesSlots())
	assert.False(t, (&Booking{Status: StatusCancelled}).OccupiesSlots())
	assert.False(t, (&Booking{Status: StatusCompleted}).OccupiesSlots())
}

func TestSpecialOccasion_Contains(t *testing.T) {
	occasion := &SpecialOccasion{
		StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, occasion.Contains(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.True(t, occasion.Contains(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, occasion.Contains(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.True(t, occasion.Contains(time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)))
	assert.False(t, occasion.Contains(time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)))

	// Время внутри дня не влияет на попадание
	assert.True(t, occasion.Contains(time.Date(2026, 3, 12, 23, 59, 0, 0, time.UTC)))
}

func TestSpecialOccasion_Effect(t *testing.T) {
	t.Run("closed uses reason over title", func(t *testing.T) {
		reason := "ремонт покрытия"
		occasion := &SpecialOccasion{Type: OverrideClosed, Title: "Закрытие", Reason: &reason}
		effect := occasion.Effect()
		assert.True(t, effect.IsClosed())
		assert.Equal(t, "ремонт покрытия", effect.Closed.Reason)
		assert.Nil(t, effect.CustomHours)
		assert.Nil(t, effect.CustomPricing)
	})

	t.Run("closed falls back to title", func(t *testing.T) {
		occasion := &SpecialOccasion{Type: OverrideClosed, Title: "Закрытие"}
		effect := occasion.Effect()
		assert.Equal(t, "Закрытие", effect.Closed.Reason)
	})

	t.Run("custom hours", func(t *testing.T) {
		open := types.TimeString("12:00")
		clos := types.TimeString("18:00")
		occasion := &SpecialOccasion{Type: OverrideCustomHours, OpenTime: &open, CloseTime: &clos}
		effect := occasion.Effect()
		assert.False(t, effect.IsClosed())
		assert.Equal(t, types.TimeString("12:00"), effect.CustomHours.OpenTime)
		assert.Equal(t, types.TimeString("18:00"), effect.CustomHours.CloseTime)
	})

	t.Run("custom pricing", func(t *testing.T) {
		day, night := 1500.0, 2500.0
		occasion := &SpecialOccasion{Type: OverrideCustomPricing, DayPrice: &day, NightPrice: &night}
		effect := occasion.Effect()
		assert.Equal(t, 1500.0, effect.CustomPricing.DayPrice)
		assert.Equal(t, 2500.0, effect.CustomPricing.NightPrice)
	})

	t.Run("unknown type means no override", func(t *testing.T) {
		occasion := &SpecialOccasion{Type: "unexpected"}
		assert.True(t, occasion.Effect().None())
	})
}

func TestVenue_OperatesOn(t *testing.T) {
	venue := &Venue{DaysAvailable: []int64{1, 2, 3, 4, 5}}
	assert.True(t, venue.OperatesOn(time.Monday))
	assert.True(t, venue.OperatesOn(time.Friday))
	assert.False(t, venue.OperatesOn(time.Saturday))
	assert.False(t, venue.OperatesOn(time.Sunday))
}
