package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueService/pkg/ptr"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeVenueRepo struct {
	venues map[int64]*domain.Venue
	fields map[int64]*domain.Field
}

func (f *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	if v, ok := f.venues[id]; ok {
		return v, nil
	}
	return nil, venueRepo.ErrVenueNotFound
}

func (f *fakeVenueRepo) GetFieldByID(_ context.Context, fieldID int64) (*domain.Field, error) {
	if fld, ok := f.fields[fieldID]; ok {
		return fld, nil
	}
	return nil, venueRepo.ErrFieldNotFound
}

func (f *fakeVenueRepo) ListFields(_ context.Context, venueID int64) ([]domain.Field, error) {
	out := make([]domain.Field, 0)
	for _, fld := range f.fields {
		if fld.VenueID == venueID {
			out = append(out, *fld)
		}
	}
	return out, nil
}

type fakeGridRepo struct {
	slots []domain.TimeSlot
	err   error
}

func (f *fakeGridRepo) GetForDay(_ context.Context, venueID int64, dayOfWeek int, fieldID *int64) ([]domain.TimeSlot, error) {
	if f.err != nil {
		return nil, f.err
	}

	out := make([]domain.TimeSlot, 0)
	for _, slot := range f.slots {
		if slot.VenueID != venueID || slot.DayOfWeek != dayOfWeek || !slot.IsActive {
			continue
		}
		switch {
		case fieldID == nil && slot.FieldID == nil:
			out = append(out, slot)
		case fieldID != nil && slot.FieldID != nil && *slot.FieldID == *fieldID:
			out = append(out, slot)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	lastFilter domain.VenueBookingsFilter
}

func (f *fakeBookingRepo) GetByVenueWithFilter(_ context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}

	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.VenueID != filter.VenueID {
			continue
		}
		switch {
		case filter.FieldID == nil && b.FieldID != nil:
			continue
		case filter.FieldID != nil && (b.FieldID == nil || *b.FieldID != *filter.FieldID):
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeResolver struct {
	effect domain.OverrideEffect
}

func (f fakeResolver) Resolve(context.Context, int64, time.Time, *int64) domain.OverrideEffect {
	return f.effect
}

type fakeEnsurer struct {
	calls int
	err   error
}

func (f *fakeEnsurer) EnsureGrid(context.Context, *domain.Venue, []domain.Field) error {
	f.calls++
	return f.err
}

// gridFor строит сетку 06:00-23:00 с шагом час на все 7 дней:
// строки уровня площадки и строки каждого из полей
func gridFor(venueID int64, fieldIDs ...int64) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)
	id := int64(1)
	for day := 0; day < 7; day++ {
		for h := 6; h < 23; h++ {
			startTime := types.TimeString(timeOfHour(h))
			endTime := types.TimeString(timeOfHour(h + 1))

			slots = append(slots, domain.TimeSlot{
				ID: id, VenueID: venueID, DayOfWeek: day,
				StartTime: startTime, EndTime: endTime, IsActive: true,
			})
			id++
			for _, fid := range fieldIDs {
				fieldID := fid
				slots = append(slots, domain.TimeSlot{
					ID: id, VenueID: venueID, FieldID: &fieldID, DayOfWeek: day,
					StartTime: startTime, EndTime: endTime, IsActive: true,
				})
				id++
			}
		}
	}
	return slots
}

func timeOfHour(h int) string {
	return time.Date(2026, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04")
}

type env struct {
	venues   *fakeVenueRepo
	grid     *fakeGridRepo
	bookings *fakeBookingRepo
	resolver fakeResolver
	ensurer  *fakeEnsurer
	uc       *UseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		venues: &fakeVenueRepo{
			venues: map[int64]*domain.Venue{
				1: {
					ID: 1, OwnerID: 42, Name: "Арена Север",
					OpeningTime: "06:00", ClosingTime: "23:00",
					DaysAvailable: []int64{0, 1, 2, 3, 4, 5, 6},
					Status:        domain.VenueStatusApproved,
				},
			},
			fields: map[int64]*domain.Field{
				10: {ID: 10, VenueID: 1, Name: "Поле 1", Status: domain.FieldStatusOpen},
				11: {ID: 11, VenueID: 1, Name: "Поле 2", Status: domain.FieldStatusOpen},
				20: {ID: 20, VenueID: 2, Name: "Чужое поле", Status: domain.FieldStatusOpen},
			},
		},
		grid:     &fakeGridRepo{slots: gridFor(1, 10, 11)},
		bookings: &fakeBookingRepo{},
		ensurer:  &fakeEnsurer{},
	}
	e.rebuild()
	return e
}

func (e *env) rebuild() {
	e.uc = NewUseCase(e.venues, e.grid, e.bookings, e.resolver, e.ensurer, domain.DefaultLookaheadMinutes, nopLogger{})
	// Запросы в тестах относятся к будущей дате, фильтр запаса времени
	// не срабатывает, пока тест явно не совместит даты
	e.uc.timeProvider = fixedTime{now: time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)}
}

// Вторник 2026-03-10, будущая дата относительно фиксированного "сейчас"
var requestDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestUseCase_Execute_FullGrid(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: requestDate})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	require.Len(t, resp.Slots, 17)
	assert.Equal(t, types.TimeString("06:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("07:00"), resp.Slots[0].EndTime)
	assert.Equal(t, 60, resp.Slots[0].DurationMinutes)
	assert.Equal(t, types.TimeString("22:00"), resp.Slots[16].StartTime)
	assert.Equal(t, 1, e.ensurer.calls)

	// Запрошены только подтвержденные брони той же области
	require.NotNil(t, e.bookings.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *e.bookings.lastFilter.Status)
	assert.Nil(t, e.bookings.lastFilter.FieldID)
}

func TestUseCase_Execute_FieldBookingDoesNotTouchVenueGrid(t *testing.T) {
	e := newEnv(t)
	e.bookings.bookings = []*domain.Booking{
		{
			ID: 1, VenueID: 1, FieldID: ptr.Ptr(int64(10)), UserID: 7,
			BookingDate: requestDate, StartTime: "10:00", EndTime: "11:00",
			Status: domain.StatusConfirmed,
		},
	}

	// Сетка поля 10 теряет слот 10:00
	resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, FieldID: ptr.Ptr(int64(10)), Date: requestDate})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 16)
	for _, slot := range resp.Slots {
		assert.NotEqual(t, types.TimeString("10:00"), slot.StartTime)
	}

	// Сетка уровня площадки не затронута
	resp, err = e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: requestDate})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 17)

	// Сетка другого поля тоже не затронута
	resp, err = e.uc.Execute(context.Background(), &Request{VenueID: 1, FieldID: ptr.Ptr(int64(11)), Date: requestDate})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 17)
}

func TestUseCase_Execute_StraddlingBookingBlocksBothSlots(t *testing.T) {
	e := newEnv(t)
	e.bookings.bookings = []*domain.Booking{
		{
			ID: 1, VenueID: 1, UserID: 7,
			BookingDate: requestDate, StartTime: "10:30", EndTime: "11:30",
			Status: domain.StatusConfirmed,
		},
	}

	resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: requestDate})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 15)
	for _, slot := range resp.Slots {
		assert.NotEqual(t, types.TimeString("10:00"), slot.StartTime)
		assert.NotEqual(t, types.TimeString("11:00"), slot.StartTime)
	}
}

func TestUseCase_Execute_PendingBookingDoesNotBlock(t *testing.T) {
	e := newEnv(t)
	e.bookings.bookings = []*domain.Booking{
		{
			ID: 1, VenueID: 1, UserID: 7,
			BookingDate: requestDate, StartTime: "10:00", EndTime: "11:00",
			Status: domain.StatusPending,
		},
	}

	resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: requestDate})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 17)
}

func TestUseCase_Execute_ClosedOverride(t *testing.T) {
	e := newEnv(t)
	e.resolver = fakeResolver{effect: domain.OverrideEffect{
		Type:   domain.OverrideClosed,
		Closed: &domain.ClosedOverride{Reason: "городской турнир"},
	}}
	e.rebuild()

	resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: requestDate})
	require.NoError(t, err)

	assert.True(t, resp.Closed)
	assert.Equal(t, "городской турнир", resp.ClosedReason)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_CustomHoursPassedThrough(t *testing.T) {
	e := newEnv(t)
	e.resolver = fakeResolver{effect: domain.OverrideEffect{
		Type: domain.OverrideCustomHours,
		CustomHours: &domain.CustomHoursOverride{
			OpenTime:  "12:00",
			CloseTime: "18:00",
		},
	}}
	e.rebuild()

	resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: requestDate})
	require.NoError(t, err)

	// Особые часы не фильтруют сетку, только поднимаются для отображения
	assert.False(t, resp.Closed)
	assert.Len(t, resp.Slots, 17)
	require.NotNil(t, resp.CustomHours)
	assert.Equal(t, types.TimeString("12:00"), resp.CustomHours.OpenTime)
}

func TestUseCase_Execute_ClosedField(t *testing.T) {
	e := newEnv(t)
	e.venues.fields[10].Status = domain.FieldStatusClosed

	resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, FieldID: ptr.Ptr(int64(10)), Date: requestDate})
	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)

	// Площадка и другие поля не затронуты
	resp, err = e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: requestDate})
	require.NoError(t, err)
	assert.False(t, resp.Closed)
	assert.Len(t, resp.Slots, 17)
}

func TestUseCase_Execute_NotApprovedVenue(t *testing.T) {
	e := newEnv(t)
	e.venues.venues[1].Status = domain.VenueStatusPending

	resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: requestDate})
	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{VenueID: 99, Date: requestDate})
	assert.ErrorIs(t, err, ErrVenueNotFound)

	_, err = e.uc.Execute(context.Background(), &Request{VenueID: 1, FieldID: ptr.Ptr(int64(999)), Date: requestDate})
	assert.ErrorIs(t, err, ErrFieldNotFound)

	// Поле существует, но принадлежит другой площадке
	_, err = e.uc.Execute(context.Background(), &Request{VenueID: 1, FieldID: ptr.Ptr(int64(20)), Date: requestDate})
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestUseCase_Execute_LookaheadFilter(t *testing.T) {
	e := newEnv(t)
	// Сегодня 2026-03-10 (вторник), сейчас 09:30: порог = 10:00
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	e.uc.timeProvider = fixedTime{now: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)}

	resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: today})
	require.NoError(t, err)

	// Слот ровно на границе (10:00) исключается, первый доступный 11:00
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[0].StartTime)
	assert.Len(t, resp.Slots, 12)

	// Минутой раньше слот 10:00 еще доступен
	e.uc.timeProvider = fixedTime{now: time.Date(2026, 3, 10, 9, 29, 0, 0, time.UTC)}
	resp, err = e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: today})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].StartTime)
	assert.Len(t, resp.Slots, 13)

	// Для будущей даты фильтр не применяется
	e.uc.timeProvider = fixedTime{now: time.Date(2026, 3, 9, 22, 0, 0, 0, time.UTC)}
	resp, err = e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: today})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 17)
}

func TestUseCase_Execute_MalformedSlotTimeSurvivesLookahead(t *testing.T) {
	e := newEnv(t)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	e.uc.timeProvider = fixedTime{now: time.Date(2026, 3, 10, 22, 50, 0, 0, time.UTC)}

	e.grid.slots = []domain.TimeSlot{
		{ID: 1, VenueID: 1, DayOfWeek: 2, StartTime: "22:00", EndTime: "23:00", IsActive: true},
		{ID: 2, VenueID: 1, DayOfWeek: 2, StartTime: "garbage", EndTime: "23:00", IsActive: true},
	}

	resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: today})
	require.NoError(t, err)

	// Читаемый слот отфильтрован порогом, нечитаемый сохранен
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, types.TimeString("garbage"), resp.Slots[0].StartTime)
}

func TestUseCase_Execute_FailurePolicies(t *testing.T) {
	t.Run("grid read failure returns empty list", func(t *testing.T) {
		e := newEnv(t)
		e.grid.err = errors.New("db down")

		resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: requestDate})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
		assert.False(t, resp.Closed)
	})

	t.Run("booking read failure returns empty list", func(t *testing.T) {
		e := newEnv(t)
		e.bookings.err = errors.New("db down")

		resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: requestDate})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("grid self heal failure does not break the request", func(t *testing.T) {
		e := newEnv(t)
		e.ensurer.err = errors.New("generation failed")

		resp, err := e.uc.Execute(context.Background(), &Request{VenueID: 1, Date: requestDate})
		require.NoError(t, err)
		assert.Len(t, resp.Slots, 17)
	})
}

func TestUseCase_Execute_Validation(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{VenueID: 0, Date: requestDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.uc.Execute(context.Background(), &Request{VenueID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.uc.Execute(context.Background(), &Request{VenueID: 1, FieldID: ptr.Ptr(int64(-5)), Date: requestDate})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
