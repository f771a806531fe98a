package slotgrid

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// inlineTxManager выполняет fn сразу, без настоящей транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeGridRepo struct {
	stored    []domain.TimeSlot
	counts    map[int64]int
	insertErr error
	deleteErr error
	countErr  error
	deleted   []int64
}

func (f *fakeGridRepo) DeleteByVenue(_ context.Context, venueID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, venueID)
	f.stored = nil
	return nil
}

func (f *fakeGridRepo) BulkInsert(_ context.Context, slots []domain.TimeSlot) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.stored = append(f.stored, slots...)
	return nil
}

func (f *fakeGridRepo) CountByVenue(_ context.Context, venueID int64) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[venueID], nil
}

type fakeVenueRepo struct {
	venues  []*domain.Venue
	fields  map[int64][]domain.Field
	listErr error
}

func (f *fakeVenueRepo) ListAll(_ context.Context) ([]*domain.Venue, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.venues, nil
}

func (f *fakeVenueRepo) ListFields(_ context.Context, venueID int64) ([]domain.Field, error) {
	return f.fields[venueID], nil
}

func testVenue() *domain.Venue {
	return &domain.Venue{
		ID:            1,
		OwnerID:       42,
		Name:          "Арена Север",
		OpeningTime:   "06:00",
		ClosingTime:   "23:00",
		DaysAvailable: []int64{0, 1, 2, 3, 4, 5, 6},
		Status:        domain.VenueStatusApproved,
	}
}

func testFields() []domain.Field {
	return []domain.Field{
		{ID: 10, VenueID: 1, Name: "Поле 1", Status: domain.FieldStatusOpen},
		{ID: 11, VenueID: 1, Name: "Поле 2", Status: domain.FieldStatusOpen},
	}
}

func TestService_Generate(t *testing.T) {
	t.Run("full week grid for venue and fields", func(t *testing.T) {
		grid := &fakeGridRepo{}
		svc := NewService(grid, &fakeVenueRepo{}, inlineTxManager{}, 60, nopLogger{})

		err := svc.Generate(context.Background(), testVenue(), testFields())
		require.NoError(t, err)

		// 17 шагов (06:00..23:00, шаг 60м) * 7 дней * (площадка + 2 поля)
		assert.Len(t, grid.stored, 17*7*3)
		assert.Equal(t, []int64{1}, grid.deleted)

		venueLevel := 0
		perField := map[int64]int{}
		for _, slot := range grid.stored {
			assert.True(t, slot.IsActive)
			assert.Equal(t, int64(1), slot.VenueID)
			if slot.FieldID == nil {
				venueLevel++
			} else {
				perField[*slot.FieldID]++
			}
		}
		assert.Equal(t, 17*7, venueLevel)
		assert.Equal(t, 17*7, perField[10])
		assert.Equal(t, 17*7, perField[11])
	})

	t.Run("first and last slot follow working hours", func(t *testing.T) {
		grid := &fakeGridRepo{}
		svc := NewService(grid, &fakeVenueRepo{}, inlineTxManager{}, 60, nopLogger{})

		venue := testVenue()
		venue.DaysAvailable = []int64{1}
		require.NoError(t, svc.Generate(context.Background(), venue, nil))

		require.Len(t, grid.stored, 17)
		assert.Equal(t, "06:00", grid.stored[0].StartTime.String())
		assert.Equal(t, "07:00", grid.stored[0].EndTime.String())
		assert.Equal(t, "22:00", grid.stored[16].StartTime.String())
		assert.Equal(t, "23:00", grid.stored[16].EndTime.String())
	})

	t.Run("partial trailing step is dropped", func(t *testing.T) {
		grid := &fakeGridRepo{}
		svc := NewService(grid, &fakeVenueRepo{}, inlineTxManager{}, 60, nopLogger{})

		venue := testVenue()
		venue.DaysAvailable = []int64{1}
		venue.ClosingTime = "22:30"
		require.NoError(t, svc.Generate(context.Background(), venue, nil))

		// Последний полный слот 21:00-22:00; хвост 22:00-22:30 не попадает
		require.Len(t, grid.stored, 16)
		assert.Equal(t, "21:00", grid.stored[15].StartTime.String())
	})

	t.Run("duplicate days collapse", func(t *testing.T) {
		grid := &fakeGridRepo{}
		svc := NewService(grid, &fakeVenueRepo{}, inlineTxManager{}, 60, nopLogger{})

		venue := testVenue()
		venue.DaysAvailable = []int64{1, 1, 1}
		require.NoError(t, svc.Generate(context.Background(), venue, nil))
		assert.Len(t, grid.stored, 17)
	})

	t.Run("invalid schedule is rejected before touching storage", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(v *domain.Venue)
		}{
			{name: "closing before opening", mutate: func(v *domain.Venue) { v.ClosingTime = "05:00" }},
			{name: "malformed opening", mutate: func(v *domain.Venue) { v.OpeningTime = "garbage" }},
			{name: "no weekdays", mutate: func(v *domain.Venue) { v.DaysAvailable = nil }},
			{name: "weekday out of range", mutate: func(v *domain.Venue) { v.DaysAvailable = []int64{7} }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				grid := &fakeGridRepo{}
				svc := NewService(grid, &fakeVenueRepo{}, inlineTxManager{}, 60, nopLogger{})

				venue := testVenue()
				tt.mutate(venue)

				err := svc.Generate(context.Background(), venue, nil)
				assert.ErrorIs(t, err, ErrInvalidSchedule)
				assert.Empty(t, grid.deleted)
				assert.Empty(t, grid.stored)
			})
		}
	})

	t.Run("insert failure surfaces as generation error", func(t *testing.T) {
		grid := &fakeGridRepo{insertErr: errors.New("batch 3 failed")}
		svc := NewService(grid, &fakeVenueRepo{}, inlineTxManager{}, 60, nopLogger{})

		err := svc.Generate(context.Background(), testVenue(), nil)
		assert.ErrorIs(t, err, ErrGenerationFailed)
	})
}

func TestService_EnsureGrid(t *testing.T) {
	t.Run("existing grid is untouched", func(t *testing.T) {
		grid := &fakeGridRepo{counts: map[int64]int{1: 119}}
		svc := NewService(grid, &fakeVenueRepo{}, inlineTxManager{}, 60, nopLogger{})

		require.NoError(t, svc.EnsureGrid(context.Background(), testVenue(), nil))
		assert.Empty(t, grid.deleted)
	})

	t.Run("missing grid is generated", func(t *testing.T) {
		grid := &fakeGridRepo{counts: map[int64]int{}}
		svc := NewService(grid, &fakeVenueRepo{}, inlineTxManager{}, 60, nopLogger{})

		require.NoError(t, svc.EnsureGrid(context.Background(), testVenue(), testFields()))
		assert.Len(t, grid.stored, 17*7*3)
	})

	t.Run("count failure is surfaced", func(t *testing.T) {
		grid := &fakeGridRepo{countErr: errors.New("timeout")}
		svc := NewService(grid, &fakeVenueRepo{}, inlineTxManager{}, 60, nopLogger{})

		err := svc.EnsureGrid(context.Background(), testVenue(), nil)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_RepairAll(t *testing.T) {
	t.Run("only venues without grid are repaired", func(t *testing.T) {
		withGrid := testVenue()
		withoutGrid := testVenue()
		withoutGrid.ID = 2

		grid := &fakeGridRepo{counts: map[int64]int{1: 119}}
		venues := &fakeVenueRepo{
			venues: []*domain.Venue{withGrid, withoutGrid},
			fields: map[int64][]domain.Field{2: testFields()},
		}
		svc := NewService(grid, venues, inlineTxManager{}, 60, nopLogger{})

		repaired, err := svc.RepairAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, repaired)
		assert.Equal(t, []int64{2}, grid.deleted)
	})

	t.Run("broken venue is skipped without stopping the pass", func(t *testing.T) {
		broken := testVenue()
		broken.OpeningTime = "garbage"
		healthy := testVenue()
		healthy.ID = 2

		grid := &fakeGridRepo{counts: map[int64]int{}}
		venues := &fakeVenueRepo{venues: []*domain.Venue{broken, healthy}, fields: map[int64][]domain.Field{}}
		svc := NewService(grid, venues, inlineTxManager{}, 60, nopLogger{})

		repaired, err := svc.RepairAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, repaired)
	})

	t.Run("venue list failure is surfaced", func(t *testing.T) {
		venues := &fakeVenueRepo{listErr: errors.New("db down")}
		svc := NewService(&fakeGridRepo{}, venues, inlineTxManager{}, 60, nopLogger{})

		_, err := svc.RepairAll(context.Background())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
