package overrides

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueService/internal/service/overrides/models"
	"github.com/m04kA/SMC-VenueService/pkg/ptr"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeOccasionRepo struct {
	occasions  []*domain.SpecialOccasion
	forDateErr error
	created    *domain.SpecialOccasion
	deletedID  int64
}

func (f *fakeOccasionRepo) Create(_ context.Context, occasion *domain.SpecialOccasion) (*domain.SpecialOccasion, error) {
	created := *occasion
	created.ID = 100
	f.created = &created
	return &created, nil
}

func (f *fakeOccasionRepo) GetByID(_ context.Context, id int64) (*domain.SpecialOccasion, error) {
	for _, o := range f.occasions {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeOccasionRepo) ListByVenue(_ context.Context, venueID int64) ([]*domain.SpecialOccasion, error) {
	out := make([]*domain.SpecialOccasion, 0)
	for _, o := range f.occasions {
		if o.VenueID == venueID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOccasionRepo) GetForDate(_ context.Context, venueID int64, date time.Time, fieldID *int64) ([]*domain.SpecialOccasion, error) {
	if f.forDateErr != nil {
		return nil, f.forDateErr
	}

	// Повторяет правила выборки репозитория: записи поля первыми,
	// затем записи уровня площадки
	fieldScoped := make([]*domain.SpecialOccasion, 0)
	venueScoped := make([]*domain.SpecialOccasion, 0)
	for _, o := range f.occasions {
		if o.VenueID != venueID || !o.Contains(date) {
			continue
		}
		switch {
		case o.FieldID == nil:
			venueScoped = append(venueScoped, o)
		case fieldID != nil && *o.FieldID == *fieldID:
			fieldScoped = append(fieldScoped, o)
		}
	}
	return append(fieldScoped, venueScoped...), nil
}

func (f *fakeOccasionRepo) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

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

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(occasions *fakeOccasionRepo, venues *fakeVenueRepo) *Service {
	return NewService(occasions, venues, nopLogger{})
}

func defaultVenues() *fakeVenueRepo {
	return &fakeVenueRepo{
		venues: map[int64]*domain.Venue{
			1: {ID: 1, OwnerID: 42, Name: "Арена Север", Status: domain.VenueStatusApproved},
		},
		fields: map[int64]*domain.Field{
			10: {ID: 10, VenueID: 1, Name: "Поле 1", Status: domain.FieldStatusOpen},
			20: {ID: 20, VenueID: 2, Name: "Чужое поле", Status: domain.FieldStatusOpen},
		},
	}
}

func TestService_Resolve(t *testing.T) {
	day := date(2026, 3, 10)

	t.Run("no occasions means no override", func(t *testing.T) {
		svc := newTestService(&fakeOccasionRepo{}, defaultVenues())
		effect := svc.Resolve(context.Background(), 1, day, nil)
		assert.True(t, effect.None())
	})

	t.Run("closed wins over custom hours", func(t *testing.T) {
		openTime := types.TimeString("12:00")
		closeTime := types.TimeString("18:00")
		repo := &fakeOccasionRepo{occasions: []*domain.SpecialOccasion{
			{ID: 1, VenueID: 1, Type: domain.OverrideCustomHours, StartDate: day, EndDate: day, OpenTime: &openTime, CloseTime: &closeTime},
			{ID: 2, VenueID: 1, Title: "Турнир", Type: domain.OverrideClosed, StartDate: day, EndDate: day},
		}}
		svc := newTestService(repo, defaultVenues())

		effect := svc.Resolve(context.Background(), 1, day, nil)
		require.True(t, effect.IsClosed())
		assert.Equal(t, "Турнир", effect.Closed.Reason)
	})

	t.Run("field scoped record preferred over venue level", func(t *testing.T) {
		fieldDay, fieldNight := 1000.0, 1800.0
		venueDay, venueNight := 2000.0, 3000.0
		repo := &fakeOccasionRepo{occasions: []*domain.SpecialOccasion{
			{ID: 1, VenueID: 1, Type: domain.OverrideCustomPricing, StartDate: day, EndDate: day,
				DayPrice: &venueDay, NightPrice: &venueNight},
			{ID: 2, VenueID: 1, FieldID: ptr.Ptr(int64(10)), Type: domain.OverrideCustomPricing,
				StartDate: day, EndDate: day, DayPrice: &fieldDay, NightPrice: &fieldNight},
		}}
		svc := newTestService(repo, defaultVenues())

		effect := svc.Resolve(context.Background(), 1, day, ptr.Ptr(int64(10)))
		require.NotNil(t, effect.CustomPricing)
		assert.Equal(t, 1000.0, effect.CustomPricing.DayPrice)

		// Без поля действует запись уровня площадки
		effect = svc.Resolve(context.Background(), 1, day, nil)
		require.NotNil(t, effect.CustomPricing)
		assert.Equal(t, 2000.0, effect.CustomPricing.DayPrice)
	})

	t.Run("date outside range does not apply", func(t *testing.T) {
		repo := &fakeOccasionRepo{occasions: []*domain.SpecialOccasion{
			{ID: 1, VenueID: 1, Title: "Закрытие", Type: domain.OverrideClosed,
				StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 5)},
		}}
		svc := newTestService(repo, defaultVenues())

		assert.True(t, svc.Resolve(context.Background(), 1, day, nil).None())
		assert.True(t, svc.Resolve(context.Background(), 1, date(2026, 3, 5), nil).IsClosed())
	})

	t.Run("repository failure degrades to no override", func(t *testing.T) {
		repo := &fakeOccasionRepo{forDateErr: errors.New("connection refused")}
		svc := newTestService(repo, defaultVenues())

		effect := svc.Resolve(context.Background(), 1, day, nil)
		assert.True(t, effect.None())
	})
}

func TestService_Create(t *testing.T) {
	validReq := func() *models.CreateOccasionRequest {
		return &models.CreateOccasionRequest{
			UserID:       42,
			VenueID:      1,
			Title:        "Закрытие на ремонт",
			StartDate:    "2026-03-10",
			EndDate:      "2026-03-12",
			OverrideType: "closed",
		}
	}

	t.Run("owner creates closure", func(t *testing.T) {
		repo := &fakeOccasionRepo{}
		svc := newTestService(repo, defaultVenues())

		resp, err := svc.Create(context.Background(), validReq())
		require.NoError(t, err)
		assert.Equal(t, int64(100), resp.ID)
		assert.Equal(t, "closed", resp.OverrideType)
		require.NotNil(t, repo.created)
		assert.Equal(t, domain.OverrideClosed, repo.created.Type)
	})

	t.Run("non owner is rejected", func(t *testing.T) {
		svc := newTestService(&fakeOccasionRepo{}, defaultVenues())
		req := validReq()
		req.UserID = 7

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("field of another venue is rejected", func(t *testing.T) {
		svc := newTestService(&fakeOccasionRepo{}, defaultVenues())
		req := validReq()
		req.FieldID = ptr.Ptr(int64(20))

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrFieldNotFound)
	})

	t.Run("custom hours requires both times", func(t *testing.T) {
		svc := newTestService(&fakeOccasionRepo{}, defaultVenues())
		req := validReq()
		req.OverrideType = "custom_hours"
		req.OpenTime = ptr.Ptr("12:00")

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("custom hours open must be before close", func(t *testing.T) {
		svc := newTestService(&fakeOccasionRepo{}, defaultVenues())
		req := validReq()
		req.OverrideType = "custom_hours"
		req.OpenTime = ptr.Ptr("18:00")
		req.CloseTime = ptr.Ptr("12:00")

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("custom pricing requires both prices", func(t *testing.T) {
		svc := newTestService(&fakeOccasionRepo{}, defaultVenues())
		req := validReq()
		req.OverrideType = "custom_pricing"
		req.DayPrice = ptr.Ptr(1500.0)

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown override type is rejected", func(t *testing.T) {
		svc := newTestService(&fakeOccasionRepo{}, defaultVenues())
		req := validReq()
		req.OverrideType = "half_closed"

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("recurring requires known pattern", func(t *testing.T) {
		svc := newTestService(&fakeOccasionRepo{}, defaultVenues())
		req := validReq()
		req.IsRecurring = true
		req.RecurrencePattern = ptr.Ptr("daily")

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req.RecurrencePattern = ptr.Ptr("weekly")
		_, err = svc.Create(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		svc := newTestService(&fakeOccasionRepo{}, defaultVenues())
		req := validReq()
		req.StartDate = "2026-03-12"
		req.EndDate = "2026-03-10"

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Delete(t *testing.T) {
	occasion := &domain.SpecialOccasion{ID: 5, VenueID: 1, Title: "Закрытие", Type: domain.OverrideClosed}

	t.Run("owner deletes occasion", func(t *testing.T) {
		repo := &fakeOccasionRepo{occasions: []*domain.SpecialOccasion{occasion}}
		svc := newTestService(repo, defaultVenues())

		err := svc.Delete(context.Background(), &models.DeleteOccasionRequest{UserID: 42, VenueID: 1, OccasionID: 5})
		require.NoError(t, err)
		assert.Equal(t, int64(5), repo.deletedID)
	})

	t.Run("non owner is rejected", func(t *testing.T) {
		repo := &fakeOccasionRepo{occasions: []*domain.SpecialOccasion{occasion}}
		svc := newTestService(repo, defaultVenues())

		err := svc.Delete(context.Background(), &models.DeleteOccasionRequest{UserID: 7, VenueID: 1, OccasionID: 5})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("occasion of another venue is hidden", func(t *testing.T) {
		foreign := &domain.SpecialOccasion{ID: 6, VenueID: 2, Title: "Чужое", Type: domain.OverrideClosed}
		repo := &fakeOccasionRepo{occasions: []*domain.SpecialOccasion{foreign}}
		svc := newTestService(repo, defaultVenues())

		err := svc.Delete(context.Background(), &models.DeleteOccasionRequest{UserID: 42, VenueID: 1, OccasionID: 6})
		assert.ErrorIs(t, err, ErrOccasionNotFound)
	})
}
