package get_availability_summary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	GetFieldByID(ctx context.Context, fieldID int64) (*domain.Field, error)
}

// SlotGridRepository интерфейс репозитория сетки слотов
type SlotGridRepository interface {
	// CountForDay считает активные слоты сетки на день недели в заданной области
	CountForDay(ctx context.Context, venueID int64, dayOfWeek int, fieldID *int64) (int, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByVenueWithFilter(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error)
}

// OverrideResolver интерфейс резолвера переопределений доступности
type OverrideResolver interface {
	Resolve(ctx context.Context, venueID int64, date time.Time, fieldID *int64) domain.OverrideEffect
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
