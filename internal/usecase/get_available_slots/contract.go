package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	GetFieldByID(ctx context.Context, fieldID int64) (*domain.Field, error)
	ListFields(ctx context.Context, venueID int64) ([]domain.Field, error)
}

// SlotGridRepository интерфейс репозитория сетки слотов
type SlotGridRepository interface {
	// GetForDay получает активные слоты сетки на день недели в заданной области
	GetForDay(ctx context.Context, venueID int64, dayOfWeek int, fieldID *int64) ([]domain.TimeSlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByVenueWithFilter(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error)
}

// OverrideResolver интерфейс резолвера переопределений доступности
// Резолвер не возвращает ошибку: при сбое чтения вердикт деградирует
// до "нет переопределений" (fail open)
type OverrideResolver interface {
	Resolve(ctx context.Context, venueID int64, date time.Time, fieldID *int64) domain.OverrideEffect
}

// GridEnsurer интерфейс ленивого самовосстановления сетки слотов
type GridEnsurer interface {
	EnsureGrid(ctx context.Context, venue *domain.Venue, fields []domain.Field) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
