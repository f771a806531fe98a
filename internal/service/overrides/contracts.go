package overrides

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// OccasionRepository интерфейс репозитория переопределений
type OccasionRepository interface {
	Create(ctx context.Context, occasion *domain.SpecialOccasion) (*domain.SpecialOccasion, error)
	GetByID(ctx context.Context, id int64) (*domain.SpecialOccasion, error)
	ListByVenue(ctx context.Context, venueID int64) ([]*domain.SpecialOccasion, error)
	// GetForDate получает записи, действующие на дату, с приоритетом записей поля
	GetForDate(ctx context.Context, venueID int64, date time.Time, fieldID *int64) ([]*domain.SpecialOccasion, error)
	Delete(ctx context.Context, id int64) error
}

// VenueRepository интерфейс репозитория площадок (для проверок принадлежности и прав)
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	GetFieldByID(ctx context.Context, fieldID int64) (*domain.Field, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
