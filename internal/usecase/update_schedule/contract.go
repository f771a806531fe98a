package update_schedule

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/internal/integrations/notificationservice"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	ListFields(ctx context.Context, venueID int64) ([]domain.Field, error)
	UpdateSchedule(ctx context.Context, id int64, opening, closing types.TimeString, days []int64) error
}

// SlotGridGenerator интерфейс сервиса генерации сетки слотов
type SlotGridGenerator interface {
	Generate(ctx context.Context, venue *domain.Venue, fields []domain.Field) error
}

// NotificationClient интерфейс клиента сервиса уведомлений
type NotificationClient interface {
	NotifyScheduleChangedWithGracefulDegradation(ctx context.Context, event *notificationservice.ScheduleChangedEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
