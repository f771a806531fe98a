package slotgrid

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// GridRepository интерфейс репозитория сетки слотов
type GridRepository interface {
	DeleteByVenue(ctx context.Context, venueID int64) error
	BulkInsert(ctx context.Context, slots []domain.TimeSlot) error
	CountByVenue(ctx context.Context, venueID int64) (int, error)
}

// VenueRepository интерфейс репозитория площадок (для прохода самовосстановления)
type VenueRepository interface {
	ListAll(ctx context.Context) ([]*domain.Venue, error)
	ListFields(ctx context.Context, venueID int64) ([]domain.Field, error)
}

// TransactionManager интерфейс менеджера транзакций
// Удаление старой сетки и вставка новой выполняются в одной сериализуемой
// транзакции, чтобы параллельные чтения не видели пустую сетку
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
