package slotgrid

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с материализованной сеткой слотов
type Repository struct {
	db DBExecutor
	// batchSize размер батча при массовой вставке (ограничение размера запроса)
	batchSize int
}

// NewRepository создает новый экземпляр репозитория сетки слотов
func NewRepository(db DBExecutor, batchSize int) *Repository {
	if batchSize <= 0 {
		batchSize = domain.DefaultGridInsertBatchSize
	}
	return &Repository{db: db, batchSize: batchSize}
}

// DeleteByVenue удаляет все слоты сетки площадки
// Вызывается перед перегенерацией: замена сетки полная, а не инкрементальная
func (r *Repository) DeleteByVenue(ctx context.Context, venueID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByVenue - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByVenue - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// BulkInsert вставляет слоты сетки батчами фиксированного размера
// Батчи выполняются последовательно; ошибка любого батча прерывает вставку,
// и площадка остается с неполной сеткой (ErrPartialInsert) - отката между
// батчами нет, если вызов идет вне транзакции
func (r *Repository) BulkInsert(ctx context.Context, slots []domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for offset := 0; offset < len(slots); offset += r.batchSize {
		end := offset + r.batchSize
		if end > len(slots) {
			end = len(slots)
		}

		insertBuilder := psqlbuilder.Insert("time_slots").
			Columns(
				"venue_id",
				"field_id",
				"day_of_week",
				"start_time",
				"end_time",
				"is_active",
			)

		for _, slot := range slots[offset:end] {
			insertBuilder = insertBuilder.Values(
				slot.VenueID,
				slot.FieldID,
				slot.DayOfWeek,
				slot.StartTime,
				slot.EndTime,
				slot.IsActive,
			)
		}

		query, args, err := insertBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("%w: BulkInsert - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: BulkInsert - batch at offset %d: %v", ErrPartialInsert, offset, err)
		}
	}

	return nil
}

// GetForDay получает активные слоты сетки на день недели
// fieldID nil выбирает сетку уровня площадки (field_id IS NULL),
// конкретное значение - сетку этого поля
func (r *Repository) GetForDay(ctx context.Context, venueID int64, dayOfWeek int, fieldID *int64) ([]domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"venue_id",
		"field_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_active",
		"created_at",
	).
		From("time_slots").
		Where(squirrel.Eq{
			"venue_id":    venueID,
			"day_of_week": dayOfWeek,
			"is_active":   true,
		}).
		OrderBy("start_time ASC")

	if fieldID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"field_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"field_id": *fieldID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlot, 0)
	for rows.Next() {
		var slot domain.TimeSlot
		var createdAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.VenueID,
			&slot.FieldID,
			&slot.DayOfWeek,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetForDay - scan slot: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetForDay - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// CountForDay считает активные слоты сетки на день недели в заданной области
// Используется календарной сводкой, которой не нужны сами строки
func (r *Repository) CountForDay(ctx context.Context, venueID int64, dayOfWeek int, fieldID *int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("time_slots").
		Where(squirrel.Eq{
			"venue_id":    venueID,
			"day_of_week": dayOfWeek,
			"is_active":   true,
		})

	if fieldID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"field_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"field_id": *fieldID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountForDay - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountForDay - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByVenue считает все слоты сетки площадки
// Ноль означает отсутствующую сетку и запускает самовосстановление
func (r *Repository) CountByVenue(ctx context.Context, venueID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("time_slots").
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByVenue - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByVenue - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
