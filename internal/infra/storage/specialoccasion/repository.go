package specialoccasion

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// occasionColumns колонки таблицы special_occasions в порядке сканирования
var occasionColumns = []string{
	"id",
	"venue_id",
	"field_id",
	"title",
	"start_date",
	"end_date",
	"override_type",
	"reason",
	"open_time",
	"close_time",
	"day_price",
	"night_price",
	"is_recurring",
	"recurrence_pattern",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с переопределениями доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория переопределений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое переопределение
func (r *Repository) Create(ctx context.Context, occasion *domain.SpecialOccasion) (*domain.SpecialOccasion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("special_occasions").
		Columns(
			"venue_id",
			"field_id",
			"title",
			"start_date",
			"end_date",
			"override_type",
			"reason",
			"open_time",
			"close_time",
			"day_price",
			"night_price",
			"is_recurring",
			"recurrence_pattern",
		).
		Values(
			occasion.VenueID,
			occasion.FieldID,
			occasion.Title,
			occasion.StartDate,
			occasion.EndDate,
			occasion.Type,
			occasion.Reason,
			occasion.OpenTime,
			occasion.CloseTime,
			occasion.DayPrice,
			occasion.NightPrice,
			occasion.IsRecurring,
			occasion.RecurrencePattern,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&occasion.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	occasion.CreatedAt = createdAt.Time
	occasion.UpdatedAt = updatedAt.Time

	return occasion, nil
}

// GetByID получает переопределение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SpecialOccasion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(occasionColumns...).
		From("special_occasions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	occasion, err := scanOccasionRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOccasionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan occasion: %v", ErrScanRow, err)
	}

	return occasion, nil
}

// ListByVenue получает все переопределения площадки
func (r *Repository) ListByVenue(ctx context.Context, venueID int64) ([]*domain.SpecialOccasion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(occasionColumns...).
		From("special_occasions").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("start_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanOccasions(rows)
}

// GetForDate получает переопределения, действующие на дату, в заданной области
//
// Сопоставление буквальное: дата должна попадать в [start_date, end_date],
// recurrence_pattern при поиске не разворачивается
//
// Если fieldID задан, выбираются записи этого поля И записи без поля
// (площадка целиком), причем записи поля идут первыми - резолвер предпочитает
// их при совпадении типа. Если fieldID nil, выбираются только записи без поля
func (r *Repository) GetForDate(ctx context.Context, venueID int64, date time.Time, fieldID *int64) ([]*domain.SpecialOccasion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(occasionColumns...).
		From("special_occasions").
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date})

	if fieldID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"field_id": nil})
	} else {
		selectBuilder = selectBuilder.
			Where(squirrel.Or{
				squirrel.Eq{"field_id": *fieldID},
				squirrel.Eq{"field_id": nil},
			}).
			OrderBy("field_id ASC NULLS LAST")
	}

	selectBuilder = selectBuilder.OrderBy("id ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanOccasions(rows)
}

// Delete удаляет переопределение
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("special_occasions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOccasionNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanOccasionRow сканирует одну строку переопределения
// Опциональные payload-колонки читаются через sql.Null* и конвертируются
// в указатели доменной модели
func scanOccasionRow(row rowScanner) (*domain.SpecialOccasion, error) {
	var occasion domain.SpecialOccasion
	var reason, openTime, closeTime, recurrence sql.NullString
	var dayPrice, nightPrice sql.NullFloat64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&occasion.ID,
		&occasion.VenueID,
		&occasion.FieldID,
		&occasion.Title,
		&occasion.StartDate,
		&occasion.EndDate,
		&occasion.Type,
		&reason,
		&openTime,
		&closeTime,
		&dayPrice,
		&nightPrice,
		&occasion.IsRecurring,
		&recurrence,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reason.Valid {
		occasion.Reason = &reason.String
	}
	if openTime.Valid {
		t, err := types.NewTimeStringFromString(openTime.String)
		if err != nil {
			return nil, err
		}
		occasion.OpenTime = &t
	}
	if closeTime.Valid {
		t, err := types.NewTimeStringFromString(closeTime.String)
		if err != nil {
			return nil, err
		}
		occasion.CloseTime = &t
	}
	if dayPrice.Valid {
		occasion.DayPrice = &dayPrice.Float64
	}
	if nightPrice.Valid {
		occasion.NightPrice = &nightPrice.Float64
	}
	if recurrence.Valid {
		occasion.RecurrencePattern = &recurrence.String
	}

	occasion.CreatedAt = createdAt.Time
	occasion.UpdatedAt = updatedAt.Time

	return &occasion, nil
}

// scanOccasions сканирует результаты запроса в слайс переопределений
func scanOccasions(rows *sql.Rows) ([]*domain.SpecialOccasion, error) {
	occasions := make([]*domain.SpecialOccasion, 0)

	for rows.Next() {
		occasion, err := scanOccasionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanOccasions - scan row: %v", ErrScanRow, err)
		}
		occasions = append(occasions, occasion)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOccasions - rows error: %v", ErrScanRow, err)
	}

	return occasions, nil
}
