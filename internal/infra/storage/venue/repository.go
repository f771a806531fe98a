package venue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// Repository репозиторий для работы с площадками и их полями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"name",
		"opening_time",
		"closing_time",
		"days_available",
		"status",
		"created_at",
		"updated_at",
	).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	venue, err := scanVenueRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan venue: %v", ErrScanRow, err)
	}

	return venue, nil
}

// ListAll получает все площадки
// Используется проходом самовосстановления сетки слотов
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"name",
		"opening_time",
		"closing_time",
		"days_available",
		"status",
		"created_at",
		"updated_at",
	).
		From("venues").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		venue, err := scanVenueRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan venue: %v", ErrScanRow, err)
		}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return venues, nil
}

// UpdateSchedule обновляет расписание площадки (время работы и дни недели)
// Вызывающая сторона обязана после этого перегенерировать сетку слотов
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, opening, closing types.TimeString, days []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("venues").
		Set("opening_time", opening).
		Set("closing_time", closing).
		Set("days_available", pq.Array(days)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVenueNotFound
	}

	return nil
}

// ListFields получает все поля площадки
func (r *Repository) ListFields(ctx context.Context, venueID int64) ([]domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"name",
		"status",
		"created_at",
		"updated_at",
	).
		From("fields").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListFields - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFields - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	fields := make([]domain.Field, 0)
	for rows.Next() {
		var field domain.Field
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&field.ID,
			&field.VenueID,
			&field.Name,
			&field.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListFields - scan field: %v", ErrScanRow, err)
		}

		field.CreatedAt = createdAt.Time
		field.UpdatedAt = updatedAt.Time
		fields = append(fields, field)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFields - rows error: %v", ErrScanRow, err)
	}

	return fields, nil
}

// GetFieldByID получает поле по ID
func (r *Repository) GetFieldByID(ctx context.Context, fieldID int64) (*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"name",
		"status",
		"created_at",
		"updated_at",
	).
		From("fields").
		Where(squirrel.Eq{"id": fieldID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFieldByID - build select query: %v", ErrBuildQuery, err)
	}

	var field domain.Field
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&field.ID,
		&field.VenueID,
		&field.Name,
		&field.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFieldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetFieldByID - scan field: %v", ErrScanRow, err)
	}

	field.CreatedAt = createdAt.Time
	field.UpdatedAt = updatedAt.Time

	return &field, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanVenueRow сканирует строку площадки, разворачивая массив дней недели
func scanVenueRow(row rowScanner) (*domain.Venue, error) {
	var venue domain.Venue
	var createdAt, updatedAt sql.NullTime
	var days pq.Int64Array

	err := row.Scan(
		&venue.ID,
		&venue.OwnerID,
		&venue.Name,
		&venue.OpeningTime,
		&venue.ClosingTime,
		&days,
		&venue.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	venue.DaysAvailable = []int64(days)
	venue.CreatedAt = createdAt.Time
	venue.UpdatedAt = updatedAt.Time

	return &venue, nil
}
