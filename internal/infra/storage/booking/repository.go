package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения бронирований
// Запись бронирований выполняет внешний booking-сервис; движку доступности
// нужны только подтвержденные брони и их под-интервалы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByVenueWithFilter получает бронирования площадки с фильтрацией
// по области (поле или уровень площадки), периоду и статусу
// Под-интервалы (booking_slots) подгружаются одним дополнительным запросом
//
// Примеры использования:
//
// 1. Подтвержденные брони поля на дату:
//    status := domain.StatusConfirmed
//    filter := domain.VenueBookingsFilter{VenueID: 1, FieldID: &fieldID, StartDate: &date, EndDate: &date, Status: &status}
//
// 2. Подтвержденные брони уровня площадки за период (для календарной сводки):
//    filter := domain.VenueBookingsFilter{VenueID: 1, StartDate: &from, EndDate: &to, Status: &status}
func (r *Repository) GetByVenueWithFilter(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"venue_id",
		"field_id",
		"user_id",
		"booking_date",
		"start_time",
		"end_time",
		"status",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"venue_id": filter.VenueID})

	// Область поиска совпадает с областью сетки слотов: nil = уровень площадки
	if filter.FieldID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"field_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"field_id": *filter.FieldID})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	selectBuilder = selectBuilder.OrderBy("booking_date ASC, start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachSlots(ctx, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// attachSlots подгружает под-интервалы для списка бронирований
func (r *Repository) attachSlots(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	byID := make(map[int64]*domain.Booking, len(bookings))
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"start_time",
		"end_time",
	).
		From("booking_slots").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("booking_id ASC, start_time ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot domain.BookingSlot

		err := rows.Scan(
			&slot.ID,
			&slot.BookingID,
			&slot.StartTime,
			&slot.EndTime,
		)
		if err != nil {
			return fmt.Errorf("%w: attachSlots - scan booking slot: %v", ErrScanRow, err)
		}

		if parent, ok := byID[slot.BookingID]; ok {
			parent.Slots = append(parent.Slots, slot)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachSlots - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.VenueID,
			&booking.FieldID,
			&booking.UserID,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
