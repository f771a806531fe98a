package get_availability_summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueService/pkg/ptr"
)

// UseCase use case календарной сводки доступности за диапазон дат
//
// Сводка грубее точного расчета слотов: фильтр запаса времени для
// сегодняшней даты здесь намеренно НЕ применяется - это эвристика для
// отображения календаря, а не источник истины для бронирования
type UseCase struct {
	venueRepo        VenueRepository
	gridRepo         SlotGridRepository
	bookingRepo      BookingRepository
	overrideResolver OverrideResolver
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	gridRepo SlotGridRepository,
	bookingRepo BookingRepository,
	overrideResolver OverrideResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:        venueRepo,
		gridRepo:         gridRepo,
		bookingRepo:      bookingRepo,
		overrideResolver: overrideResolver,
		logger:           logger,
	}
}

// Execute выполняет use case построения сводки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailabilitySummary: user=%d, venue=%d, field=%v, range=%s..%s",
		req.UserID, req.VenueID, req.FieldID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailabilitySummary: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetAvailabilitySummary: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetAvailabilitySummary: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Проверяем поле, если оно запрошено
	// Закрытое поле дает нулевую сетку, то есть unavailable на каждый день
	fieldClosed := false
	if req.FieldID != nil {
		field, err := uc.venueRepo.GetFieldByID(ctx, *req.FieldID)
		if err != nil {
			if errors.Is(err, venueRepo.ErrFieldNotFound) {
				uc.logger.Warn("GetAvailabilitySummary: field id=%d not found", *req.FieldID)
				return nil, ErrFieldNotFound
			}
			uc.logger.Error("GetAvailabilitySummary: failed to get field id=%d: %v", *req.FieldID, err)
			return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
		}
		if field.VenueID != req.VenueID {
			return nil, ErrFieldNotFound
		}
		fieldClosed = !field.IsOpen()
	}

	allClosed := fieldClosed || !venue.IsApproved()

	// 4. Одним запросом получаем подтвержденные брони на весь диапазон
	// Ошибка чтения - fail closed: каждый день помечается unavailable
	occupiedByDate, bookingsOK := uc.loadOccupied(ctx, req)

	// 5. Кэш общего числа слотов по дням недели: в диапазоне дни повторяются
	totals := make(map[int]int)

	days := make(map[string]domain.DayStatus)
	for day := req.StartDate; !day.After(req.EndDate); day = day.AddDate(0, 0, 1) {
		dateKey := day.Format(domain.DateFormat)

		if allClosed || !bookingsOK {
			days[dateKey] = domain.DayUnavailable
			continue
		}

		// Закрытие переопределением делает день недоступным
		effect := uc.overrideResolver.Resolve(ctx, req.VenueID, day, req.FieldID)
		if effect.IsClosed() {
			days[dateKey] = domain.DayUnavailable
			continue
		}

		weekday := int(day.Weekday())
		total, ok := totals[weekday]
		if !ok {
			total, err = uc.gridRepo.CountForDay(ctx, req.VenueID, weekday, req.FieldID)
			if err != nil {
				uc.logger.Error("GetAvailabilitySummary: failed to count slots for venue=%d weekday=%d: %v (marking unavailable)",
					req.VenueID, weekday, err)
				total = 0
			}
			totals[weekday] = total
		}

		occupied := len(occupiedByDate[dateKey])
		days[dateKey] = domain.ClassifyDay(total, total-occupied)
	}

	uc.logger.Info("GetAvailabilitySummary: venue=%d, field=%v: built summary for %d days",
		req.VenueID, req.FieldID, len(days))

	return &Response{
		VenueID: req.VenueID,
		FieldID: req.FieldID,
		Days:    days,
	}, nil
}

// loadOccupied строит по датам множества занятых интервалов,
// дедуплицированные по идентичности интервала
func (uc *UseCase) loadOccupied(ctx context.Context, req *Request) (map[string]map[string]struct{}, bool) {
	confirmed := domain.StatusConfirmed
	bookings, err := uc.bookingRepo.GetByVenueWithFilter(ctx, domain.VenueBookingsFilter{
		VenueID:   req.VenueID,
		FieldID:   req.FieldID,
		StartDate: ptr.Ptr(req.StartDate),
		EndDate:   ptr.Ptr(req.EndDate),
		Status:    &confirmed,
	})
	if err != nil {
		uc.logger.Error("GetAvailabilitySummary: failed to get bookings for venue=%d: %v (failing closed)",
			req.VenueID, err)
		return nil, false
	}

	occupiedByDate := make(map[string]map[string]struct{})
	for _, booking := range bookings {
		if !booking.OccupiesSlots() {
			continue
		}

		dateKey := booking.BookingDate.Format(domain.DateFormat)
		intervals, ok := occupiedByDate[dateKey]
		if !ok {
			intervals = make(map[string]struct{})
			occupiedByDate[dateKey] = intervals
		}

		for _, interval := range booking.OccupiedIntervals() {
			intervals[interval.Key()] = struct{}{}
		}
	}

	return occupiedByDate, true
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if req.FieldID != nil && *req.FieldID <= 0 {
		return fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	rangeDays := int(req.EndDate.Sub(req.StartDate)/(24*time.Hour)) + 1
	if rangeDays > domain.MaxSummaryRangeDays {
		return fmt.Errorf("%w: at most %d days", ErrRangeTooLarge, domain.MaxSummaryRangeDays)
	}

	return nil
}
