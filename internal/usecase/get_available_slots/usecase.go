package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueService/pkg/ptr"
)

// Сообщения о причинах недоступности (отображаются в UI бронирования)
const (
	reasonVenueNotApproved = "площадка недоступна для бронирования"
	reasonFieldClosed      = "поле временно закрыто"
)

// UseCase use case для получения доступных слотов для бронирования
//
// Политика ошибок различается по шагам:
// резолвер переопределений деградирует до "нет переопределений" (fail open),
// ошибки чтения сетки и бронирований дают пустой список (fail closed) -
// лучше не показать слоты, чем показать неверные
type UseCase struct {
	venueRepo        VenueRepository
	gridRepo         SlotGridRepository
	bookingRepo      BookingRepository
	overrideResolver OverrideResolver
	gridEnsurer      GridEnsurer
	timeProvider     TimeProvider
	lookaheadMinutes int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	gridRepo SlotGridRepository,
	bookingRepo BookingRepository,
	overrideResolver OverrideResolver,
	gridEnsurer GridEnsurer,
	lookaheadMinutes int,
	logger Logger,
) *UseCase {
	if lookaheadMinutes <= 0 {
		lookaheadMinutes = domain.DefaultLookaheadMinutes
	}
	return &UseCase{
		venueRepo:        venueRepo,
		gridRepo:         gridRepo,
		bookingRepo:      bookingRepo,
		overrideResolver: overrideResolver,
		gridEnsurer:      gridEnsurer,
		timeProvider:     &RealTimeProvider{},
		lookaheadMinutes: lookaheadMinutes,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, venue=%d, field=%v, date=%s",
		req.UserID, req.VenueID, req.FieldID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetAvailableSlots: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// Площадка без модерации не отдает слоты
	if !venue.IsApproved() {
		uc.logger.Info("GetAvailableSlots: venue id=%d is not approved (status=%s)", venue.ID, venue.Status)
		return uc.closedResponse(req, reasonVenueNotApproved), nil
	}

	// 4. Проверяем поле, если оно запрошено
	if req.FieldID != nil {
		field, err := uc.venueRepo.GetFieldByID(ctx, *req.FieldID)
		if err != nil {
			if errors.Is(err, venueRepo.ErrFieldNotFound) {
				uc.logger.Warn("GetAvailableSlots: field id=%d not found", *req.FieldID)
				return nil, ErrFieldNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get field id=%d: %v", *req.FieldID, err)
			return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
		}
		if field.VenueID != req.VenueID {
			uc.logger.Warn("GetAvailableSlots: field id=%d belongs to venue=%d, not venue=%d",
				field.ID, field.VenueID, req.VenueID)
			return nil, ErrFieldNotFound
		}

		// Закрытое поле не дает слотов независимо от сетки
		if !field.IsOpen() {
			uc.logger.Info("GetAvailableSlots: field id=%d is closed", field.ID)
			return uc.closedResponse(req, reasonFieldClosed), nil
		}
	}

	// 5. Резолвим переопределения: закрытие обрывает расчет сразу
	effect := uc.overrideResolver.Resolve(ctx, req.VenueID, req.Date, req.FieldID)
	if effect.IsClosed() {
		uc.logger.Info("GetAvailableSlots: venue=%d closed on %s: %s",
			req.VenueID, req.Date.Format(domain.DateFormat), effect.Closed.Reason)
		return uc.closedResponse(req, effect.Closed.Reason), nil
	}

	// 6. Самовосстановление сетки на чтении
	// Ошибка здесь не фатальна: при пустой сетке ответ все равно будет пустым
	uc.ensureGrid(ctx, venue)

	// 7. Получаем слоты сетки на день недели
	dayOfWeek := int(req.Date.Weekday())
	slots, err := uc.gridRepo.GetForDay(ctx, req.VenueID, dayOfWeek, req.FieldID)
	if err != nil {
		// Fail closed: лучше пустой список, чем неверные слоты
		uc.logger.Error("GetAvailableSlots: failed to get slot grid for venue=%d: %v (returning empty)",
			req.VenueID, err)
		return uc.emptyResponse(req, effect), nil
	}

	// 8. Получаем подтвержденные бронирования на дату в той же области
	confirmed := domain.StatusConfirmed
	bookings, err := uc.bookingRepo.GetByVenueWithFilter(ctx, domain.VenueBookingsFilter{
		VenueID:   req.VenueID,
		FieldID:   req.FieldID,
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
		Status:    &confirmed,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for venue=%d: %v (returning empty)",
			req.VenueID, err)
		return uc.emptyResponse(req, effect), nil
	}

	// 9. Убираем слоты, пересекающиеся с занятыми интервалами
	occupied := buildOccupiedIntervals(bookings)
	available := filterByOccupied(slots, occupied)

	// 10. Для сегодняшней даты оставляем только слоты с запасом времени
	if isSameDay(req.Date, now) {
		available = filterByLookahead(available, now, uc.lookaheadMinutes, uc.logger)
	}

	// 11. Сортируем по времени начала
	sort.Slice(available, func(i, j int) bool {
		return available[i].StartTime.IsBefore(available[j].StartTime)
	})

	uc.logger.Info("GetAvailableSlots: venue=%d, field=%v, date=%s: %d of %d slots available",
		req.VenueID, req.FieldID, req.Date.Format(domain.DateFormat), len(available), len(slots))

	return uc.buildResponse(req, effect, available), nil
}

// ensureGrid лениво восстанавливает сетку; ошибки только логируются
func (uc *UseCase) ensureGrid(ctx context.Context, venue *domain.Venue) {
	fields, err := uc.venueRepo.ListFields(ctx, venue.ID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list fields for venue=%d: %v (skipping grid self-heal)",
			venue.ID, err)
		return
	}

	if err := uc.gridEnsurer.EnsureGrid(ctx, venue, fields); err != nil {
		uc.logger.Error("GetAvailableSlots: grid self-heal failed for venue=%d: %v", venue.ID, err)
	}
}

// buildResponse собирает ответ из отфильтрованных слотов сетки
func (uc *UseCase) buildResponse(req *Request, effect domain.OverrideEffect, slots []domain.TimeSlot) *Response {
	out := make([]Slot, len(slots))
	for i, slot := range slots {
		duration := 0
		if start, err := slot.StartTime.Minutes(); err == nil {
			if end, err := slot.EndTime.Minutes(); err == nil {
				duration = end - start
			}
		}
		out[i] = Slot{
			StartTime:       slot.StartTime,
			EndTime:         slot.EndTime,
			DurationMinutes: duration,
		}
	}

	resp := &Response{
		Date:    req.Date,
		VenueID: req.VenueID,
		FieldID: req.FieldID,
		Slots:   out,
	}

	// Особое время работы и цены передаются наверх для отображения
	if effect.CustomHours != nil {
		resp.CustomHours = &HoursInfo{
			OpenTime:  effect.CustomHours.OpenTime,
			CloseTime: effect.CustomHours.CloseTime,
		}
	}
	if effect.CustomPricing != nil {
		resp.CustomPricing = &PricingInfo{
			DayPrice:   effect.CustomPricing.DayPrice,
			NightPrice: effect.CustomPricing.NightPrice,
		}
	}

	return resp
}

// emptyResponse пустой ответ при сбое чтения (fail closed)
func (uc *UseCase) emptyResponse(req *Request, effect domain.OverrideEffect) *Response {
	return uc.buildResponse(req, effect, nil)
}

// closedResponse пустой ответ с причиной закрытия
func (uc *UseCase) closedResponse(req *Request, reason string) *Response {
	return &Response{
		Date:         req.Date,
		VenueID:      req.VenueID,
		FieldID:      req.FieldID,
		Slots:        []Slot{},
		Closed:       true,
		ClosedReason: reason,
	}
}
