package update_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/integrations/notificationservice"
	venueRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/venue"
)

// UseCase use case для обновления расписания площадки владельцем
//
// Расписание и сетка слотов обновляются последовательно: сначала
// сохраняется новое расписание, затем пересобирается сетка. Неудачная
// пересборка не откатывает расписание, а возвращается отдельной
// ошибкой - сетку можно восстановить через эндпоинт ремонта
type UseCase struct {
	venueRepo          VenueRepository
	gridGenerator      SlotGridGenerator
	notificationClient NotificationClient
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	gridGenerator SlotGridGenerator,
	notificationClient NotificationClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:          venueRepo,
		gridGenerator:      gridGenerator,
		notificationClient: notificationClient,
		logger:             logger,
	}
}

// Execute выполняет use case обновления расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSchedule: user=%d, venue=%d, hours=%s-%s, days=%v",
		req.UserID, req.VenueID, req.OpeningTime, req.ClosingTime, req.DaysAvailable)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку и проверяем владельца
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("UpdateSchedule: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("UpdateSchedule: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if venue.OwnerID != req.UserID {
		uc.logger.Warn("UpdateSchedule: user id=%d is not the owner of venue id=%d", req.UserID, req.VenueID)
		return nil, ErrPermissionDenied
	}

	// 3. Сохраняем новое расписание
	if err := uc.venueRepo.UpdateSchedule(ctx, req.VenueID, req.OpeningTime, req.ClosingTime, req.DaysAvailable); err != nil {
		uc.logger.Error("UpdateSchedule: failed to update venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
	}

	venue.OpeningTime = req.OpeningTime
	venue.ClosingTime = req.ClosingTime
	venue.DaysAvailable = req.DaysAvailable

	// 4. Пересобираем сетку слотов под новое расписание
	fields, err := uc.venueRepo.ListFields(ctx, req.VenueID)
	if err != nil {
		uc.logger.Error("UpdateSchedule: failed to list fields for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: schedule saved, but fields lookup failed: %v", ErrGridRegenerationFailed, err)
	}

	if err := uc.gridGenerator.Generate(ctx, venue, fields); err != nil {
		uc.logger.Error("UpdateSchedule: failed to regenerate slot grid for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: %v", ErrGridRegenerationFailed, err)
	}

	// 5. Уведомляем пользователей с активными бронированиями
	// Недоступность сервиса уведомлений не ломает операцию
	event := &notificationservice.ScheduleChangedEvent{
		VenueID:       req.VenueID,
		OpeningTime:   req.OpeningTime.String(),
		ClosingTime:   req.ClosingTime.String(),
		DaysAvailable: req.DaysAvailable,
	}
	if err := uc.notificationClient.NotifyScheduleChangedWithGracefulDegradation(ctx, event); err != nil {
		uc.logger.Warn("UpdateSchedule: schedule change notification degraded for venue id=%d: %v", req.VenueID, err)
	}

	uc.logger.Info("UpdateSchedule: venue id=%d schedule updated, slot grid regenerated", req.VenueID)

	return &Response{
		VenueID:       req.VenueID,
		OpeningTime:   req.OpeningTime,
		ClosingTime:   req.ClosingTime,
		DaysAvailable: req.DaysAvailable,
	}, nil
}
