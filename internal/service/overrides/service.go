package overrides

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	occasionRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/specialoccasion"
	venueRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueService/internal/service/overrides/models"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// Service сервис переопределений доступности: резолвер для движка расчета
// слотов и CRUD для админских экранов
type Service struct {
	occasionRepo OccasionRepository
	venueRepo    VenueRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса переопределений
func NewService(
	occasionRepo OccasionRepository,
	venueRepo VenueRepository,
	logger Logger,
) *Service {
	return &Service{
		occasionRepo: occasionRepo,
		venueRepo:    venueRepo,
		logger:       logger,
	}
}

// Resolve определяет вердикт переопределений для площадки на дату
//
// Приоритеты:
// - closed побеждает безусловно: закрытие нельзя перекрыть другими типами
// - запись, привязанная к запрошенному полю, предпочтительнее записи
//   уровня площадки (репозиторий отдает записи поля первыми)
//
// Ошибка чтения НЕ блокирует поток бронирования: вердикт деградирует до
// "нет переопределений" (fail open), ошибка только логируется
func (s *Service) Resolve(ctx context.Context, venueID int64, date time.Time, fieldID *int64) domain.OverrideEffect {
	occasions, err := s.occasionRepo.GetForDate(ctx, venueID, date, fieldID)
	if err != nil {
		s.logger.Error("Resolve: failed to load special occasions for venue=%d date=%s: %v (degrading to no override)",
			venueID, date.Format(domain.DateFormat), err)
		return domain.NoOverride()
	}

	if len(occasions) == 0 {
		return domain.NoOverride()
	}

	// Закрытие побеждает любые другие типы на ту же дату
	for _, occasion := range occasions {
		if occasion.Type == domain.OverrideClosed {
			s.logger.Info("Resolve: venue=%d date=%s closed by occasion id=%d",
				venueID, date.Format(domain.DateFormat), occasion.ID)
			return occasion.Effect()
		}
	}

	// Иначе первая подходящая запись (записи поля идут первыми)
	return occasions[0].Effect()
}

// Create создает переопределение доступности
// Доступно только владельцу площадки
func (s *Service) Create(ctx context.Context, req *models.CreateOccasionRequest) (*models.OccasionResponse, error) {
	s.logger.Info("Create: user=%d venue=%d type=%s period=%s..%s",
		req.UserID, req.VenueID, req.OverrideType, req.StartDate, req.EndDate)

	occasion, err := s.buildOccasion(req)
	if err != nil {
		s.logger.Warn("Create: validation failed for venue=%d: %v", req.VenueID, err)
		return nil, err
	}

	venue, err := s.getVenueForOwner(ctx, req.VenueID, req.UserID)
	if err != nil {
		return nil, err
	}

	// Привязка к полю допустима только для поля этой площадки
	if occasion.FieldID != nil {
		field, err := s.venueRepo.GetFieldByID(ctx, *occasion.FieldID)
		if err != nil {
			if errors.Is(err, venueRepo.ErrFieldNotFound) {
				s.logger.Warn("Create: field id=%d not found", *occasion.FieldID)
				return nil, ErrFieldNotFound
			}
			s.logger.Error("Create: failed to get field id=%d: %v", *occasion.FieldID, err)
			return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
		}
		if field.VenueID != venue.ID {
			s.logger.Warn("Create: field id=%d belongs to venue=%d, not venue=%d",
				field.ID, field.VenueID, venue.ID)
			return nil, ErrFieldNotFound
		}
	}

	created, err := s.occasionRepo.Create(ctx, occasion)
	if err != nil {
		s.logger.Error("Create: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created occasion id=%d for venue=%d", created.ID, created.VenueID)
	return models.FromDomainOccasion(created), nil
}

// List получает все переопределения площадки
func (s *Service) List(ctx context.Context, venueID int64) (*models.OccasionListResponse, error) {
	if _, err := s.getVenue(ctx, venueID); err != nil {
		return nil, err
	}

	occasions, err := s.occasionRepo.ListByVenue(ctx, venueID)
	if err != nil {
		s.logger.Error("List: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOccasionList(occasions), nil
}

// Delete удаляет переопределение
// Доступно только владельцу площадки
func (s *Service) Delete(ctx context.Context, req *models.DeleteOccasionRequest) error {
	s.logger.Info("Delete: user=%d venue=%d occasion=%d", req.UserID, req.VenueID, req.OccasionID)

	if _, err := s.getVenueForOwner(ctx, req.VenueID, req.UserID); err != nil {
		return err
	}

	occasion, err := s.occasionRepo.GetByID(ctx, req.OccasionID)
	if err != nil {
		if errors.Is(err, occasionRepo.ErrOccasionNotFound) {
			return ErrOccasionNotFound
		}
		s.logger.Error("Delete: failed to get occasion id=%d: %v", req.OccasionID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if occasion.VenueID != req.VenueID {
		s.logger.Warn("Delete: occasion id=%d belongs to venue=%d, not venue=%d",
			occasion.ID, occasion.VenueID, req.VenueID)
		return ErrOccasionNotFound
	}

	if err := s.occasionRepo.Delete(ctx, req.OccasionID); err != nil {
		if errors.Is(err, occasionRepo.ErrOccasionNotFound) {
			return ErrOccasionNotFound
		}
		s.logger.Error("Delete: repository error for occasion id=%d: %v", req.OccasionID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted occasion id=%d for venue=%d", req.OccasionID, req.VenueID)
	return nil
}

// buildOccasion валидирует запрос и собирает доменную модель
// Payload проверяется по типу переопределения: у каждого типа свои
// обязательные поля
func (s *Service) buildOccasion(req *models.CreateOccasionRequest) (*domain.SpecialOccasion, error) {
	if req.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venueId must be positive", ErrInvalidInput)
	}
	if req.Title == "" || len(req.Title) > domain.MaxTitleLength {
		return nil, fmt.Errorf("%w: title is required and must be at most %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate", ErrInvalidInput)
	}
	endDate, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endDate", ErrInvalidInput)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	occasion := &domain.SpecialOccasion{
		VenueID:     req.VenueID,
		FieldID:     req.FieldID,
		Title:       req.Title,
		StartDate:   startDate,
		EndDate:     endDate,
		Type:        domain.OverrideType(req.OverrideType),
		Reason:      req.Reason,
		DayPrice:    req.DayPrice,
		NightPrice:  req.NightPrice,
		IsRecurring: req.IsRecurring,
	}

	switch occasion.Type {
	case domain.OverrideClosed:
		// Достаточно заголовка; причина опциональна

	case domain.OverrideCustomHours:
		if req.OpenTime == nil || req.CloseTime == nil {
			return nil, fmt.Errorf("%w: custom_hours requires openTime and closeTime", ErrInvalidInput)
		}
		openTime, err := types.NewTimeStringFromString(*req.OpenTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid openTime", ErrInvalidInput)
		}
		closeTime, err := types.NewTimeStringFromString(*req.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid closeTime", ErrInvalidInput)
		}
		if !openTime.IsBefore(closeTime) {
			return nil, fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
		}
		occasion.OpenTime = &openTime
		occasion.CloseTime = &closeTime

	case domain.OverrideCustomPricing:
		if req.DayPrice == nil || req.NightPrice == nil {
			return nil, fmt.Errorf("%w: custom_pricing requires dayPrice and nightPrice", ErrInvalidInput)
		}
		if *req.DayPrice < 0 || *req.NightPrice < 0 {
			return nil, fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
		}

	default:
		return nil, fmt.Errorf("%w: unknown override type %q", ErrInvalidInput, req.OverrideType)
	}

	if req.IsRecurring {
		if req.RecurrencePattern == nil {
			return nil, fmt.Errorf("%w: recurring occasion requires recurrencePattern", ErrInvalidInput)
		}
		switch *req.RecurrencePattern {
		case "weekly", "monthly", "yearly":
			occasion.RecurrencePattern = req.RecurrencePattern
		default:
			return nil, fmt.Errorf("%w: unknown recurrence pattern %q", ErrInvalidInput, *req.RecurrencePattern)
		}
	}

	return occasion, nil
}

func (s *Service) getVenue(ctx context.Context, venueID int64) (*domain.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("failed to get venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}
	return venue, nil
}

func (s *Service) getVenueForOwner(ctx context.Context, venueID, userID int64) (*domain.Venue, error) {
	venue, err := s.getVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if venue.OwnerID != userID {
		s.logger.Warn("access denied for user=%d to venue=%d", userID, venueID)
		return nil, ErrAccessDenied
	}
	return venue, nil
}
