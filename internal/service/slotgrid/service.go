package slotgrid

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Service генератор канонической сетки слотов
//
// Сетка материализуется заново при создании площадки и при любом изменении
// времени работы или дней недели. Перегенерация полная: старые строки площадки
// удаляются целиком, слитие не выполняется
type Service struct {
	gridRepo     GridRepository
	venueRepo    VenueRepository
	txManager    TransactionManager
	slotDuration int // минуты
	logger       Logger
}

// NewService создает новый экземпляр генератора сетки
func NewService(
	gridRepo GridRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	slotDurationMinutes int,
	logger Logger,
) *Service {
	if slotDurationMinutes <= 0 {
		slotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	return &Service{
		gridRepo:     gridRepo,
		venueRepo:    venueRepo,
		txManager:    txManager,
		slotDuration: slotDurationMinutes,
		logger:       logger,
	}
}

// Generate материализует сетку слотов площадки: по одной строке уровня
// площадки и по одной строке на каждое поле для каждого активного дня недели
// и каждого шага длительностью slotDuration в интервале [открытие, закрытие)
//
// Удаление старой сетки и вставка новой идут в одной сериализуемой транзакции;
// ошибка вставки любого батча - жесткая ошибка генерации
func (s *Service) Generate(ctx context.Context, venue *domain.Venue, fields []domain.Field) error {
	slots, err := s.buildGrid(venue, fields)
	if err != nil {
		return err
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.gridRepo.DeleteByVenue(txCtx, venue.ID); err != nil {
			return fmt.Errorf("delete old grid: %w", err)
		}
		if len(slots) == 0 {
			return nil
		}
		return s.gridRepo.BulkInsert(txCtx, slots)
	})
	if err != nil {
		s.logger.Error("Generate: venue=%d grid generation failed: %v", venue.ID, err)
		return fmt.Errorf("%w: venue=%d: %v", ErrGenerationFailed, venue.ID, err)
	}

	s.logger.Info("Generate: venue=%d materialized %d slots (%d days, %d fields, step=%dm)",
		venue.ID, len(slots), len(venue.DaysAvailable), len(fields), s.slotDuration)
	return nil
}

// EnsureGrid лениво генерирует сетку, если у площадки нет ни одной строки
// Самовосстановление на чтении: закрывает площадки, созданные до появления
// генератора, и площадки, у которых генерация когда-то упала
func (s *Service) EnsureGrid(ctx context.Context, venue *domain.Venue, fields []domain.Field) error {
	count, err := s.gridRepo.CountByVenue(ctx, venue.ID)
	if err != nil {
		return fmt.Errorf("%w: EnsureGrid - count grid rows: %v", ErrInternal, err)
	}
	if count > 0 {
		return nil
	}

	s.logger.Warn("EnsureGrid: venue=%d has no slot grid, generating on read", venue.ID)
	return s.Generate(ctx, venue, fields)
}

// RepairAll обходит все площадки и генерирует сетку каждой, у которой нет
// ни одной строки. Возвращает количество восстановленных площадок
// Ошибка одной площадки не прерывает обход - логируется и пропускается
func (s *Service) RepairAll(ctx context.Context) (int, error) {
	venues, err := s.venueRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: RepairAll - list venues: %v", ErrInternal, err)
	}

	repaired := 0
	for _, venue := range venues {
		count, err := s.gridRepo.CountByVenue(ctx, venue.ID)
		if err != nil {
			s.logger.Error("RepairAll: venue=%d count failed: %v (skipping)", venue.ID, err)
			continue
		}
		if count > 0 {
			continue
		}

		fields, err := s.venueRepo.ListFields(ctx, venue.ID)
		if err != nil {
			s.logger.Error("RepairAll: venue=%d list fields failed: %v (skipping)", venue.ID, err)
			continue
		}

		if err := s.Generate(ctx, venue, fields); err != nil {
			s.logger.Error("RepairAll: venue=%d generation failed: %v (skipping)", venue.ID, err)
			continue
		}
		repaired++
	}

	s.logger.Info("RepairAll: checked %d venues, repaired %d", len(venues), repaired)
	return repaired, nil
}

// buildGrid собирает строки сетки по расписанию площадки
func (s *Service) buildGrid(venue *domain.Venue, fields []domain.Field) ([]domain.TimeSlot, error) {
	openMinutes, err := venue.OpeningTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: venue=%d opening time %q: %v", ErrInvalidSchedule, venue.ID, venue.OpeningTime, err)
	}
	closeMinutes, err := venue.ClosingTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: venue=%d closing time %q: %v", ErrInvalidSchedule, venue.ID, venue.ClosingTime, err)
	}
	if closeMinutes <= openMinutes {
		return nil, fmt.Errorf("%w: venue=%d closing time must be after opening time", ErrInvalidSchedule, venue.ID)
	}

	days := dedupeDays(venue.DaysAvailable)
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: venue=%d has no active weekdays", ErrInvalidSchedule, venue.ID)
	}

	slots := make([]domain.TimeSlot, 0)
	for _, day := range days {
		if day < 0 || day > 6 {
			return nil, fmt.Errorf("%w: venue=%d weekday %d out of range", ErrInvalidSchedule, venue.ID, day)
		}

		for start := openMinutes; start+s.slotDuration <= closeMinutes; start += s.slotDuration {
			startTime, err := venue.OpeningTime.AddMinutes(start - openMinutes)
			if err != nil {
				return nil, fmt.Errorf("%w: venue=%d: %v", ErrInvalidSchedule, venue.ID, err)
			}
			endTime, err := startTime.AddMinutes(s.slotDuration)
			if err != nil {
				return nil, fmt.Errorf("%w: venue=%d: %v", ErrInvalidSchedule, venue.ID, err)
			}

			// Строка уровня площадки (без поля)
			slots = append(slots, domain.TimeSlot{
				VenueID:   venue.ID,
				DayOfWeek: int(day),
				StartTime: startTime,
				EndTime:   endTime,
				IsActive:  true,
			})

			// По строке на каждое поле
			for _, field := range fields {
				fieldID := field.ID
				slots = append(slots, domain.TimeSlot{
					VenueID:   venue.ID,
					FieldID:   &fieldID,
					DayOfWeek: int(day),
					StartTime: startTime,
					EndTime:   endTime,
					IsActive:  true,
				})
			}
		}
	}

	return slots, nil
}

// dedupeDays убирает дубликаты дней недели, сохраняя порядок
func dedupeDays(days []int64) []int64 {
	seen := make(map[int64]struct{}, len(days))
	out := make([]int64, 0, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
