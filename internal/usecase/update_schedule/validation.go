package update_schedule

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	openMinutes, err := req.OpeningTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: openingTime: %v", ErrInvalidInput, err)
	}

	closeMinutes, err := req.ClosingTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: closingTime: %v", ErrInvalidInput, err)
	}

	if closeMinutes <= openMinutes {
		return fmt.Errorf("%w: closingTime must be after openingTime", ErrInvalidInput)
	}

	if len(req.DaysAvailable) == 0 {
		return fmt.Errorf("%w: daysAvailable must not be empty", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.DaysAvailable))
	for _, day := range req.DaysAvailable {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: day of week must be in [0, 6], got %d", ErrInvalidInput, day)
		}
		if _, ok := seen[day]; ok {
			return fmt.Errorf("%w: duplicate day of week %d", ErrInvalidInput, day)
		}
		seen[day] = struct{}{}
	}

	return nil
}
