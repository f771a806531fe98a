package update_venue_schedule

import (
	updateSchedule "github.com/m04kA/SMC-VenueService/internal/usecase/update_schedule"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	OpeningTime   string  `json:"openingTime"` // HH:MM
	ClosingTime   string  `json:"closingTime"` // HH:MM
	DaysAvailable []int64 `json:"daysAvailable"`
}

// UpdateScheduleResponse HTTP response model
type UpdateScheduleResponse struct {
	VenueID       int64   `json:"venueId"`
	OpeningTime   string  `json:"openingTime"`
	ClosingTime   string  `json:"closingTime"`
	DaysAvailable []int64 `json:"daysAvailable"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateScheduleRequest) ToUseCaseRequest(userID, venueID int64) (*updateSchedule.Request, error) {
	opening, err := types.NewTimeStringFromString(r.OpeningTime)
	if err != nil {
		return nil, err
	}

	closing, err := types.NewTimeStringFromString(r.ClosingTime)
	if err != nil {
		return nil, err
	}

	return &updateSchedule.Request{
		UserID:        userID,
		VenueID:       venueID,
		OpeningTime:   opening,
		ClosingTime:   closing,
		DaysAvailable: r.DaysAvailable,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSchedule.Response) *UpdateScheduleResponse {
	return &UpdateScheduleResponse{
		VenueID:       resp.VenueID,
		OpeningTime:   resp.OpeningTime.String(),
		ClosingTime:   resp.ClosingTime.String(),
		DaysAvailable: resp.DaysAvailable,
	}
}
