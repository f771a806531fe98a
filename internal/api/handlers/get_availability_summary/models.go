package get_availability_summary

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	getAvailabilitySummary "github.com/m04kA/SMC-VenueService/internal/usecase/get_availability_summary"
)

// AvailabilitySummaryResponse HTTP response model
type AvailabilitySummaryResponse struct {
	VenueID int64  `json:"venueId"`
	FieldID *int64 `json:"fieldId,omitempty"`
	// Days отображение даты (YYYY-MM-DD) в статус: available | limited | unavailable
	Days map[string]string `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailabilitySummary.Response) *AvailabilitySummaryResponse {
	days := make(map[string]string, len(resp.Days))
	for date, status := range resp.Days {
		days[date] = string(status)
	}

	return &AvailabilitySummaryResponse{
		VenueID: resp.VenueID,
		FieldID: resp.FieldID,
		Days:    days,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(venueID int64, fieldID *int64, startDateStr, endDateStr string) (*getAvailabilitySummary.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailabilitySummary.Request{
		VenueID:   venueID,
		FieldID:   fieldID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}
