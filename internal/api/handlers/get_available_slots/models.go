package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-VenueService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date          string         `json:"date"`
	VenueID       int64          `json:"venueId"`
	FieldID       *int64         `json:"fieldId,omitempty"`
	Closed        bool           `json:"closed"`
	ClosedReason  string         `json:"closedReason,omitempty"`
	CustomHours   *CustomHours   `json:"customHours,omitempty"`
	CustomPricing *CustomPricing `json:"customPricing,omitempty"`
	Slots         []AvailableSlot `json:"slots"`
}

// AvailableSlot модель доступного временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// CustomHours особое время работы на дату
type CustomHours struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// CustomPricing особые цены на дату
type CustomPricing struct {
	DayPrice   float64 `json:"dayPrice"`
	NightPrice float64 `json:"nightPrice"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			DurationMinutes: slot.DurationMinutes,
		}
	}

	out := &AvailableSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		VenueID:      resp.VenueID,
		FieldID:      resp.FieldID,
		Closed:       resp.Closed,
		ClosedReason: resp.ClosedReason,
		Slots:        slots,
	}

	if resp.CustomHours != nil {
		out.CustomHours = &CustomHours{
			OpenTime:  resp.CustomHours.OpenTime.String(),
			CloseTime: resp.CustomHours.CloseTime.String(),
		}
	}
	if resp.CustomPricing != nil {
		out.CustomPricing = &CustomPricing{
			DayPrice:   resp.CustomPricing.DayPrice,
			NightPrice: resp.CustomPricing.NightPrice,
		}
	}

	return out
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(venueID int64, fieldID *int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		VenueID: venueID,
		FieldID: fieldID,
		Date:    date,
	}, nil
}
