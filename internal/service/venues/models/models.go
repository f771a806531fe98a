package models

import (
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// VenueResponse ответ с данными площадки и её полями
type VenueResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	OpeningTime   string          `json:"openingTime"`
	ClosingTime   string          `json:"closingTime"`
	DaysAvailable []int64         `json:"daysAvailable"`
	Status        string          `json:"status"`
	Fields        []FieldResponse `json:"fields"`
}

// FieldResponse данные одного поля площадки
type FieldResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// FromDomainVenue конвертирует доменную модель площадки в response
func FromDomainVenue(venue *domain.Venue, fields []domain.Field) *VenueResponse {
	out := make([]FieldResponse, len(fields))
	for i, f := range fields {
		out[i] = FieldResponse{
			ID:     f.ID,
			Name:   f.Name,
			Status: string(f.Status),
		}
	}

	return &VenueResponse{
		ID:            venue.ID,
		Name:          venue.Name,
		OpeningTime:   venue.OpeningTime.String(),
		ClosingTime:   venue.ClosingTime.String(),
		DaysAvailable: venue.DaysAvailable,
		Status:        string(venue.Status),
		Fields:        out,
	}
}
