package models

import (
	"time"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// Request модели

// CreateOccasionRequest запрос на создание переопределения доступности
type CreateOccasionRequest struct {
	UserID            int64    `json:"userId"`
	VenueID           int64    `json:"venueId"`
	FieldID           *int64   `json:"fieldId,omitempty"` // NULL = уровень площадки
	Title             string   `json:"title"`
	StartDate         string   `json:"startDate"` // YYYY-MM-DD
	EndDate           string   `json:"endDate"`   // YYYY-MM-DD
	OverrideType      string   `json:"overrideType"`
	Reason            *string  `json:"reason,omitempty"`
	OpenTime          *string  `json:"openTime,omitempty"`  // HH:MM, только для custom_hours
	CloseTime         *string  `json:"closeTime,omitempty"` // HH:MM, только для custom_hours
	DayPrice          *float64 `json:"dayPrice,omitempty"`  // только для custom_pricing
	NightPrice        *float64 `json:"nightPrice,omitempty"`
	IsRecurring       bool     `json:"isRecurring"`
	RecurrencePattern *string  `json:"recurrencePattern,omitempty"` // weekly | monthly | yearly
}

// DeleteOccasionRequest запрос на удаление переопределения
type DeleteOccasionRequest struct {
	UserID     int64 `json:"userId"`
	VenueID    int64 `json:"venueId"`
	OccasionID int64 `json:"occasionId"`
}

// Response модели

// OccasionResponse ответ с данными переопределения
type OccasionResponse struct {
	ID                int64    `json:"id"`
	VenueID           int64    `json:"venueId"`
	FieldID           *int64   `json:"fieldId,omitempty"`
	Title             string   `json:"title"`
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate"`
	OverrideType      string   `json:"overrideType"`
	Reason            *string  `json:"reason,omitempty"`
	OpenTime          *string  `json:"openTime,omitempty"`
	CloseTime         *string  `json:"closeTime,omitempty"`
	DayPrice          *float64 `json:"dayPrice,omitempty"`
	NightPrice        *float64 `json:"nightPrice,omitempty"`
	IsRecurring       bool     `json:"isRecurring"`
	RecurrencePattern *string  `json:"recurrencePattern,omitempty"`
	CreatedAt         string   `json:"createdAt"`
}

// OccasionListResponse ответ со списком переопределений
type OccasionListResponse struct {
	Occasions []OccasionResponse `json:"occasions"`
}

// FromDomainOccasion конвертирует доменную модель в response
func FromDomainOccasion(o *domain.SpecialOccasion) *OccasionResponse {
	resp := &OccasionResponse{
		ID:                o.ID,
		VenueID:           o.VenueID,
		FieldID:           o.FieldID,
		Title:             o.Title,
		StartDate:         o.StartDate.Format(domain.DateFormat),
		EndDate:           o.EndDate.Format(domain.DateFormat),
		OverrideType:      string(o.Type),
		Reason:            o.Reason,
		DayPrice:          o.DayPrice,
		NightPrice:        o.NightPrice,
		IsRecurring:       o.IsRecurring,
		RecurrencePattern: o.RecurrencePattern,
		CreatedAt:         o.CreatedAt.Format(time.RFC3339),
	}

	if o.OpenTime != nil {
		s := o.OpenTime.String()
		resp.OpenTime = &s
	}
	if o.CloseTime != nil {
		s := o.CloseTime.String()
		resp.CloseTime = &s
	}

	return resp
}

// FromDomainOccasionList конвертирует список доменных моделей в response
func FromDomainOccasionList(occasions []*domain.SpecialOccasion) *OccasionListResponse {
	out := make([]OccasionResponse, len(occasions))
	for i, o := range occasions {
		out[i] = *FromDomainOccasion(o)
	}
	return &OccasionListResponse{Occasions: out}
}
