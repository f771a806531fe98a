package get_availability_summary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	getAvailabilitySummary "github.com/m04kA/SMC-VenueService/internal/usecase/get_availability_summary"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgInvalidFieldID = "некорректный ID поля"
	msgMissingDates   = "параметры startDate и endDate обязательны"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRangeTooLarge  = "слишком длинный диапазон дат"
	msgVenueNotFound  = "площадка не найдена"
	msgFieldNotFound  = "поле не найдено"
)

type Handler struct {
	useCase GetAvailabilitySummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilitySummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability-summary
// Query params: startDate, endDate (required, YYYY-MM-DD), fieldId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueIDStr := vars["venueId"]
	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability-summary - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var fieldID *int64
	if fieldIDStr := r.URL.Query().Get("fieldId"); fieldIDStr != "" {
		id, err := strconv.ParseInt(fieldIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /venues/{id}/availability-summary - Invalid field ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFieldID)
			return
		}
		fieldID = &id
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /venues/{id}/availability-summary - Missing date range")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(venueID, fieldID, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability-summary - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailabilitySummary.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/availability-summary - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getAvailabilitySummary.ErrFieldNotFound):
			h.logger.Warn("GET /venues/{id}/availability-summary - Field not found: venue_id=%d, field_id=%v", venueID, fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, getAvailabilitySummary.ErrRangeTooLarge):
			h.logger.Warn("GET /venues/{id}/availability-summary - Range too large: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getAvailabilitySummary.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/availability-summary - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /venues/{id}/availability-summary - Failed to build summary: venue_id=%d, field_id=%v, error=%v",
				venueID, fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /venues/{id}/availability-summary - Summary built successfully: venue_id=%d, field_id=%v, days_count=%d",
		venueID, fieldID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
