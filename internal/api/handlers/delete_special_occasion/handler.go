package delete_special_occasion

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	overridesService "github.com/m04kA/SMC-VenueService/internal/service/overrides"
	"github.com/m04kA/SMC-VenueService/internal/service/overrides/models"
)

const (
	msgInvalidVenueID    = "некорректный ID площадки"
	msgInvalidOccasionID = "некорректный ID переопределения"
	msgUnauthorized      = "пользователь не аутентифицирован"
	msgVenueNotFound     = "площадка не найдена"
	msgOccasionNotFound  = "переопределение не найдено"
	msgAccessDenied      = "доступ запрещен: вы не владелец площадки"
)

type Handler struct {
	service OverridesService
	logger  Logger
}

func NewHandler(service OverridesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/venues/{venueId}/special-occasions/{occasionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueIDStr := vars["venueId"]
	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /venues/{id}/special-occasions/{id} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	occasionIDStr := vars["occasionId"]
	occasionID, err := strconv.ParseInt(occasionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /venues/{id}/special-occasions/{id} - Invalid occasion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOccasionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /venues/{id}/special-occasions/{id} - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	err = h.service.Delete(r.Context(), &models.DeleteOccasionRequest{
		UserID:     userID,
		VenueID:    venueID,
		OccasionID: occasionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, overridesService.ErrVenueNotFound):
			h.logger.Warn("DELETE /venues/{id}/special-occasions/{id} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, overridesService.ErrOccasionNotFound):
			h.logger.Warn("DELETE /venues/{id}/special-occasions/{id} - Occasion not found: venue_id=%d, occasion_id=%d",
				venueID, occasionID)
			handlers.RespondNotFound(w, msgOccasionNotFound)

		case errors.Is(err, overridesService.ErrAccessDenied):
			h.logger.Warn("DELETE /venues/{id}/special-occasions/{id} - Access denied: user_id=%d, venue_id=%d", userID, venueID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /venues/{id}/special-occasions/{id} - Failed to delete occasion: user_id=%d, venue_id=%d, occasion_id=%d, error=%v",
				userID, venueID, occasionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /venues/{id}/special-occasions/{id} - Occasion deleted successfully: user_id=%d, venue_id=%d, occasion_id=%d",
		userID, venueID, occasionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
