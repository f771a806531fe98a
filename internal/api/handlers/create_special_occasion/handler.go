package create_special_occasion

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
	msgInvalidVenueID     = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgVenueNotFound      = "площадка не найдена"
	msgFieldNotFound      = "поле не найдено"
	msgAccessDenied       = "доступ запрещен: вы не владелец площадки"
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

// Handle POST /api/v1/venues/{venueId}/special-occasions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueIDStr := vars["venueId"]
	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/special-occasions - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /venues/{id}/special-occasions - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req models.CreateOccasionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/{id}/special-occasions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Идентификаторы из URL и контекста важнее значений из тела
	req.UserID = userID
	req.VenueID = venueID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, overridesService.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/special-occasions - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, overridesService.ErrFieldNotFound):
			h.logger.Warn("POST /venues/{id}/special-occasions - Field not found: venue_id=%d, field_id=%v", venueID, req.FieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, overridesService.ErrAccessDenied):
			h.logger.Warn("POST /venues/{id}/special-occasions - Access denied: user_id=%d, venue_id=%d", userID, venueID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, overridesService.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/special-occasions - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /venues/{id}/special-occasions - Failed to create occasion: user_id=%d, venue_id=%d, error=%v",
				userID, venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/special-occasions - Occasion created successfully: occasion_id=%d, user_id=%d, venue_id=%d",
		result.ID, userID, venueID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
