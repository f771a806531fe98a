package update_venue_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	updateSchedule "github.com/m04kA/SMC-VenueService/internal/usecase/update_schedule"
)

const (
	msgInvalidVenueID     = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgVenueNotFound      = "площадка не найдена"
	msgPermissionDenied   = "доступ запрещен: вы не владелец площадки"
	msgGridFailed         = "расписание сохранено, но пересборка сетки слотов не удалась"
)

type Handler struct {
	useCase UpdateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase UpdateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/venues/{venueId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueIDStr := vars["venueId"]
	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /venues/{id}/schedule - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /venues/{id}/schedule - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /venues/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, venueID)
	if err != nil {
		h.logger.Warn("PUT /venues/{id}/schedule - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSchedule.ErrVenueNotFound):
			h.logger.Warn("PUT /venues/{id}/schedule - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, updateSchedule.ErrPermissionDenied):
			h.logger.Warn("PUT /venues/{id}/schedule - Permission denied: user_id=%d, venue_id=%d", userID, venueID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, updateSchedule.ErrInvalidInput):
			h.logger.Warn("PUT /venues/{id}/schedule - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateSchedule.ErrGridRegenerationFailed):
			h.logger.Error("PUT /venues/{id}/schedule - Grid regeneration failed: venue_id=%d, error=%v", venueID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgGridFailed)

		default:
			h.logger.Error("PUT /venues/{id}/schedule - Failed to update schedule: user_id=%d, venue_id=%d, error=%v",
				userID, venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /venues/{id}/schedule - Schedule updated successfully: user_id=%d, venue_id=%d", userID, venueID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
