package repair_slot_grids

import (
	"net/http"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
)

type Handler struct {
	service SlotGridService
	logger  Logger
}

func NewHandler(service SlotGridService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RepairResponse HTTP response model
type RepairResponse struct {
	RepairedVenues int `json:"repairedVenues"`
}

// Handle POST /internal/slot-grids/repair
// Служебный эндпоинт: досоздает сетки слотов площадкам, у которых их нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	repaired, err := h.service.RepairAll(r.Context())
	if err != nil {
		h.logger.Error("POST /internal/slot-grids/repair - Repair failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /internal/slot-grids/repair - Repair finished: repaired_venues=%d", repaired)
	handlers.RespondJSON(w, http.StatusOK, RepairResponse{RepairedVenues: repaired})
}
