package list_special_occasions

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/service/overrides/models"
)

type OverridesService interface {
	List(ctx context.Context, venueID int64) (*models.OccasionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
