package create_special_occasion

import (
	"context"

	"github.com/m04kA/SMC-VenueService/internal/service/overrides/models"
)

type OverridesService interface {
	Create(ctx context.Context, req *models.CreateOccasionRequest) (*models.OccasionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
