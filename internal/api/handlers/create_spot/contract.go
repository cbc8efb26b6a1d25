package create_spot

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/spots/models"
)

type SpotService interface {
	Create(ctx context.Context, req *models.CreateSpotRequest) (*models.SpotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
