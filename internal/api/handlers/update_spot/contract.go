package update_spot

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/spots/models"
)

type SpotService interface {
	Update(ctx context.Context, id int64, req *models.UpdateSpotRequest) (*models.SpotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
