package spots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotRepository интерфейс репозитория парковочных мест
type SpotRepository interface {
	Create(ctx context.Context, s *domain.ParkingSpot) (*domain.ParkingSpot, error)
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error)
	List(ctx context.Context, filter domain.SpotsFilter) ([]*domain.ParkingSpot, error)
	Update(ctx context.Context, s *domain.ParkingSpot) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
