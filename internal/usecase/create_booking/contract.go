package create_booking

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// SpotRepository интерфейс репозитория парковочных мест
type SpotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error)
	SetOccupied(ctx context.Context, id int64, occupied bool, vehicleNumber *string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
