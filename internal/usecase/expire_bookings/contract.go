package expire_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListExpired(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	Complete(ctx context.Context, id int64, endTime time.Time, amount float64, paymentStatus domain.PaymentStatus) error
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

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
