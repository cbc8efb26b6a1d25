package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents whether a booking has been paid for
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Booking represents a reservation of a parking spot for an interval.
// Amount is an estimate while the booking is active and becomes the
// authoritative final charge at completion.
type Booking struct {
	ID            int64
	UserID        int64
	SpotID        int64
	VehicleNumber string
	StartTime     time.Time
	EndTime       time.Time
	Status        BookingStatus
	Amount        float64
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive returns true if the booking occupies its spot
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsFinished returns true if the booking reached a terminal status
func (b *Booking) IsFinished() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// CanBeCompleted returns true if the booking can transition to completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusActive
}

// IsExpired returns true if an active booking is past its scheduled end time
func (b *Booking) IsExpired(now time.Time) bool {
	return b.Status == StatusActive && b.EndTime.Before(now)
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	UserID          *int64         // Фильтр по пользователю (опционально)
	SpotID          *int64         // Фильтр по парковочному месту (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	StartDate       *time.Time     // Начало периода по start_time (опционально)
	EndDate         *time.Time     // Конец периода по start_time (опционально)
	IncludeFinished bool           // Включать ли завершённые и отменённые бронирования
}
