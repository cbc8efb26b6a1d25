package cancel_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	cancelErr error
	cancelled bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = true
	return nil
}

type fakeSpotRepo struct {
	freed  bool
	setErr error
}

func (f *fakeSpotRepo) SetOccupied(_ context.Context, id int64, occupied bool, vehicleNumber *string) error {
	if f.setErr != nil {
		return f.setErr
	}
	if !occupied {
		f.freed = true
	}
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeBooking() *domain.Booking {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:            1,
		UserID:        42,
		SpotID:        7,
		VehicleNumber: "A123BC",
		StartTime:     start,
		EndTime:       start.Add(2 * time.Hour),
		Status:        domain.StatusActive,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{booking: activeBooking()}
	spots := &fakeSpotRepo{}

	uc := NewUseCase(bookings, spots, &fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 1)

	assert.NoError(t, err)
	assert.True(t, bookings.cancelled)
	assert.True(t, spots.freed)
}

func TestExecute_NotFound(t *testing.T) {
	bookings := &fakeBookingRepo{}
	spots := &fakeSpotRepo{}

	uc := NewUseCase(bookings, spots, &fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.False(t, spots.freed)
}

func TestExecute_AlreadyCancelled(t *testing.T) {
	booking := activeBooking()
	booking.Status = domain.StatusCancelled
	bookings := &fakeBookingRepo{booking: booking}
	spots := &fakeSpotRepo{}

	uc := NewUseCase(bookings, spots, &fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAlreadyFinished)
	assert.False(t, bookings.cancelled)
	assert.False(t, spots.freed, "spot of a finished booking must not be re-freed")
}

func TestExecute_AlreadyCompleted(t *testing.T) {
	booking := activeBooking()
	booking.Status = domain.StatusCompleted
	bookings := &fakeBookingRepo{booking: booking}
	spots := &fakeSpotRepo{}

	uc := NewUseCase(bookings, spots, &fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAlreadyFinished)
	assert.False(t, spots.freed)
}

func TestExecute_CancelFailure(t *testing.T) {
	bookings := &fakeBookingRepo{booking: activeBooking(), cancelErr: errors.New("write failed")}
	spots := &fakeSpotRepo{}

	uc := NewUseCase(bookings, spots, &fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, spots.freed)
}
