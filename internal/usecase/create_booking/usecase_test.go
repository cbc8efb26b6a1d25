package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
)

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.ID = 1
	b.CreatedAt = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	f.created = b
	return b, nil
}

type fakeSpotRepo struct {
	spot     *domain.ParkingSpot
	occupied bool
	vehicle  *string
}

func (f *fakeSpotRepo) GetByID(_ context.Context, id int64) (*domain.ParkingSpot, error) {
	if f.spot == nil || f.spot.ID != id {
		return nil, spotRepo.ErrSpotNotFound
	}
	copied := *f.spot
	return &copied, nil
}

func (f *fakeSpotRepo) SetOccupied(_ context.Context, id int64, occupied bool, vehicleNumber *string) error {
	f.occupied = occupied
	f.vehicle = vehicleNumber
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

func validRequest() *Request {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return &Request{
		UserID:        42,
		SpotID:        7,
		VehicleNumber: "A123BC",
		StartTime:     start,
		EndTime:       start.Add(3 * time.Hour),
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	spots := &fakeSpotRepo{
		spot: &domain.ParkingSpot{ID: 7, SpotNumber: "A-07", HourlyRate: 4.00},
	}

	uc := NewUseCase(bookings, spots, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Equal(t, string(domain.PaymentStatusUnpaid), resp.PaymentStatus)
	// Предварительная сумма: 3 часа * 4.00
	assert.Equal(t, 12.00, resp.Amount)

	assert.True(t, spots.occupied)
	require.NotNil(t, spots.vehicle)
	assert.Equal(t, "A123BC", *spots.vehicle)
}

func TestExecute_SpotNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeSpotRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSpotNotFound)
}

func TestExecute_SpotOccupied(t *testing.T) {
	spots := &fakeSpotRepo{
		spot: &domain.ParkingSpot{ID: 7, HourlyRate: 4.00, IsOccupied: true},
	}
	bookings := &fakeBookingRepo{}

	uc := NewUseCase(bookings, spots, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSpotOccupied)
	assert.Nil(t, bookings.created)
}

func TestExecute_InvalidInterval(t *testing.T) {
	spots := &fakeSpotRepo{
		spot: &domain.ParkingSpot{ID: 7, HourlyRate: 4.00},
	}

	uc := NewUseCase(&fakeBookingRepo{}, spots, &fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.EndTime = req.StartTime.Add(-time.Hour)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeSpotRepo{}, &fakeTxManager{}, nopLogger{})

	testCases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user id", func(r *Request) { r.UserID = 0 }},
		{"zero spot id", func(r *Request) { r.SpotID = 0 }},
		{"empty vehicle number", func(r *Request) { r.VehicleNumber = "" }},
		{"zero start time", func(r *Request) { r.StartTime = time.Time{} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
