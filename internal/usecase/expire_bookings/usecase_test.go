package expire_bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type completedCall struct {
	id            int64
	endTime       time.Time
	amount        float64
	paymentStatus domain.PaymentStatus
}

type fakeBookingRepo struct {
	expired     []*domain.Booking
	listErr     error
	completeErr error
	completed   []completedCall
}

func (f *fakeBookingRepo) ListExpired(_ context.Context, now time.Time) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	due := make([]*domain.Booking, 0)
	for _, b := range f.expired {
		if b.IsExpired(now) {
			due = append(due, b)
		}
	}
	return due, nil
}

func (f *fakeBookingRepo) Complete(_ context.Context, id int64, endTime time.Time, amount float64, paymentStatus domain.PaymentStatus) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	f.completed = append(f.completed, completedCall{id, endTime, amount, paymentStatus})
	for _, b := range f.expired {
		if b.ID == id {
			b.Status = domain.StatusCompleted
		}
	}
	return nil
}

type fakeSpotRepo struct {
	spots map[int64]*domain.ParkingSpot
	freed []int64
}

func (f *fakeSpotRepo) GetByID(_ context.Context, id int64) (*domain.ParkingSpot, error) {
	s, ok := f.spots[id]
	if !ok {
		return nil, errors.New("spot not found")
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSpotRepo) SetOccupied(_ context.Context, id int64, occupied bool, vehicleNumber *string) error {
	if !occupied {
		f.freed = append(f.freed, id)
	}
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_CompletesExpiredBookings(t *testing.T) {
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	scheduledEnd := now.Add(-time.Hour)

	bookings := &fakeBookingRepo{
		expired: []*domain.Booking{
			{
				ID:            1,
				SpotID:        7,
				StartTime:     scheduledEnd.Add(-2 * time.Hour),
				EndTime:       scheduledEnd,
				Status:        domain.StatusActive,
				PaymentStatus: domain.PaymentStatusUnpaid,
			},
			{
				// Ещё не просрочено - не трогаем
				ID:        2,
				SpotID:    8,
				StartTime: now.Add(-time.Hour),
				EndTime:   now.Add(time.Hour),
				Status:    domain.StatusActive,
			},
		},
	}
	spots := &fakeSpotRepo{
		spots: map[int64]*domain.ParkingSpot{
			7: {ID: 7, HourlyRate: 5.00, IsOccupied: true},
			8: {ID: 8, HourlyRate: 5.00, IsOccupied: true},
		},
	}

	uc := NewUseCase(bookings, spots, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.Len(t, bookings.completed, 1)
	call := bookings.completed[0]
	assert.Equal(t, int64(1), call.id)
	// Сумма по запланированному окончанию: 2 часа * 5.00
	assert.Equal(t, scheduledEnd, call.endTime)
	assert.Equal(t, 10.00, call.amount)
	// Автозавершение не создаёт платёж - бронирование остаётся неоплаченным
	assert.Equal(t, domain.PaymentStatusUnpaid, call.paymentStatus)

	assert.Equal(t, []int64{7}, spots.freed)
}

func TestExecute_SecondRunIsNoOp(t *testing.T) {
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	scheduledEnd := now.Add(-time.Hour)

	bookings := &fakeBookingRepo{
		expired: []*domain.Booking{
			{
				ID:        1,
				SpotID:    7,
				StartTime: scheduledEnd.Add(-time.Hour),
				EndTime:   scheduledEnd,
				Status:    domain.StatusActive,
			},
		},
	}
	spots := &fakeSpotRepo{
		spots: map[int64]*domain.ParkingSpot{
			7: {ID: 7, HourlyRate: 5.00, IsOccupied: true},
		},
	}

	uc := NewUseCase(bookings, spots, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second)

	assert.Len(t, bookings.completed, 1)
	assert.Len(t, spots.freed, 1)
}

func TestExecute_NothingExpired(t *testing.T) {
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	bookings := &fakeBookingRepo{}
	spots := &fakeSpotRepo{spots: map[int64]*domain.ParkingSpot{}}

	uc := NewUseCase(bookings, spots, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	count, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestExecute_CompleteFailureAborts(t *testing.T) {
	now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	scheduledEnd := now.Add(-time.Hour)

	bookings := &fakeBookingRepo{
		expired: []*domain.Booking{
			{
				ID:        1,
				SpotID:    7,
				StartTime: scheduledEnd.Add(-time.Hour),
				EndTime:   scheduledEnd,
				Status:    domain.StatusActive,
			},
		},
		completeErr: errors.New("write failed"),
	}
	spots := &fakeSpotRepo{
		spots: map[int64]*domain.ParkingSpot{
			7: {ID: 7, HourlyRate: 5.00, IsOccupied: true},
		},
	}

	uc := NewUseCase(bookings, spots, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, spots.freed)
}
