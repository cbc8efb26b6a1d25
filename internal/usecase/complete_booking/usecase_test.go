package complete_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// Фейки контрактов usecase

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	completeErr     error
	completed       bool
	completedEnd    time.Time
	completedAmount float64
	completedStatus domain.PaymentStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) Complete(_ context.Context, id int64, endTime time.Time, amount float64, paymentStatus domain.PaymentStatus) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	f.completed = true
	f.completedEnd = endTime
	f.completedAmount = amount
	f.completedStatus = paymentStatus
	return nil
}

type fakeSpotRepo struct {
	spot   *domain.ParkingSpot
	getErr error
	setErr error

	freed bool
}

func (f *fakeSpotRepo) GetByID(_ context.Context, id int64) (*domain.ParkingSpot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.spot
	return &copied, nil
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

type fakePaymentRepo struct {
	createErr error
	created   *domain.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = 101
	f.created = p
	return p, nil
}

// fakeTxManager выполняет fn без реальной транзакции
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

func newTestUseCase(bookings *fakeBookingRepo, spots *fakeSpotRepo, payments *fakePaymentRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, spots, payments, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func activeBookingFixture() (*fakeBookingRepo, *fakeSpotRepo) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	bookings := &fakeBookingRepo{
		booking: &domain.Booking{
			ID:            1,
			UserID:        42,
			SpotID:        7,
			VehicleNumber: "A123BC",
			StartTime:     start,
			EndTime:       start.Add(2 * time.Hour),
			Status:        domain.StatusActive,
			PaymentStatus: domain.PaymentStatusUnpaid,
		},
	}
	spots := &fakeSpotRepo{
		spot: &domain.ParkingSpot{
			ID:            7,
			SpotNumber:    "A-07",
			Type:          domain.SpotTypeStandard,
			HourlyRate:    5.00,
			IsOccupied:    true,
			VehicleNumber: ptr.Ptr("A123BC"),
		},
	}
	return bookings, spots
}

func TestExecute_Success(t *testing.T) {
	bookings, spots := activeBookingFixture()
	payments := &fakePaymentRepo{}
	now := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	uc := newTestUseCase(bookings, spots, payments, now)

	endTime := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:     1,
		EndTime:       endTime,
		PaidAmount:    12.50,
		PaymentMethod: "cash",
	})

	require.NoError(t, err)

	// 2.5 часа * 5.00/час
	assert.Equal(t, 12.50, resp.FinalAmount)
	assert.Equal(t, 12.50, resp.PaidAmount)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, string(domain.PaymentStatusPaid), resp.PaymentStatus)

	assert.True(t, bookings.completed)
	assert.Equal(t, endTime, bookings.completedEnd)
	assert.Equal(t, 12.50, bookings.completedAmount)
	assert.Equal(t, domain.PaymentStatusPaid, bookings.completedStatus)

	assert.True(t, spots.freed)

	require.NotNil(t, payments.created)
	assert.Equal(t, domain.MethodCash, payments.created.Method)
	assert.Equal(t, domain.PaymentStatusPaid, payments.created.Status)
	assert.Equal(t, 12.50, payments.created.Amount)
}

func TestExecute_GeneratesTransactionID(t *testing.T) {
	bookings, spots := activeBookingFixture()
	payments := &fakePaymentRepo{}
	now := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	uc := newTestUseCase(bookings, spots, payments, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:     1,
		EndTime:       now,
		PaidAmount:    12.50,
		PaymentMethod: "card",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.TransactionID, "TXN-20240101123000-"),
		"unexpected transaction id: %s", resp.TransactionID)
}

func TestExecute_KeepsSuppliedTransactionID(t *testing.T) {
	bookings, spots := activeBookingFixture()
	payments := &fakePaymentRepo{}
	now := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	uc := newTestUseCase(bookings, spots, payments, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:     1,
		EndTime:       now,
		PaidAmount:    12.50,
		PaymentMethod: "paypal",
		TransactionID: ptr.Ptr("EXT-12345"),
	})

	require.NoError(t, err)
	assert.Equal(t, "EXT-12345", resp.TransactionID)
	assert.Equal(t, "EXT-12345", payments.created.TransactionID)
}

func TestExecute_PaidAndFinalAmountsStayIndependent(t *testing.T) {
	bookings, spots := activeBookingFixture()
	payments := &fakePaymentRepo{}
	now := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	uc := newTestUseCase(bookings, spots, payments, now)

	// Администратор принял 10.00 при расчётных 12.50 - обе суммы сохраняются как есть
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:     1,
		EndTime:       now,
		PaidAmount:    10.00,
		PaymentMethod: "cash",
	})

	require.NoError(t, err)
	assert.Equal(t, 12.50, resp.FinalAmount)
	assert.Equal(t, 10.00, resp.PaidAmount)
	assert.Equal(t, 12.50, bookings.completedAmount)
	assert.Equal(t, 10.00, payments.created.Amount)
}

func TestExecute_NotFound(t *testing.T) {
	bookings, spots := activeBookingFixture()
	now := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	uc := newTestUseCase(bookings, spots, &fakePaymentRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     99,
		EndTime:       now,
		PaidAmount:    1.00,
		PaymentMethod: "cash",
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_NotActive(t *testing.T) {
	bookings, spots := activeBookingFixture()
	bookings.booking.Status = domain.StatusCancelled
	now := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	uc := newTestUseCase(bookings, spots, &fakePaymentRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     1,
		EndTime:       now,
		PaidAmount:    1.00,
		PaymentMethod: "cash",
	})

	assert.ErrorIs(t, err, ErrBookingNotActive)
	assert.False(t, bookings.completed)
	assert.False(t, spots.freed)
}

func TestExecute_EndBeforeStart(t *testing.T) {
	bookings, spots := activeBookingFixture()
	now := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	uc := newTestUseCase(bookings, spots, &fakePaymentRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     1,
		EndTime:       bookings.booking.StartTime.Add(-time.Minute),
		PaidAmount:    1.00,
		PaymentMethod: "cash",
	})

	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestExecute_InvalidPaymentMethod(t *testing.T) {
	bookings, spots := activeBookingFixture()
	now := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	uc := newTestUseCase(bookings, spots, &fakePaymentRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     1,
		EndTime:       now,
		PaidAmount:    1.00,
		PaymentMethod: "crypto",
	})

	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestExecute_PaymentFailureLeavesBookingAndSpotUntouched(t *testing.T) {
	bookings, spots := activeBookingFixture()
	payments := &fakePaymentRepo{createErr: errors.New("insert failed")}
	now := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	uc := newTestUseCase(bookings, spots, payments, now)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:     1,
		EndTime:       now,
		PaidAmount:    12.50,
		PaymentMethod: "cash",
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, bookings.completed, "booking must stay active when payment insert fails")
	assert.False(t, spots.freed, "spot must stay occupied when payment insert fails")
}
