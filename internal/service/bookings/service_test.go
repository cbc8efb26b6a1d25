package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings   map[int64]*domain.Booking
	lastFilter *domain.BookingsFilter
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = &filter
	out := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments []*domain.Payment
	summary  *domain.RevenueSummary
}

func (f *fakePaymentRepo) GetByBookingID(_ context.Context, bookingID int64) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) RevenueSummary(_ context.Context, _, _ *time.Time) (*domain.RevenueSummary, error) {
	return f.summary, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeBooking(id, userID int64) *domain.Booking {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:            id,
		UserID:        userID,
		SpotID:        1,
		VehicleNumber: "A123BC",
		StartTime:     start,
		EndTime:       start.Add(2 * time.Hour),
		Status:        domain.StatusActive,
		Amount:        10.00,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
}

func TestGetByID_Owner(t *testing.T) {
	svc := NewService(newFakeBookingRepo(activeBooking(1, 42)), &fakePaymentRepo{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2024-03-01 10:00", resp.StartTime)
}

func TestGetByID_ForeignBooking(t *testing.T) {
	svc := NewService(newFakeBookingRepo(activeBooking(1, 42)), &fakePaymentRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &fakePaymentRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 7, 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	completed := activeBooking(2, 42)
	completed.Status = domain.StatusCompleted

	svc := NewService(newFakeBookingRepo(activeBooking(1, 42), completed), &fakePaymentRepo{}, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("completed"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "completed", resp.Bookings[0].Status)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &fakePaymentRepo{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("parked"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListBookings_FilterConversion(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, &fakePaymentRepo{}, nopLogger{})

	_, err := svc.ListBookings(context.Background(), &models.ListBookingsRequest{
		SpotID:          ptr.Ptr(int64(3)),
		Status:          ptr.Ptr("cancelled"),
		IncludeFinished: true,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, int64(3), *repo.lastFilter.SpotID)
	assert.Equal(t, domain.StatusCancelled, *repo.lastFilter.Status)
	assert.True(t, repo.lastFilter.IncludeFinished)
}

func TestGetBookingPayments_Owner(t *testing.T) {
	payments := &fakePaymentRepo{
		payments: []*domain.Payment{
			{ID: 1, BookingID: 1, Amount: 12.50, Method: domain.MethodCash, TransactionID: "TXN-1", Status: domain.PaymentStatusPaid},
		},
	}
	svc := NewService(newFakeBookingRepo(activeBooking(1, 42)), payments, nopLogger{})

	resp, err := svc.GetBookingPayments(context.Background(), 1, 42)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, 12.50, resp[0].Amount)
	assert.Equal(t, "cash", resp[0].Method)
}

func TestRevenueReport(t *testing.T) {
	payments := &fakePaymentRepo{
		summary: &domain.RevenueSummary{
			TotalAmount:   37.50,
			PaymentsCount: 3,
			ByMethod: []domain.MethodRevenue{
				{Method: domain.MethodCash, Amount: 12.50, Count: 1},
				{Method: domain.MethodCard, Amount: 25.00, Count: 2},
			},
		},
	}
	svc := NewService(newFakeBookingRepo(), payments, nopLogger{})

	resp, err := svc.RevenueReport(context.Background(), &models.RevenueReportRequest{})

	require.NoError(t, err)
	assert.Equal(t, 37.50, resp.TotalAmount)
	assert.Equal(t, 3, resp.PaymentsCount)
	require.Len(t, resp.ByMethod, 2)
	assert.Equal(t, "card", resp.ByMethod[1].Method)
}

func TestRevenueReport_InvalidPeriod(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &fakePaymentRepo{}, nopLogger{})

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, -1, 0)

	_, err := svc.RevenueReport(context.Background(), &models.RevenueReportRequest{From: &from, To: &to})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
