package spot

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO parking_spots \\(spot_number,floor,spot_type,hourly_rate,is_occupied,vehicle_number\\)").
		WithArgs("A-01", 1, domain.SpotTypeStandard, 5.00, false, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

	got, err := repo.Create(context.Background(), &domain.ParkingSpot{
		SpotNumber: "A-01",
		Floor:      1,
		Type:       domain.SpotTypeStandard,
		HourlyRate: 5.00,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, now, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_NumberTaken(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO parking_spots").
		WillReturnError(&pq.Error{Code: pq.ErrorCode(pgUniqueViolation)})

	_, err := repo.Create(context.Background(), &domain.ParkingSpot{
		SpotNumber: "A-01",
		Type:       domain.SpotTypeStandard,
		HourlyRate: 5.00,
	})

	assert.ErrorIs(t, err, ErrSpotNumberTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetOccupied(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE parking_spots SET is_occupied = \\$1, vehicle_number = \\$2, updated_at = NOW\\(\\) WHERE id = \\$3").
		WithArgs(true, ptr.Ptr("A123BC"), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetOccupied(context.Background(), 7, true, ptr.Ptr("A123BC"))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetOccupied_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE parking_spots SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetOccupied(context.Background(), 99, false, nil)

	assert.ErrorIs(t, err, ErrSpotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_SpotHasBookings(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("DELETE FROM parking_spots WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnError(&pq.Error{Code: pq.ErrorCode(pgForeignKeyViolation)})

	err := repo.Delete(context.Background(), 7)

	assert.ErrorIs(t, err, ErrSpotHasBookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}
