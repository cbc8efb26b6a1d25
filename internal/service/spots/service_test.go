package spots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type fakeSpotRepo struct {
	spots     map[int64]*domain.ParkingSpot
	createErr error
	deleteErr error
	deleted   []int64
}

func newFakeSpotRepo(spots ...*domain.ParkingSpot) *fakeSpotRepo {
	repo := &fakeSpotRepo{spots: map[int64]*domain.ParkingSpot{}}
	for _, s := range spots {
		repo.spots[s.ID] = s
	}
	return repo
}

func (f *fakeSpotRepo) Create(_ context.Context, s *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s.ID = int64(len(f.spots) + 1)
	f.spots[s.ID] = s
	return s, nil
}

func (f *fakeSpotRepo) GetByID(_ context.Context, id int64) (*domain.ParkingSpot, error) {
	s, ok := f.spots[id]
	if !ok {
		return nil, spotRepo.ErrSpotNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSpotRepo) List(_ context.Context, _ domain.SpotsFilter) ([]*domain.ParkingSpot, error) {
	out := make([]*domain.ParkingSpot, 0, len(f.spots))
	for _, s := range f.spots {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSpotRepo) Update(_ context.Context, s *domain.ParkingSpot) error {
	if _, ok := f.spots[s.ID]; !ok {
		return spotRepo.ErrSpotNotFound
	}
	f.spots[s.ID] = s
	return nil
}

func (f *fakeSpotRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.spots[id]; !ok {
		return spotRepo.ErrSpotNotFound
	}
	delete(f.spots, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_Success(t *testing.T) {
	repo := newFakeSpotRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateSpotRequest{
		SpotNumber: "B-12",
		Floor:      2,
		Type:       "vip",
		HourlyRate: 15.50,
	})

	require.NoError(t, err)
	assert.Equal(t, "B-12", resp.SpotNumber)
	assert.Equal(t, "vip", resp.Type)
	assert.False(t, resp.IsOccupied)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeSpotRepo(), nopLogger{})

	testCases := []struct {
		name string
		req  models.CreateSpotRequest
	}{
		{"empty number", models.CreateSpotRequest{Type: "standard", HourlyRate: 5}},
		{"negative rate", models.CreateSpotRequest{SpotNumber: "A-01", Type: "standard", HourlyRate: -1}},
		{"unknown type", models.CreateSpotRequest{SpotNumber: "A-01", Type: "premium", HourlyRate: 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_NumberTaken(t *testing.T) {
	repo := newFakeSpotRepo()
	repo.createErr = spotRepo.ErrSpotNumberTaken
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateSpotRequest{
		SpotNumber: "A-01",
		Type:       "standard",
		HourlyRate: 5,
	})

	assert.ErrorIs(t, err, ErrSpotNumberTaken)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newFakeSpotRepo(&domain.ParkingSpot{
		ID: 3, SpotNumber: "C-03", Floor: 1, Type: domain.SpotTypeStandard, HourlyRate: 5.00,
	})
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 3, &models.UpdateSpotRequest{
		HourlyRate: ptr.Ptr(7.25),
	})

	require.NoError(t, err)
	assert.Equal(t, 7.25, resp.HourlyRate)
	// Остальные поля не тронуты
	assert.Equal(t, "C-03", resp.SpotNumber)
	assert.Equal(t, "standard", resp.Type)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newFakeSpotRepo(), nopLogger{})

	_, err := svc.Update(context.Background(), 99, &models.UpdateSpotRequest{Floor: ptr.Ptr(2)})

	assert.ErrorIs(t, err, ErrSpotNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo := newFakeSpotRepo(&domain.ParkingSpot{ID: 5, SpotNumber: "A-05", Type: domain.SpotTypeStandard})
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deleted)
}

func TestDelete_OccupiedSpot(t *testing.T) {
	repo := newFakeSpotRepo(&domain.ParkingSpot{
		ID: 5, SpotNumber: "A-05", Type: domain.SpotTypeStandard, IsOccupied: true,
	})
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, ErrSpotOccupied)
	assert.Empty(t, repo.deleted)
}

func TestDelete_SpotHasBookings(t *testing.T) {
	repo := newFakeSpotRepo(&domain.ParkingSpot{ID: 5, SpotNumber: "A-05", Type: domain.SpotTypeStandard})
	repo.deleteErr = spotRepo.ErrSpotHasBookings
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, ErrSpotHasBookings)
}
