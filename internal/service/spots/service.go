package spots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	"github.com/m04kA/SMC-ParkingService/internal/service/spots/models"
)

// Service сервис для управления парковочными местами
type Service struct {
	spotRepo SpotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса парковочных мест
func NewService(spotRepo SpotRepository, logger Logger) *Service {
	return &Service{
		spotRepo: spotRepo,
		logger:   logger,
	}
}

// Create создает новое парковочное место
func (s *Service) Create(ctx context.Context, req *models.CreateSpotRequest) (*models.SpotResponse, error) {
	s.logger.Info("Create: creating spot number=%s, floor=%d, type=%s, rate=%.2f",
		req.SpotNumber, req.Floor, req.Type, req.HourlyRate)

	if req.SpotNumber == "" {
		s.logger.Warn("Create: empty spot number")
		return nil, fmt.Errorf("%w: spotNumber is required", ErrInvalidInput)
	}

	if req.HourlyRate < 0 {
		s.logger.Warn("Create: negative hourly rate %.2f", req.HourlyRate)
		return nil, fmt.Errorf("%w: hourlyRate must be non-negative", ErrInvalidInput)
	}

	spotType, err := models.ToDomainSpotType(req.Type)
	if err != nil {
		s.logger.Warn("Create: invalid spot type=%s", req.Type)
		return nil, fmt.Errorf("%w: invalid spot type", ErrInvalidInput)
	}

	spot, err := s.spotRepo.Create(ctx, &domain.ParkingSpot{
		SpotNumber: req.SpotNumber,
		Floor:      req.Floor,
		Type:       spotType,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		if errors.Is(err, spotRepo.ErrSpotNumberTaken) {
			s.logger.Warn("Create: spot number=%s already taken", req.SpotNumber)
			return nil, ErrSpotNumberTaken
		}
		s.logger.Error("Create: repository error for spot number=%s: %v", req.SpotNumber, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created spot id=%d", spot.ID)
	return models.FromDomainSpot(spot), nil
}

// GetByID получает парковочное место по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SpotResponse, error) {
	s.logger.Info("GetByID: fetching spot id=%d", id)

	spot, err := s.spotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			s.logger.Warn("GetByID: spot id=%d not found", id)
			return nil, ErrSpotNotFound
		}
		s.logger.Error("GetByID: repository error for spot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpot(spot), nil
}

// List получает список парковочных мест с фильтрацией
// Поддерживает фильтры по этажу, типу и занятости
func (s *Service) List(ctx context.Context, req *models.ListSpotsRequest) (*models.SpotListResponse, error) {
	s.logger.Info("List: fetching spots, floor=%v, type=%v, occupied=%v", req.Floor, req.Type, req.IsOccupied)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	spots, err := s.spotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d spots", len(spots))
	return models.FromDomainSpotList(spots), nil
}

// Update обновляет парковочное место
// Обновляются только переданные поля
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSpotRequest) (*models.SpotResponse, error) {
	s.logger.Info("Update: updating spot id=%d", id)

	spot, err := s.spotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			s.logger.Warn("Update: spot id=%d not found", id)
			return nil, ErrSpotNotFound
		}
		s.logger.Error("Update: repository error for spot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.SpotNumber != nil {
		if *req.SpotNumber == "" {
			s.logger.Warn("Update: empty spot number for spot id=%d", id)
			return nil, fmt.Errorf("%w: spotNumber must not be empty", ErrInvalidInput)
		}
		spot.SpotNumber = *req.SpotNumber
	}

	if req.Floor != nil {
		spot.Floor = *req.Floor
	}

	if req.Type != nil {
		spotType, err := models.ToDomainSpotType(*req.Type)
		if err != nil {
			s.logger.Warn("Update: invalid spot type=%s for spot id=%d", *req.Type, id)
			return nil, fmt.Errorf("%w: invalid spot type", ErrInvalidInput)
		}
		spot.Type = spotType
	}

	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			s.logger.Warn("Update: negative hourly rate %.2f for spot id=%d", *req.HourlyRate, id)
			return nil, fmt.Errorf("%w: hourlyRate must be non-negative", ErrInvalidInput)
		}
		spot.HourlyRate = *req.HourlyRate
	}

	if err := s.spotRepo.Update(ctx, spot); err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			s.logger.Warn("Update: spot id=%d not found during update", id)
			return nil, ErrSpotNotFound
		}
		if errors.Is(err, spotRepo.ErrSpotNumberTaken) {
			s.logger.Warn("Update: spot number=%s already taken", spot.SpotNumber)
			return nil, ErrSpotNumberTaken
		}
		s.logger.Error("Update: repository error for spot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated spot id=%d", id)
	return models.FromDomainSpot(spot), nil
}

// Delete удаляет парковочное место
// Занятое место или место с бронированиями удалить нельзя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting spot id=%d", id)

	spot, err := s.spotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			s.logger.Warn("Delete: spot id=%d not found", id)
			return ErrSpotNotFound
		}
		s.logger.Error("Delete: repository error for spot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if spot.IsOccupied {
		s.logger.Warn("Delete: spot id=%d is occupied", id)
		return ErrSpotOccupied
	}

	if err := s.spotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			s.logger.Warn("Delete: spot id=%d not found during delete", id)
			return ErrSpotNotFound
		}
		if errors.Is(err, spotRepo.ErrSpotHasBookings) {
			s.logger.Warn("Delete: spot id=%d has bookings", id)
			return ErrSpotHasBookings
		}
		s.logger.Error("Delete: repository error for spot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted spot id=%d", id)
	return nil
}
