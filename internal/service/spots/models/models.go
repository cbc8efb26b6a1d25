package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrInvalidSpotType возвращается при некорректном типе места
	ErrInvalidSpotType = errors.New("invalid spot type")
)

// Request модели

// CreateSpotRequest запрос на создание парковочного места
type CreateSpotRequest struct {
	SpotNumber string  `json:"spotNumber"`
	Floor      int     `json:"floor"`
	Type       string  `json:"type"`
	HourlyRate float64 `json:"hourlyRate"`
}

// UpdateSpotRequest запрос на обновление парковочного места
// Обновляются только переданные поля
type UpdateSpotRequest struct {
	SpotNumber *string  `json:"spotNumber,omitempty"`
	Floor      *int     `json:"floor,omitempty"`
	Type       *string  `json:"type,omitempty"`
	HourlyRate *float64 `json:"hourlyRate,omitempty"`
}

// ListSpotsRequest запрос на получение списка мест с фильтрацией
type ListSpotsRequest struct {
	Floor      *int    `json:"floor,omitempty"`      // Фильтр по этажу (опционально)
	Type       *string `json:"type,omitempty"`       // Фильтр по типу (опционально)
	IsOccupied *bool   `json:"isOccupied,omitempty"` // Фильтр по занятости (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSpotsRequest) ToDomainFilter() (domain.SpotsFilter, error) {
	filter := domain.SpotsFilter{
		Floor:      r.Floor,
		IsOccupied: r.IsOccupied,
	}

	if r.Type != nil {
		spotType, err := ToDomainSpotType(*r.Type)
		if err != nil {
			return filter, err
		}
		filter.Type = &spotType
	}

	return filter, nil
}

// Response модели

// SpotResponse ответ с данными парковочного места
type SpotResponse struct {
	ID            int64     `json:"id"`
	SpotNumber    string    `json:"spotNumber"`
	Floor         int       `json:"floor"`
	Type          string    `json:"type"`
	HourlyRate    float64   `json:"hourlyRate"`
	IsOccupied    bool      `json:"isOccupied"`
	VehicleNumber *string   `json:"vehicleNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SpotListResponse ответ со списком парковочных мест
type SpotListResponse struct {
	Spots []SpotResponse `json:"spots"`
}

// Методы конвертации

// FromDomainSpot конвертирует domain модель в DTO
func FromDomainSpot(s *domain.ParkingSpot) *SpotResponse {
	if s == nil {
		return nil
	}

	return &SpotResponse{
		ID:            s.ID,
		SpotNumber:    s.SpotNumber,
		Floor:         s.Floor,
		Type:          string(s.Type),
		HourlyRate:    s.HourlyRate,
		IsOccupied:    s.IsOccupied,
		VehicleNumber: s.VehicleNumber,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// FromDomainSpotList конвертирует список domain моделей в DTO
func FromDomainSpotList(spots []*domain.ParkingSpot) *SpotListResponse {
	if spots == nil {
		return &SpotListResponse{
			Spots: []SpotResponse{},
		}
	}

	resp := &SpotListResponse{
		Spots: make([]SpotResponse, len(spots)),
	}

	for i, spot := range spots {
		if spotResp := FromDomainSpot(spot); spotResp != nil {
			resp.Spots[i] = *spotResp
		}
	}

	return resp
}

// ToDomainSpotType конвертирует строку в domain.SpotType с валидацией
func ToDomainSpotType(spotType string) (domain.SpotType, error) {
	t := domain.SpotType(spotType)
	if !t.IsValid() {
		return "", ErrInvalidSpotType
	}
	return t, nil
}
