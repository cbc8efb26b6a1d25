package domain

import "time"

// SpotType represents the category of a parking spot
type SpotType string

const (
	SpotTypeStandard SpotType = "standard"
	SpotTypeVIP      SpotType = "vip"
	SpotTypeHandicap SpotType = "handicap"
	SpotTypeElectric SpotType = "electric"
)

// ParkingSpot represents a physical parking space with a type and hourly rate
type ParkingSpot struct {
	ID         int64
	SpotNumber string
	Floor      int
	Type       SpotType
	HourlyRate float64
	IsOccupied bool

	// VehicleNumber is the plate of the currently parked vehicle, nil when the spot is free
	VehicleNumber *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFree returns true if the spot can accept a new booking
func (s *ParkingSpot) IsFree() bool {
	return !s.IsOccupied
}

// SpotsFilter фильтр для получения списка парковочных мест
type SpotsFilter struct {
	Floor      *int      // Фильтр по этажу (опционально)
	Type       *SpotType // Фильтр по типу места (опционально)
	IsOccupied *bool     // Фильтр по занятости (опционально)
}
