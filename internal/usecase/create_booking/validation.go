package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SpotID <= 0 {
		return fmt.Errorf("%w: spotID must be positive", ErrInvalidInput)
	}

	if req.VehicleNumber == "" {
		return fmt.Errorf("%w: vehicleNumber is required", ErrInvalidInput)
	}

	if len(req.VehicleNumber) > domain.MaxVehicleNumberLength {
		return fmt.Errorf("%w: vehicleNumber is too long", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if req.EndTime.Before(req.StartTime) {
		return ErrInvalidInterval
	}

	return nil
}
