package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SpotID        int64  `json:"spotId"`
	VehicleNumber string `json:"vehicleNumber"`
	StartTime     string `json:"startTime"` // "2025-10-15 10:00"
	EndTime       string `json:"endTime"`   // "2025-10-15 13:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	SpotID        int64   `json:"spotId"`
	SpotNumber    string  `json:"spotNumber"`
	VehicleNumber string  `json:"vehicleNumber"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startTime, err := time.Parse(domain.DateTimeFormat, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(domain.DateTimeFormat, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:        userID,
		SpotID:        r.SpotID,
		VehicleNumber: r.VehicleNumber,
		StartTime:     startTime,
		EndTime:       endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		SpotID:        resp.SpotID,
		SpotNumber:    resp.SpotNumber,
		VehicleNumber: resp.VehicleNumber,
		StartTime:     resp.StartTime.Format(domain.DateTimeFormat),
		EndTime:       resp.EndTime.Format(domain.DateTimeFormat),
		Status:        resp.Status,
		Amount:        resp.Amount,
		PaymentStatus: resp.PaymentStatus,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
