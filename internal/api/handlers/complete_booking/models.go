package complete_booking

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	completeBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/complete_booking"
)

// CompleteBookingRequest HTTP request model
type CompleteBookingRequest struct {
	EndTime       string  `json:"endTime"` // "2025-10-15 12:30"
	PaidAmount    float64 `json:"paidAmount"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID *string `json:"transactionId,omitempty"`
}

// CompleteBookingResponse HTTP response model
type CompleteBookingResponse struct {
	BookingID     int64   `json:"bookingId"`
	Status        string  `json:"status"`
	EndTime       string  `json:"endTime"`
	FinalAmount   float64 `json:"finalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentID     int64   `json:"paymentId"`
	TransactionID string  `json:"transactionId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CompleteBookingRequest) ToUseCaseRequest(bookingID int64) (*completeBooking.Request, error) {
	endTime, err := time.Parse(domain.DateTimeFormat, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &completeBooking.Request{
		BookingID:     bookingID,
		EndTime:       endTime,
		PaidAmount:    r.PaidAmount,
		PaymentMethod: r.PaymentMethod,
		TransactionID: r.TransactionID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeBooking.Response) *CompleteBookingResponse {
	return &CompleteBookingResponse{
		BookingID:     resp.BookingID,
		Status:        resp.Status,
		EndTime:       resp.EndTime.Format(domain.DateTimeFormat),
		FinalAmount:   resp.FinalAmount,
		PaidAmount:    resp.PaidAmount,
		PaymentStatus: resp.PaymentStatus,
		PaymentID:     resp.PaymentID,
		TransactionID: resp.TransactionID,
	}
}
