package complete_booking

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if req.PaidAmount < 0 {
		return fmt.Errorf("%w: paidAmount must be non-negative", ErrInvalidInput)
	}

	if !domain.PaymentMethod(req.PaymentMethod).IsValid() {
		return ErrInvalidPaymentMethod
	}

	if req.TransactionID != nil && *req.TransactionID == "" {
		return fmt.Errorf("%w: transactionID must not be empty when provided", ErrInvalidInput)
	}

	return nil
}
