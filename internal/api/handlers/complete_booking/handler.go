package complete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	completeBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/complete_booking"
)

const (
	msgInvalidBookingID     = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени, ожидается YYYY-MM-DD HH:MM"
	msgNotFound             = "бронирование не найдено"
	msgNotActive            = "бронирование уже завершено или отменено"
	msgInvalidInterval      = "время окончания раньше времени начала"
	msgInvalidPaymentMethod = "некорректный способ оплаты"
	msgInvalidInput         = "некорректные данные завершения"
)

type Handler struct {
	useCase CompleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase CompleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/complete - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Декодируем body
	var req CompleteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/complete - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, completeBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/complete - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, completeBooking.ErrBookingNotActive):
			h.logger.Warn("PATCH /bookings/{id}/complete - Booking not active: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotActive)

		case errors.Is(err, completeBooking.ErrInvalidInterval):
			h.logger.Warn("PATCH /bookings/{id}/complete - Invalid interval: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, completeBooking.ErrInvalidPaymentMethod):
			h.logger.Warn("PATCH /bookings/{id}/complete - Invalid payment method: booking_id=%d, method=%s",
				bookingID, req.PaymentMethod)
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		case errors.Is(err, completeBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/complete - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/complete - Failed to complete booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /bookings/{id}/complete - Booking completed successfully: booking_id=%d, payment_id=%d, amount=%.2f",
		result.BookingID, result.PaymentID, result.FinalAmount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
