package complete_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("complete_booking: booking not found")

	// ErrBookingNotActive возвращается, когда бронирование уже завершено или отменено
	ErrBookingNotActive = errors.New("complete_booking: booking is not active")

	// ErrInvalidInterval возвращается, когда время окончания раньше времени начала
	ErrInvalidInterval = errors.New("complete_booking: end time precedes start time")

	// ErrInvalidPaymentMethod возвращается при неизвестном способе оплаты
	ErrInvalidPaymentMethod = errors.New("complete_booking: invalid payment method")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_booking: internal error")
)
