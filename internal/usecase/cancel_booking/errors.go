package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAlreadyFinished возвращается при отмене завершённого или отменённого бронирования.
	// Место при этом не трогается - его занятость определяется другим активным бронированием
	// либо оно уже свободно.
	ErrAlreadyFinished = errors.New("cancel_booking: booking is already finished")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
