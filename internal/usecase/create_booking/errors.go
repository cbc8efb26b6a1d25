package create_booking

import "errors"

var (
	// ErrSpotNotFound возвращается, когда парковочное место не найдено
	ErrSpotNotFound = errors.New("create_booking: parking spot not found")

	// ErrSpotOccupied возвращается, когда место уже занято активным бронированием
	ErrSpotOccupied = errors.New("create_booking: parking spot is occupied")

	// ErrInvalidInterval возвращается, когда время окончания раньше времени начала
	ErrInvalidInterval = errors.New("create_booking: end time precedes start time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
