package spots

import "errors"

var (
	// ErrSpotNotFound возвращается, когда парковочное место не найдено
	ErrSpotNotFound = errors.New("parking spot not found")

	// ErrSpotNumberTaken возвращается, когда номер места уже используется
	ErrSpotNumberTaken = errors.New("spot number already taken")

	// ErrSpotHasBookings возвращается при попытке удалить место с бронированиями
	ErrSpotHasBookings = errors.New("spot has bookings")

	// ErrSpotOccupied возвращается при попытке удалить занятое место
	ErrSpotOccupied = errors.New("spot is occupied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
