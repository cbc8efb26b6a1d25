package spot

import "errors"

var (
	// ErrSpotNotFound возвращается, когда парковочное место не найдено
	ErrSpotNotFound = errors.New("spot.repository: parking spot not found")

	// ErrSpotNumberTaken возвращается при попытке создать место с занятым номером
	ErrSpotNumberTaken = errors.New("spot.repository: spot number already taken")

	// ErrSpotHasBookings возвращается при попытке удалить место, на которое есть бронирования
	ErrSpotHasBookings = errors.New("spot.repository: spot is referenced by bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("spot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("spot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("spot.repository: failed to scan row")
)
