package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64     // ID пользователя
	SpotID        int64     // ID парковочного места
	VehicleNumber string    // Госномер автомобиля
	StartTime     time.Time // Начало парковки
	EndTime       time.Time // Запланированное окончание парковки
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64     // ID созданного бронирования
	UserID        int64     // ID пользователя
	SpotID        int64     // ID парковочного места
	SpotNumber    string    // Номер места
	VehicleNumber string    // Госномер автомобиля
	StartTime     time.Time // Начало парковки
	EndTime       time.Time // Запланированное окончание
	Status        string    // Статус бронирования (active)
	Amount        float64   // Предварительная сумма по запланированному интервалу
	PaymentStatus string    // Статус оплаты (unpaid)
	CreatedAt     time.Time // Время создания
}
