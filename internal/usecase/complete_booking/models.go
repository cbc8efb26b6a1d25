package complete_booking

import "time"

// Request модель запроса на завершение бронирования
type Request struct {
	BookingID     int64     // ID бронирования
	EndTime       time.Time // Фактическое время окончания парковки
	PaidAmount    float64   // Сумма, фактически принятая администратором
	PaymentMethod string    // Способ оплаты (cash | card | paypal | bank_transfer)
	TransactionID *string   // Идентификатор транзакции (опционально, генерируется при отсутствии)
}

// Response модель ответа с результатом завершения
type Response struct {
	BookingID     int64     // ID бронирования
	Status        string    // Статус бронирования (completed)
	EndTime       time.Time // Зафиксированное время окончания
	FinalAmount   float64   // Итоговая сумма, рассчитанная по длительности и тарифу
	PaidAmount    float64   // Сумма, зафиксированная в платеже
	PaymentStatus string    // Статус оплаты бронирования (paid)
	PaymentID     int64     // ID созданного платежа
	TransactionID string    // Идентификатор платёжной транзакции
}
