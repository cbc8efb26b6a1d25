package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// ListBookingsRequest запрос на получение бронирований с фильтрацией
type ListBookingsRequest struct {
	UserID          *int64     `json:"userId,omitempty"`          // Фильтр по пользователю (опционально)
	SpotID          *int64     `json:"spotId,omitempty"`          // Фильтр по месту (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	IncludeFinished bool       `json:"includeFinished,omitempty"` // Включить завершённые и отменённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		UserID:          r.UserID,
		SpotID:          r.SpotID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeFinished: r.IncludeFinished,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// RevenueReportRequest запрос на отчёт по выручке за период
type RevenueReportRequest struct {
	From *time.Time `json:"from,omitempty"` // Начало периода (опционально)
	To   *time.Time `json:"to,omitempty"`   // Конец периода (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	SpotID        int64  `json:"spotId"`
	VehicleNumber string `json:"vehicleNumber"`
	StartTime     string `json:"startTime"` // "2025-10-15 10:00"
	EndTime       string `json:"endTime"`   // "2025-10-15 13:00"
	Status        string `json:"status"`

	Amount        float64 `json:"amount"`
	PaymentStatus string  `json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"bookingId"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"paymentDate"`
	Method        string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
}

// MethodRevenueResponse выручка по одному способу оплаты
type MethodRevenueResponse struct {
	Method        string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
	PaymentsCount int     `json:"paymentsCount"`
}

// RevenueReportResponse ответ с отчётом по выручке
type RevenueReportResponse struct {
	TotalAmount   float64                 `json:"totalAmount"`
	PaymentsCount int                     `json:"paymentsCount"`
	ByMethod      []MethodRevenueResponse `json:"byMethod"`
	From          *string                 `json:"from,omitempty"` // ISO 8601 format
	To            *string                 `json:"to,omitempty"`   // ISO 8601 format
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		SpotID:        b.SpotID,
		VehicleNumber: b.VehicleNumber,
		StartTime:     b.StartTime.Format(domain.DateTimeFormat),
		EndTime:       b.EndTime.Format(domain.DateTimeFormat),
		Status:        string(b.Status),
		Amount:        b.Amount,
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// FromDomainPayments конвертирует список платежей в DTO
func FromDomainPayments(payments []*domain.Payment) []PaymentResponse {
	resp := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = PaymentResponse{
			ID:            p.ID,
			BookingID:     p.BookingID,
			Amount:        p.Amount,
			PaymentDate:   p.PaymentDate,
			Method:        string(p.Method),
			TransactionID: p.TransactionID,
			Status:        string(p.Status),
		}
	}
	return resp
}

// FromDomainRevenueSummary конвертирует сводку по выручке в DTO
func FromDomainRevenueSummary(s *domain.RevenueSummary, from, to *time.Time) *RevenueReportResponse {
	resp := &RevenueReportResponse{
		TotalAmount:   s.TotalAmount,
		PaymentsCount: s.PaymentsCount,
		ByMethod:      make([]MethodRevenueResponse, len(s.ByMethod)),
	}

	for i, m := range s.ByMethod {
		resp.ByMethod[i] = MethodRevenueResponse{
			Method:        string(m.Method),
			Amount:        m.Amount,
			PaymentsCount: m.Count,
		}
	}

	if from != nil {
		fromStr := from.Format(time.RFC3339)
		resp.From = &fromStr
	}
	if to != nil {
		toStr := to.Format(time.RFC3339)
		resp.To = &toStr
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
