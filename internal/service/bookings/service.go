package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований и платежей
type Service struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// ListBookings получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по пользователю, месту, периоду, статусу и
// включению завершённых бронирований
//
// Примеры использования:
// - Все активные бронирования: ListBookings(ctx, &ListBookingsRequest{})
// - Бронирования конкретного места: указать SpotID
// - Бронирования за период: StartDate и EndDate
// - Только отменённые: указать Status = "cancelled"
// - Включая завершённые: IncludeFinished = true
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := "ListBookings: fetching bookings"
	if req.UserID != nil {
		logMsg += fmt.Sprintf(", user=%d", *req.UserID)
	}
	if req.SpotID != nil {
		logMsg += fmt.Sprintf(", spot=%d", *req.SpotID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeFinished {
		logMsg += ", includeFinished=true"
	}
	s.logger.Info(logMsg)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetBookingPayments получает платежи по бронированию
// Пользователь может видеть платежи только своего бронирования
func (s *Service) GetBookingPayments(ctx context.Context, bookingID int64, userID int64) ([]models.PaymentResponse, error) {
	s.logger.Info("GetBookingPayments: fetching payments for booking id=%d, user=%d", bookingID, userID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetBookingPayments: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBookingPayments: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetBookingPayments - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetBookingPayments: access denied for user=%d to booking id=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	payments, err := s.paymentRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		s.logger.Error("GetBookingPayments: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetBookingPayments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBookingPayments: successfully fetched %d payments for booking id=%d", len(payments), bookingID)
	return models.FromDomainPayments(payments), nil
}

// RevenueReport строит отчёт по выручке за период
// Учитываются только оплаченные платежи
func (s *Service) RevenueReport(ctx context.Context, req *models.RevenueReportRequest) (*models.RevenueReportResponse, error) {
	s.logger.Info("RevenueReport: building report, from=%v, to=%v", req.From, req.To)

	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		s.logger.Warn("RevenueReport: invalid period, to precedes from")
		return nil, fmt.Errorf("%w: report period end precedes start", ErrInvalidInput)
	}

	summary, err := s.paymentRepo.RevenueSummary(ctx, req.From, req.To)
	if err != nil {
		s.logger.Error("RevenueReport: repository error: %v", err)
		return nil, fmt.Errorf("%w: RevenueReport - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RevenueReport: total=%.2f over %d payments", summary.TotalAmount, summary.PaymentsCount)
	return models.FromDomainRevenueSummary(summary, req.From, req.To), nil
}
