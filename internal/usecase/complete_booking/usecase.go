package complete_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/pkg/txid"
)

// UseCase use case завершения бронирования администратором.
//
// Внутри одной сериализуемой транзакции: бронирование и место блокируются
// FOR UPDATE, рассчитывается итоговая сумма, создаётся платёж, бронирование
// переводится в completed, место освобождается. Любая ошибка откатывает
// транзакцию целиком - частичное применение невозможно.
type UseCase struct {
	bookingRepo  BookingRepository
	spotRepo     SpotRepository
	paymentRepo  PaymentRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spotRepo SpotRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		spotRepo:     spotRepo,
		paymentRepo:  paymentRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет завершение бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteBooking: booking=%d, endTime=%s, paidAmount=%.2f, method=%s",
		req.BookingID, req.EndTime.Format(domain.DateTimeFormat), req.PaidAmount, req.PaymentMethod)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CompleteBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Блокируем бронирование FOR UPDATE - защита от одновременного
		// завершения/отмены двумя администраторами
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CompleteBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CompleteBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeCompleted() {
			uc.logger.Warn("CompleteBooking: booking id=%d is not active, status=%s",
				req.BookingID, booking.Status)
			return ErrBookingNotActive
		}

		if req.EndTime.Before(booking.StartTime) {
			uc.logger.Warn("CompleteBooking: end time %s precedes start time %s for booking id=%d",
				req.EndTime.Format(domain.DateTimeFormat), booking.StartTime.Format(domain.DateTimeFormat), req.BookingID)
			return ErrInvalidInterval
		}

		spot, err := uc.spotRepo.GetByID(txCtx, booking.SpotID)
		if err != nil {
			uc.logger.Error("CompleteBooking: failed to get spot id=%d for booking id=%d: %v",
				booking.SpotID, req.BookingID, err)
			return fmt.Errorf("%w: failed to get spot: %v", ErrInternal, err)
		}

		finalAmount, err := domain.CalculateAmount(booking.StartTime, req.EndTime, spot.HourlyRate)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInterval) {
				return ErrInvalidInterval
			}
			uc.logger.Error("CompleteBooking: amount calculation failed for booking id=%d: %v",
				req.BookingID, err)
			return fmt.Errorf("%w: failed to calculate amount: %v", ErrInternal, err)
		}

		transactionID := txid.Generate(now)
		if req.TransactionID != nil {
			transactionID = *req.TransactionID
		}

		// Фиксируем в платеже принятую администратором сумму, а в бронировании -
		// расчётную. Поля независимы: расхождение (скидка, округление наличных)
		// допустимо и не сверяется.
		payment, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			BookingID:     booking.ID,
			Amount:        req.PaidAmount,
			PaymentDate:   now,
			Method:        domain.PaymentMethod(req.PaymentMethod),
			TransactionID: transactionID,
			Status:        domain.PaymentStatusPaid,
		})
		if err != nil {
			uc.logger.Error("CompleteBooking: failed to create payment for booking id=%d: %v",
				req.BookingID, err)
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.Complete(txCtx, booking.ID, req.EndTime, finalAmount, domain.PaymentStatusPaid); err != nil {
			uc.logger.Error("CompleteBooking: failed to complete booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to complete booking: %v", ErrInternal, err)
		}

		if err := uc.spotRepo.SetOccupied(txCtx, spot.ID, false, nil); err != nil {
			uc.logger.Error("CompleteBooking: failed to free spot id=%d for booking id=%d: %v",
				spot.ID, req.BookingID, err)
			return fmt.Errorf("%w: failed to free spot: %v", ErrInternal, err)
		}

		result = &Response{
			BookingID:     booking.ID,
			Status:        string(domain.StatusCompleted),
			EndTime:       req.EndTime,
			FinalAmount:   finalAmount,
			PaidAmount:    req.PaidAmount,
			PaymentStatus: string(domain.PaymentStatusPaid),
			PaymentID:     payment.ID,
			TransactionID: payment.TransactionID,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CompleteBooking: booking id=%d completed, finalAmount=%.2f, paidAmount=%.2f, txn=%s",
		result.BookingID, result.FinalAmount, result.PaidAmount, result.TransactionID)

	return result, nil
}
