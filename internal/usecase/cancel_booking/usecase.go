package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
)

// UseCase use case отмены бронирования.
//
// Перевод в cancelled и освобождение места выполняются в одной транзакции.
// Платёж при отмене не создаётся.
type UseCase struct {
	bookingRepo BookingRepository
	spotRepo    SpotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spotRepo SpotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		spotRepo:    spotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет отмену бронирования
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) error {
	uc.logger.Info("CancelBooking: cancelling booking id=%d", bookingID)

	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Блокируем бронирование FOR UPDATE - защита от одновременного
		// завершения/отмены двумя администраторами
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Отмена неактивного бронирования не должна повторно освобождать место
		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%d is not active, status=%s",
				bookingID, booking.Status)
			return ErrAlreadyFinished
		}

		if err := uc.bookingRepo.Cancel(txCtx, booking.ID); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		if err := uc.spotRepo.SetOccupied(txCtx, booking.SpotID, false, nil); err != nil {
			uc.logger.Error("CancelBooking: failed to free spot id=%d for booking id=%d: %v",
				booking.SpotID, bookingID, err)
			return fmt.Errorf("%w: failed to free spot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled", bookingID)
	return nil
}
