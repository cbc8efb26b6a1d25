package expire_bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// UseCase реконсиляция просроченных бронирований.
//
// Активные бронирования, у которых запланированное время окончания уже
// прошло, автозавершаются: итоговая сумма считается по запланированному
// (не продлённому) времени окончания, место освобождается. Платёж при
// автозавершении не создаётся, payment_status остаётся unpaid - долг
// виден администратору в списке бронирований.
//
// Вызывается синхронно перед отдачей админских страниц со списками
// бронирований или мест. Повторный запуск ничего не меняет: первый уже
// вывел все просроченные бронирования из статуса active.
type UseCase struct {
	bookingRepo  BookingRepository
	spotRepo     SpotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spotRepo SpotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		spotRepo:     spotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute автозавершает все просроченные бронирования.
// Возвращает количество обработанных бронирований.
func (uc *UseCase) Execute(ctx context.Context) (int, error) {
	now := uc.timeProvider.Now()
	expiredCount := 0

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		expired, err := uc.bookingRepo.ListExpired(txCtx, now)
		if err != nil {
			uc.logger.Error("ExpireBookings: failed to list expired bookings: %v", err)
			return fmt.Errorf("%w: failed to list expired bookings: %v", ErrInternal, err)
		}

		for _, booking := range expired {
			spot, err := uc.spotRepo.GetByID(txCtx, booking.SpotID)
			if err != nil {
				uc.logger.Error("ExpireBookings: failed to get spot id=%d for booking id=%d: %v",
					booking.SpotID, booking.ID, err)
				return fmt.Errorf("%w: failed to get spot: %v", ErrInternal, err)
			}

			// Сумма по запланированному интервалу
			amount, err := domain.CalculateAmount(booking.StartTime, booking.EndTime, spot.HourlyRate)
			if err != nil {
				uc.logger.Error("ExpireBookings: amount calculation failed for booking id=%d: %v",
					booking.ID, err)
				return fmt.Errorf("%w: failed to calculate amount: %v", ErrInternal, err)
			}

			if err := uc.bookingRepo.Complete(txCtx, booking.ID, booking.EndTime, amount, domain.PaymentStatusUnpaid); err != nil {
				uc.logger.Error("ExpireBookings: failed to complete booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to complete booking: %v", ErrInternal, err)
			}

			if err := uc.spotRepo.SetOccupied(txCtx, spot.ID, false, nil); err != nil {
				uc.logger.Error("ExpireBookings: failed to free spot id=%d for booking id=%d: %v",
					spot.ID, booking.ID, err)
				return fmt.Errorf("%w: failed to free spot: %v", ErrInternal, err)
			}

			uc.logger.Info("ExpireBookings: booking id=%d auto-completed, amount=%.2f, spot id=%d freed",
				booking.ID, amount, spot.ID)
			expiredCount++
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	if expiredCount > 0 {
		uc.logger.Info("ExpireBookings: auto-completed %d expired bookings", expiredCount)
	}

	return expiredCount, nil
}
