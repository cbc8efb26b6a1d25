package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
)

// UseCase use case создания бронирования.
//
// Место блокируется FOR UPDATE в сериализуемой транзакции - два
// одновременных бронирования одного места не проходят: второе увидит
// is_occupied = true и получит ErrSpotOccupied.
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

// Execute выполняет создание бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, spot=%d, vehicle=%s, start=%s, end=%s",
		req.UserID, req.SpotID, req.VehicleNumber,
		req.StartTime.Format(domain.DateTimeFormat), req.EndTime.Format(domain.DateTimeFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		spot, err := uc.spotRepo.GetByID(txCtx, req.SpotID)
		if err != nil {
			if errors.Is(err, spotRepo.ErrSpotNotFound) {
				uc.logger.Warn("CreateBooking: spot id=%d not found", req.SpotID)
				return ErrSpotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get spot id=%d: %v", req.SpotID, err)
			return fmt.Errorf("%w: failed to get spot: %v", ErrInternal, err)
		}

		if !spot.IsFree() {
			uc.logger.Warn("CreateBooking: spot id=%d is occupied", req.SpotID)
			return ErrSpotOccupied
		}

		// Предварительная сумма по запланированному интервалу.
		// Итоговая будет рассчитана при завершении по фактическому времени.
		estimate, err := domain.CalculateAmount(req.StartTime, req.EndTime, spot.HourlyRate)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInterval) {
				return ErrInvalidInterval
			}
			uc.logger.Error("CreateBooking: amount estimation failed: %v", err)
			return fmt.Errorf("%w: failed to estimate amount: %v", ErrInternal, err)
		}

		booking, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:        req.UserID,
			SpotID:        spot.ID,
			VehicleNumber: req.VehicleNumber,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Status:        domain.StatusActive,
			Amount:        estimate,
			PaymentStatus: domain.PaymentStatusUnpaid,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		if err := uc.spotRepo.SetOccupied(txCtx, spot.ID, true, &req.VehicleNumber); err != nil {
			uc.logger.Error("CreateBooking: failed to occupy spot id=%d: %v", spot.ID, err)
			return fmt.Errorf("%w: failed to occupy spot: %v", ErrInternal, err)
		}

		result = &Response{
			ID:            booking.ID,
			UserID:        booking.UserID,
			SpotID:        booking.SpotID,
			SpotNumber:    spot.SpotNumber,
			VehicleNumber: booking.VehicleNumber,
			StartTime:     booking.StartTime,
			EndTime:       booking.EndTime,
			Status:        string(booking.Status),
			Amount:        booking.Amount,
			PaymentStatus: string(booking.PaymentStatus),
			CreatedAt:     booking.CreatedAt,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created for spot id=%d", result.ID, result.SpotID)
	return result, nil
}
