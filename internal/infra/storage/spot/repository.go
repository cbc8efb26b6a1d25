package spot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var spotColumns = []string{
	"id",
	"spot_number",
	"floor",
	"spot_type",
	"hourly_rate",
	"is_occupied",
	"vehicle_number",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с парковочными местами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория парковочных мест
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое парковочное место
func (r *Repository) Create(ctx context.Context, s *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("parking_spots").
		Columns(
			"spot_number",
			"floor",
			"spot_type",
			"hourly_rate",
			"is_occupied",
			"vehicle_number",
		).
		Values(
			s.SpotNumber,
			s.Floor,
			s.Type,
			s.HourlyRate,
			s.IsOccupied,
			s.VehicleNumber,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, ErrSpotNumberTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает парковочное место по ID.
// Внутри транзакции добавляет FOR UPDATE для блокировки строки -
// используется при занятии/освобождении места.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(spotColumns...).
		From("parking_spots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSpot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSpotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan spot: %v", ErrScanRow, err)
	}

	return s, nil
}

// List получает список парковочных мест с фильтрацией по этажу, типу и занятости
func (r *Repository) List(ctx context.Context, filter domain.SpotsFilter) ([]*domain.ParkingSpot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(spotColumns...).
		From("parking_spots").
		OrderBy("floor ASC, spot_number ASC")

	if filter.Floor != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"floor": *filter.Floor})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"spot_type": *filter.Type})
	}
	if filter.IsOccupied != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_occupied": *filter.IsOccupied})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spots := make([]*domain.ParkingSpot, 0)
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		spots = append(spots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return spots, nil
}

// Update обновляет атрибуты парковочного места (номер, этаж, тип, тариф)
func (r *Repository) Update(ctx context.Context, s *domain.ParkingSpot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_spots").
		Set("spot_number", s.SpotNumber).
		Set("floor", s.Floor).
		Set("spot_type", s.Type).
		Set("hourly_rate", s.HourlyRate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return ErrSpotNumberTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpotNotFound
	}

	return nil
}

// SetOccupied обновляет флаг занятости места и номер припаркованного автомобиля.
// При освобождении места vehicleNumber передаётся как nil.
func (r *Repository) SetOccupied(ctx context.Context, id int64, occupied bool, vehicleNumber *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_spots").
		Set("is_occupied", occupied).
		Set("vehicle_number", vehicleNumber).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetOccupied - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetOccupied - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetOccupied - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpotNotFound
	}

	return nil
}

// Delete удаляет парковочное место.
// Место, на которое ссылаются бронирования, удалить нельзя - FK ограничение
// транслируется в ErrSpotHasBookings.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("parking_spots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return ErrSpotHasBookings
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpotNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpot(row rowScanner) (*domain.ParkingSpot, error) {
	var s domain.ParkingSpot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.SpotNumber,
		&s.Floor,
		&s.Type,
		&s.HourlyRate,
		&s.IsOccupied,
		&s.VehicleNumber,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func isPgError(err error, code string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
