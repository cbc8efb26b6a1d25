package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет платёж. Вызывается только внутри транзакции завершения
// бронирования - платёж без завершения не существует.
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"booking_id",
			"amount",
			"payment_date",
			"payment_method",
			"transaction_id",
			"status",
		).
		Values(
			p.BookingID,
			p.Amount,
			p.PaymentDate,
			p.Method,
			p.TransactionID,
			p.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateTransactionID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time

	return p, nil
}

// GetByBookingID получает платежи бронирования.
// Схема допускает несколько платёжных записей на бронирование,
// по соглашению завершение создаёт ровно одну.
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"amount",
		"payment_date",
		"payment_method",
		"transaction_id",
		"status",
		"created_at",
	).
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("payment_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		var createdAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.BookingID,
			&p.Amount,
			&p.PaymentDate,
			&p.Method,
			&p.TransactionID,
			&p.Status,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBookingID - scan row: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

// RevenueSummary агрегирует платежи со статусом paid за период,
// с разбивкой по способам оплаты
func (r *Repository) RevenueSummary(ctx context.Context, from, to *time.Time) (*domain.RevenueSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"payment_method",
		"COALESCE(SUM(amount), 0)",
		"COUNT(*)",
	).
		From("payments").
		Where(squirrel.Eq{"status": domain.PaymentStatusPaid}).
		GroupBy("payment_method").
		OrderBy("payment_method ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"payment_date": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"payment_date": *to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: RevenueSummary - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RevenueSummary - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	summary := &domain.RevenueSummary{
		ByMethod: make([]domain.MethodRevenue, 0),
	}

	for rows.Next() {
		var mr domain.MethodRevenue
		if err := rows.Scan(&mr.Method, &mr.Amount, &mr.Count); err != nil {
			return nil, fmt.Errorf("%w: RevenueSummary - scan row: %v", ErrScanRow, err)
		}
		summary.ByMethod = append(summary.ByMethod, mr)
		summary.TotalAmount = domain.RoundMoney(summary.TotalAmount + mr.Amount)
		summary.PaymentsCount += mr.Count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: RevenueSummary - rows error: %v", ErrScanRow, err)
	}

	return summary, nil
}
