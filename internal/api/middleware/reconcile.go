package middleware

import (
	"context"
	"net/http"
)

// BookingReconciler закрывает просроченные активные бронирования
type BookingReconciler interface {
	Execute(ctx context.Context) (int, error)
}

// ReconcileLogger интерфейс для логирования
type ReconcileLogger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Reconcile перед обработкой запроса закрывает просроченные бронирования,
// чтобы чтения видели актуальные статусы. Выделенного планировщика нет -
// сверка выполняется лениво, на входящем трафике.
//
// Ошибка сверки не блокирует запрос: клиент получит данные, просто
// возможно с ещё не закрытыми просроченными бронированиями.
func Reconcile(reconciler BookingReconciler, logger ReconcileLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			expired, err := reconciler.Execute(r.Context())
			if err != nil {
				logger.Error("Reconcile: failed to expire bookings: %v", err)
			} else if expired > 0 {
				logger.Info("Reconcile: auto-completed %d expired bookings", expired)
			}

			next.ServeHTTP(w, r)
		})
	}
}
