package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_booking"
	createSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_spot"
	deleteSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/delete_spot"
	getBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking"
	getBookingPaymentsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking_payments"
	getSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_spot"
	getUserBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_bookings"
	listSpotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_spots"
	revenueReportHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/revenue_report"
	updateSpotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/update_spot"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/payment"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	bookingsService "github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	spotsService "github.com/m04kA/SMC-ParkingService/internal/service/spots"
	cancelBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/cancel_booking"
	completeBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/complete_booking"
	createBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
	expireBookingsUC "github.com/m04kA/SMC-ParkingService/internal/usecase/expire_bookings"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		spotRepository    *spotRepo.Repository
		paymentRepository *paymentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		spotRepository = spotRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		spotRepository = spotRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, paymentRepository, log)
	spotSvc := spotsService.NewService(spotRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, spotRepository, txMgr, log)
	completeBookingUseCase := completeBookingUC.NewUseCase(
		bookingRepository,
		spotRepository,
		paymentRepository,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, spotRepository, txMgr, log)
	expireBookingsUseCase := expireBookingsUC.NewUseCase(bookingRepository, spotRepository, txMgr, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	completeBooking := completeBookingHandler.NewHandler(completeBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingPayments := getBookingPaymentsHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	revenueReport := revenueReportHandler.NewHandler(bookingSvc, log)
	createSpot := createSpotHandler.NewHandler(spotSvc, log)
	getSpot := getSpotHandler.NewHandler(spotSvc, log)
	listSpots := listSpotsHandler.NewHandler(spotSvc, log)
	updateSpot := updateSpotHandler.NewHandler(spotSvc, log)
	deleteSpot := deleteSpotHandler.NewHandler(spotSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Ленивая сверка: просроченные бронирования закрываются перед
	// обработкой читающих запросов, выделенного планировщика нет
	reconcile := middleware.Reconcile(expireBookingsUseCase, log)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(reconcile)

	// Список парковочных мест
	public.HandleFunc("/spots", listSpots.Handle).Methods(http.MethodGet)

	// Парковочное место по ID
	public.HandleFunc("/spots/{spotId}", getSpot.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth, reconcile)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрацией
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Платежи бронирования
	protected.HandleFunc("/bookings/{bookingId}/payments", getBookingPayments.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Завершение бронирования с фиксацией оплаты
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление местами ---
	// Создание парковочного места
	protected.HandleFunc("/spots", createSpot.Handle).Methods(http.MethodPost)

	// Обновление парковочного места
	protected.HandleFunc("/spots/{spotId}", updateSpot.Handle).Methods(http.MethodPut)

	// Удаление парковочного места
	protected.HandleFunc("/spots/{spotId}", deleteSpot.Handle).Methods(http.MethodDelete)

	// --- Отчёты ---
	// Отчёт по выручке
	protected.HandleFunc("/reports/revenue", revenueReport.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
