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

	cancelBookingHandler "github.com/salonix/SLX-BookingEngine/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/salonix/SLX-BookingEngine/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/salonix/SLX-BookingEngine/internal/api/handlers/get_availability"
	getBookingHandler "github.com/salonix/SLX-BookingEngine/internal/api/handlers/get_booking"
	getKpiSummaryHandler "github.com/salonix/SLX-BookingEngine/internal/api/handlers/get_kpi_summary"
	holdBookingHandler "github.com/salonix/SLX-BookingEngine/internal/api/handlers/hold_booking"
	listBookingsHandler "github.com/salonix/SLX-BookingEngine/internal/api/handlers/list_bookings"
	recordPaymentHandler "github.com/salonix/SLX-BookingEngine/internal/api/handlers/record_payment"
	settleBookingHandler "github.com/salonix/SLX-BookingEngine/internal/api/handlers/settle_booking"
	updateBookingStatusHandler "github.com/salonix/SLX-BookingEngine/internal/api/handlers/update_booking_status"
	"github.com/salonix/SLX-BookingEngine/internal/api/middleware"
	"github.com/salonix/SLX-BookingEngine/internal/config"
	bookingRepo "github.com/salonix/SLX-BookingEngine/internal/infra/storage/booking"
	staffDirectoryClient "github.com/salonix/SLX-BookingEngine/internal/integrations/staffdirectory"
	bookingsService "github.com/salonix/SLX-BookingEngine/internal/service/bookings"
	createBookingUC "github.com/salonix/SLX-BookingEngine/internal/usecase/create_booking"
	getAvailabilityUC "github.com/salonix/SLX-BookingEngine/internal/usecase/get_availability"
	getKpiSummaryUC "github.com/salonix/SLX-BookingEngine/internal/usecase/get_kpi_summary"
	"github.com/salonix/SLX-BookingEngine/pkg/dbmetrics"
	"github.com/salonix/SLX-BookingEngine/pkg/logger"
	"github.com/salonix/SLX-BookingEngine/pkg/metrics"
	"github.com/salonix/SLX-BookingEngine/pkg/simpletxmanager"
	"github.com/salonix/SLX-BookingEngine/pkg/txmanager"
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

	log.Info("Starting SLX-BookingEngine...")
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

	// Инициализируем клиента справочника мастеров
	staffClient := staffDirectoryClient.NewClient(
		cfg.StaffDirectory.URL,
		time.Duration(cfg.StaffDirectory.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (StaffDirectory=%s timeout=%ds)",
		cfg.StaffDirectory.URL, cfg.StaffDirectory.Timeout)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		staffClient,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		staffClient,
		log,
	)

	getKpiSummaryUseCase := getKpiSummaryUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	holdBooking := holdBookingHandler.NewHandler(bookingSvc, log)
	recordPayment := recordPaymentHandler.NewHandler(bookingSvc, log)
	settleBooking := settleBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getKpiSummary := getKpiSummaryHandler.NewHandler(getKpiSummaryUseCase, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность мастеров на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрацией
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перевод бронирования в режим удержания слота
	protected.HandleFunc("/bookings/{bookingId}/hold", holdBooking.Handle).Methods(http.MethodPatch)

	// Изменение статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Платежи ---
	// Регистрация платежа (аванса)
	protected.HandleFunc("/bookings/{bookingId}/payments", recordPayment.Handle).Methods(http.MethodPost)

	// Полный расчет с распределением по способам оплаты
	protected.HandleFunc("/bookings/{bookingId}/settle", settleBooking.Handle).Methods(http.MethodPost)

	// --- KPI ---
	// Сводка KPI по видимому набору бронирований
	protected.HandleFunc("/kpi/summary", getKpiSummary.Handle).Methods(http.MethodGet)

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
