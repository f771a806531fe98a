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

	createSpecialOccasionHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/create_special_occasion"
	deleteSpecialOccasionHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/delete_special_occasion"
	getAvailabilitySummaryHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_availability_summary"
	getAvailableSlotsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_available_slots"
	getVenueHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/get_venue"
	listSpecialOccasionsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/list_special_occasions"
	repairSlotGridsHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/repair_slot_grids"
	updateVenueScheduleHandler "github.com/m04kA/SMC-VenueService/internal/api/handlers/update_venue_schedule"
	"github.com/m04kA/SMC-VenueService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueService/internal/config"
	bookingRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/booking"
	slotGridRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/slotgrid"
	specialOccasionRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/specialoccasion"
	venueRepo "github.com/m04kA/SMC-VenueService/internal/infra/storage/venue"
	notificationClient "github.com/m04kA/SMC-VenueService/internal/integrations/notificationservice"
	overridesService "github.com/m04kA/SMC-VenueService/internal/service/overrides"
	slotGridService "github.com/m04kA/SMC-VenueService/internal/service/slotgrid"
	venuesService "github.com/m04kA/SMC-VenueService/internal/service/venues"
	getAvailabilitySummaryUC "github.com/m04kA/SMC-VenueService/internal/usecase/get_availability_summary"
	getAvailableSlotsUC "github.com/m04kA/SMC-VenueService/internal/usecase/get_available_slots"
	updateScheduleUC "github.com/m04kA/SMC-VenueService/internal/usecase/update_schedule"
	"github.com/m04kA/SMC-VenueService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueService/pkg/logger"
	"github.com/m04kA/SMC-VenueService/pkg/metrics"
	"github.com/m04kA/SMC-VenueService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-VenueService/pkg/txmanager"
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

	log.Info("Starting SMC-VenueService...")
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

	// Инициализируем клиент сервиса уведомлений
	notifier := notificationClient.NewClient(
		cfg.NotificationService.URL,
		time.Duration(cfg.NotificationService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (NotificationService=%s timeout=%ds)",
		cfg.NotificationService.URL, cfg.NotificationService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		venueRepository    *venueRepo.Repository
		gridRepository     *slotGridRepo.Repository
		bookingRepository  *bookingRepo.Repository
		occasionRepository *specialOccasionRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисе сетки слотов)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		venueRepository = venueRepo.NewRepository(wrappedDB)
		gridRepository = slotGridRepo.NewRepository(wrappedDB, cfg.Availability.GridInsertBatchSize)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		occasionRepository = specialOccasionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		venueRepository = venueRepo.NewRepository(db)
		gridRepository = slotGridRepo.NewRepository(db, cfg.Availability.GridInsertBatchSize)
		bookingRepository = bookingRepo.NewRepository(db)
		occasionRepository = specialOccasionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	venuesSvc := venuesService.NewService(venueRepository, log)
	overridesSvc := overridesService.NewService(occasionRepository, venueRepository, log)
	slotGridSvc := slotGridService.NewService(
		gridRepository,
		venueRepository,
		txMgr,
		cfg.Availability.SlotDurationMinutes,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		venueRepository,
		gridRepository,
		bookingRepository,
		overridesSvc,
		slotGridSvc,
		cfg.Availability.LookaheadMinutes,
		log,
	)

	getAvailabilitySummaryUseCase := getAvailabilitySummaryUC.NewUseCase(
		venueRepository,
		gridRepository,
		bookingRepository,
		overridesSvc,
		log,
	)

	updateScheduleUseCase := updateScheduleUC.NewUseCase(
		venueRepository,
		slotGridSvc,
		notifier,
		log,
	)

	// Инициализируем handlers
	getVenue := getVenueHandler.NewHandler(venuesSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailabilitySummary := getAvailabilitySummaryHandler.NewHandler(getAvailabilitySummaryUseCase, log)
	updateVenueSchedule := updateVenueScheduleHandler.NewHandler(updateScheduleUseCase, log)
	createSpecialOccasion := createSpecialOccasionHandler.NewHandler(overridesSvc, log)
	listSpecialOccasions := listSpecialOccasionsHandler.NewHandler(overridesSvc, log)
	deleteSpecialOccasion := deleteSpecialOccasionHandler.NewHandler(overridesSvc, log)
	repairSlotGrids := repairSlotGridsHandler.NewHandler(slotGridSvc, log)

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

	// Карточка площадки с полями
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/venues/{venueId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Календарная сводка доступности за диапазон дат
	api.HandleFunc("/venues/{venueId}/availability-summary",
		getAvailabilitySummary.Handle).Methods(http.MethodGet)

	// Список переопределений доступности площадки
	api.HandleFunc("/venues/{venueId}/special-occasions",
		listSpecialOccasions.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление площадкой (для владельцев) ---
	// Обновление расписания с пересборкой сетки слотов
	protected.HandleFunc("/venues/{venueId}/schedule",
		updateVenueSchedule.Handle).Methods(http.MethodPut)

	// Создание переопределения доступности
	protected.HandleFunc("/venues/{venueId}/special-occasions",
		createSpecialOccasion.Handle).Methods(http.MethodPost)

	// Удаление переопределения доступности
	protected.HandleFunc("/venues/{venueId}/special-occasions/{occasionId}",
		deleteSpecialOccasion.Handle).Methods(http.MethodDelete)

	// --- Служебные эндпоинты ---
	// Досоздание сеток слотов площадкам без сетки
	r.HandleFunc("/internal/slot-grids/repair",
		repairSlotGrids.Handle).Methods(http.MethodPost)

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
