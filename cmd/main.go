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

	acceptRequestHandler "github.com/m04kA/CIV-StickerService/internal/api/handlers/accept_validation_request"
	extendPeriodHandler "github.com/m04kA/CIV-StickerService/internal/api/handlers/extend_claim_period"
	getPeriodHandler "github.com/m04kA/CIV-StickerService/internal/api/handlers/get_claim_period"
	getOccupancyHandler "github.com/m04kA/CIV-StickerService/internal/api/handlers/get_slot_occupancy"
	updatePeriodHandler "github.com/m04kA/CIV-StickerService/internal/api/handlers/update_claim_period"
	"github.com/m04kA/CIV-StickerService/internal/api/middleware"
	"github.com/m04kA/CIV-StickerService/internal/config"
	"github.com/m04kA/CIV-StickerService/internal/domain"
	periodRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/period"
	requestRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/request"
	counterRepo "github.com/m04kA/CIV-StickerService/internal/infra/storage/slotcounter"
	mailServiceClient "github.com/m04kA/CIV-StickerService/internal/integrations/mailservice"
	periodService "github.com/m04kA/CIV-StickerService/internal/service/period"
	acceptRequestUC "github.com/m04kA/CIV-StickerService/internal/usecase/accept_validation_request"
	assignScheduleUC "github.com/m04kA/CIV-StickerService/internal/usecase/assign_claim_schedule"
	extendPeriodUC "github.com/m04kA/CIV-StickerService/internal/usecase/extend_claim_period"
	getOccupancyUC "github.com/m04kA/CIV-StickerService/internal/usecase/get_slot_occupancy"
	"github.com/m04kA/CIV-StickerService/pkg/dbmetrics"
	"github.com/m04kA/CIV-StickerService/pkg/logger"
	"github.com/m04kA/CIV-StickerService/pkg/metrics"
	"github.com/m04kA/CIV-StickerService/pkg/simpletxmanager"
	"github.com/m04kA/CIV-StickerService/pkg/txmanager"
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

	log.Info("Starting CIV-StickerService...")
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

	// Инициализируем интеграционного клиента MailService
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (MailService=%s timeout=%ds)",
		cfg.MailService.URL, cfg.MailService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		periodRepository  *periodRepo.Repository
		counterRepository *counterRepo.Repository
		requestRepository *requestRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		periodRepository = periodRepo.NewRepository(wrappedDB)
		counterRepository = counterRepo.NewRepository(wrappedDB)
		requestRepository = requestRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		periodRepository = periodRepo.NewRepository(db)
		counterRepository = counterRepo.NewRepository(db)
		requestRepository = requestRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Календарь выдачи: три слота в день, понедельник-суббота
	calendar := domain.DefaultClaimCalendar()

	// Инициализируем сервисы
	periodSvc := periodService.NewService(periodRepository, calendar, log)

	// Инициализируем use cases
	assignScheduleUseCase := assignScheduleUC.NewUseCase(
		periodRepository,
		counterRepository,
		txMgr,
		calendar,
		log,
	)

	acceptRequestUseCase := acceptRequestUC.NewUseCase(
		requestRepository,
		assignScheduleUseCase,
		mailClient,
		log,
	)

	extendPeriodUseCase := extendPeriodUC.NewUseCase(periodRepository, calendar, log)

	getOccupancyUseCase := getOccupancyUC.NewUseCase(
		periodRepository,
		counterRepository,
		calendar,
		log,
	)

	// Инициализируем handlers
	acceptRequest := acceptRequestHandler.NewHandler(acceptRequestUseCase, log)
	getPeriod := getPeriodHandler.NewHandler(periodSvc, log)
	updatePeriod := updatePeriodHandler.NewHandler(periodSvc, log)
	extendPeriod := extendPeriodHandler.NewHandler(extendPeriodUseCase, log)
	getOccupancy := getOccupancyHandler.NewHandler(getOccupancyUseCase, log)

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

	// Текущий период выдачи стикеров
	api.HandleFunc("/claim-period", getPeriod.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заявки на валидацию ---
	// Принятие заявки с назначением расписания выдачи
	protected.HandleFunc("/validation-requests/{requestId}/accept",
		acceptRequest.Handle).Methods(http.MethodPost)

	// --- Управление периодом выдачи (для администраторов) ---
	// Установка или сброс периода выдачи
	protected.HandleFunc("/claim-period", updatePeriod.Handle).Methods(http.MethodPut)

	// Продление периода выдачи
	protected.HandleFunc("/claim-period/extend", extendPeriod.Handle).Methods(http.MethodPost)

	// Заполненность слотов выдачи
	protected.HandleFunc("/claim-slots", getOccupancy.Handle).Methods(http.MethodGet)

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
