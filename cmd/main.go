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

	bookCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/book_car"
	createVehicleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_vehicle"
	deleteVehicleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_vehicle"
	getHistoryHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_history"
	getScheduleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_schedule"
	getVehiclesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_vehicles"
	returnPaymentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/return_payment"
	simulateScheduleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/simulate_schedule"
	updateVehicleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_vehicle"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	personRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/person"
	scheduleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/schedule"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	docServiceClient "github.com/m04kA/SMC-RentalService/internal/integrations/docservice"
	availabilityService "github.com/m04kA/SMC-RentalService/internal/service/availability"
	pricingService "github.com/m04kA/SMC-RentalService/internal/service/pricing"
	schedulesService "github.com/m04kA/SMC-RentalService/internal/service/schedules"
	vehiclesService "github.com/m04kA/SMC-RentalService/internal/service/vehicles"
	bookCarUC "github.com/m04kA/SMC-RentalService/internal/usecase/book_car"
	returnPaymentUC "github.com/m04kA/SMC-RentalService/internal/usecase/return_payment"
	simulateScheduleUC "github.com/m04kA/SMC-RentalService/internal/usecase/simulate_schedule"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
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

	log.Info("Starting SMC-RentalService...")
	log.Info("Configuration loaded from config.toml")

	// Политика расчета возврата провалидирована при загрузке конфигурации
	settlementPolicy, err := cfg.Settlement.Policy()
	if err != nil {
		log.Fatal("Failed to build settlement policy: %v", err)
	}
	log.Info("Settlement policy loaded (currency=%s, mileage_allowance=%dkm)",
		cfg.Settlement.Currency, settlementPolicy.MileageAllowanceKm)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиент сервиса документов
	var docMetrics docServiceClient.Metrics
	if cfg.Metrics.Enabled {
		docMetrics = metricsCollector
	}
	docsClient := docServiceClient.NewClient(
		cfg.DocService.URL,
		time.Duration(cfg.DocService.Timeout)*time.Second,
		log,
		docMetrics,
	)
	log.Info("DocService client initialized (url=%s, timeout=%ds)",
		cfg.DocService.URL, cfg.DocService.Timeout)

	// Инициализируем репозитории
	scheduleRepository := scheduleRepo.NewRepository(db)
	vehicleRepository := vehicleRepo.NewRepository(db)
	personRepository := personRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	availabilityChecker := availabilityService.NewChecker(scheduleRepository, log)
	pricingCalculator := pricingService.NewCalculator()
	schedulesSvc := schedulesService.NewService(
		scheduleRepository,
		personRepository,
		docsClient,
		txMgr,
		log,
	)
	vehiclesSvc := vehiclesService.NewService(
		vehicleRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем use cases
	simulateScheduleUseCase := simulateScheduleUC.NewUseCase(
		vehicleRepository,
		availabilityChecker,
		pricingCalculator,
		log,
	)

	bookCarUseCase := bookCarUC.NewUseCase(
		scheduleRepository,
		vehicleRepository,
		personRepository,
		availabilityChecker,
		pricingCalculator,
		docsClient,
		txMgr,
		log,
	)

	returnPaymentUseCase := returnPaymentUC.NewUseCase(
		scheduleRepository,
		vehicleRepository,
		docsClient,
		txMgr,
		settlementPolicy,
		log,
	)

	// Инициализируем handlers
	simulateSchedule := simulateScheduleHandler.NewHandler(simulateScheduleUseCase, log)
	bookCar := bookCarHandler.NewHandler(bookCarUseCase, log)
	returnPayment := returnPaymentHandler.NewHandler(returnPaymentUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(schedulesSvc, log)
	getHistory := getHistoryHandler.NewHandler(schedulesSvc, log)
	getVehicles := getVehiclesHandler.NewHandler(vehiclesSvc, log)
	createVehicle := createVehicleHandler.NewHandler(vehiclesSvc, log)
	updateVehicle := updateVehicleHandler.NewHandler(vehiclesSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(vehiclesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог автомобилей
	api.HandleFunc("/vehicles", getVehicles.Handle).Methods(http.MethodGet)

	// Симуляция стоимости аренды (ничего не сохраняет)
	api.HandleFunc("/schedules/simulate", simulateSchedule.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Бронирование автомобиля
	protected.HandleFunc("/schedules", bookCar.Handle).Methods(http.MethodPost)

	// История аренд клиента по номеру документа
	protected.HandleFunc("/schedules/history/{document}", getHistory.Handle).Methods(http.MethodGet)

	// Получение расписания по ID
	protected.HandleFunc("/schedules/{scheduleId}", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// OPERATOR ROUTES (требуют роль operator)
	// ============================================================

	operator := protected.PathPrefix("").Subrouter()
	operator.Use(middleware.RequireOperator)

	// Расчет возврата автомобиля по чек-листу
	operator.HandleFunc("/schedules/{scheduleId}/return", returnPayment.Handle).Methods(http.MethodPost)

	// --- Управление каталогом ---
	operator.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)
	operator.HandleFunc("/vehicles/{vehicleId}", updateVehicle.Handle).Methods(http.MethodPut)
	operator.HandleFunc("/vehicles/{vehicleId}", deleteVehicle.Handle).Methods(http.MethodDelete)

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
