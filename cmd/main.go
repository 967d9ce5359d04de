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
	"github.com/redis/go-redis/v9"

	calculatePriceHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/calculate_price"
	getSupplierPricingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_supplier_pricing"
	searchCarsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/search_cars"
	searchSuppliersHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/search_suppliers"
	updateSupplierPricingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_supplier_pricing"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	"github.com/m04kA/SMC-RentalService/internal/eligibility"
	catalogCache "github.com/m04kA/SMC-RentalService/internal/infra/cache/catalog"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	supplierRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/supplier"
	suppliersService "github.com/m04kA/SMC-RentalService/internal/service/suppliers"
	calculatePriceUC "github.com/m04kA/SMC-RentalService/internal/usecase/calculate_price"
	searchCarsUC "github.com/m04kA/SMC-RentalService/internal/usecase/search_cars"
	searchSuppliersUC "github.com/m04kA/SMC-RentalService/internal/usecase/search_suppliers"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// engineMetrics то, что use cases пишут в метрики
type engineMetrics interface {
	ObserveQuote(result string)
	ObserveSearch(mode string, matches int)
}

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

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var engineMetricsRecorder engineMetrics = metrics.Noop{}
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		engineMetricsRecorder = metricsCollector
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
		txManager          *txmanager.TransactionManager
		carRepository      *carRepo.Repository
		supplierRepository *supplierRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		txManager = txmanager.NewTransactionManager(wrappedDB)
		carRepository = carRepo.NewRepository(wrappedDB, txManager)
		supplierRepository = supplierRepo.NewRepository(wrappedDB)
	} else {
		txManager = txmanager.NewTransactionManager(txmanager.FromSQL(db))
		carRepository = carRepo.NewRepository(db, txManager)
		supplierRepository = supplierRepo.NewRepository(db)
	}

	// Кэш каталога (если включен)
	var catalog searchCarsUC.CatalogProvider = carRepository
	var invalidator suppliersService.CatalogInvalidator

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, catalog cache will degrade to database: %v", cfg.Redis.Addr, err)
		}
		cancel()

		cache := catalogCache.NewCache(redisClient, carRepository, cfg.Redis.CacheTTL(), log)
		catalog = cache
		invalidator = cache
		log.Info("Catalog cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.CacheTTL())
	}

	// Инициализируем сервисы
	supplierSvc := suppliersService.NewService(supplierRepository, txManager, invalidator, log)

	// Инициализируем use cases
	calculatePriceUseCase := calculatePriceUC.NewUseCase(carRepository, engineMetricsRecorder, log)
	searchCarsUseCase := searchCarsUC.NewUseCase(catalog, engineMetricsRecorder, log)
	searchSuppliersUseCase := searchSuppliersUC.NewUseCase(catalog, cfg.Search.LocaleTag(), engineMetricsRecorder, log)

	// Инициализируем handlers
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	searchCars := searchCarsHandler.NewHandler(searchCarsUseCase, eligibility.ModeFrontend, log)
	searchAdminCars := searchCarsHandler.NewHandler(searchCarsUseCase, eligibility.ModeBackend, log)
	searchSuppliers := searchSuppliersHandler.NewHandler(searchSuppliersUseCase, log)
	getSupplierPricing := getSupplierPricingHandler.NewHandler(supplierSvc, log)
	updateSupplierPricing := updateSupplierPricingHandler.NewHandler(supplierSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// CUSTOMER ROUTES
	// ============================================================

	// Расчет стоимости аренды
	api.HandleFunc("/cars/{carId}/price", calculatePrice.Handle).Methods(http.MethodPost)

	// Поиск автомобилей в точке выдачи
	api.HandleFunc("/cars/search", searchCars.Handle).Methods(http.MethodPost)

	// Поставщики, у которых есть подходящие автомобили
	api.HandleFunc("/suppliers/search", searchSuppliers.Handle).Methods(http.MethodPost)

	// ============================================================
	// BACK-OFFICE ROUTES
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()

	// Поиск по всему каталогу, включая недоступные машины
	admin.HandleFunc("/cars/search", searchAdminCars.Handle).Methods(http.MethodPost)

	// Ценовые настройки поставщика
	admin.HandleFunc("/suppliers/{supplierId}/pricing", getSupplierPricing.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/suppliers/{supplierId}/pricing", updateSupplierPricing.Handle).Methods(http.MethodPut)

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
	close(stopMetricsCh)

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
