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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers/cancel_booking"
	checkSlotHandler "github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers/check_slot"
	createBookingHandler "github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers/get_available_slots"
	getSupplierBookingsHandler "github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers/get_supplier_bookings"
	loginHandler "github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers/login"
	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryBooking/internal/config"
	"github.com/m04kA/SMC-DeliveryBooking/internal/infra/cache"
	reservationRepo "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/reservation"
	supplierRepo "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/supplier"
	"github.com/m04kA/SMC-DeliveryBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-DeliveryBooking/internal/jobs"
	authService "github.com/m04kA/SMC-DeliveryBooking/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-DeliveryBooking/internal/service/bookings"
	checkSlotUC "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/check_slot"
	createBookingUC "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/logger"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/metrics"
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

	log.Info("Starting SMC-DeliveryBooking...")
	log.Info("Configuration loaded from config.toml")

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

	// Подключаемся к Redis (если включен). Без Redis кеш деградирует
	// до прямых чтений из базы.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Failed to ping Redis, cache degraded to direct reads: %v", err)
		} else {
			log.Info("Successfully connected to Redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		}
		defer redisClient.Close()
	}

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(db)
	supplierRepository := supplierRepo.NewRepository(db)

	// Кеш списков бронирований поверх репозитория
	reservationCache := cache.New(
		redisClient,
		reservationRepository,
		time.Duration(cfg.Redis.TTLSeconds)*time.Second,
		log,
	)

	// Почтовый клиент для подтверждений и напоминаний
	mailClient := mailer.NewClient(
		cfg.Mail.APIKey,
		cfg.Mail.FromEmail,
		cfg.Mail.FromName,
		cfg.Mail.Enabled,
		log,
	)
	log.Info("Mailer initialized (enabled=%v, from=%s)", cfg.Mail.Enabled, cfg.Mail.FromEmail)

	// Инициализируем сервисы
	authSvc := authService.NewService(
		supplierRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)
	bookingSvc := bookingsService.NewService(
		reservationRepository,
		reservationCache,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(reservationCache, log)
	checkSlotUseCase := checkSlotUC.NewUseCase(reservationCache, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		reservationCache,
		reservationCache,
		mailClient,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(checkSlotUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, metricsCollector, log)
	getSupplierBookings := getSupplierBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Вход поставщика
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.NewAuth(cfg.Auth.JWTSecret))

	// Доступные слоты на дату
	protected.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Оптимистичная проверка выбранного слота
	protected.HandleFunc("/bookings/check", checkSlot.Handle).Methods(http.MethodPost)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований поставщика
	protected.HandleFunc("/suppliers/bookings", getSupplierBookings.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{code}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// CORS для веб-клиента
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	// Фоновая рассылка напоминаний о завтрашних поставках
	var reminderJob *jobs.ReminderJob
	if cfg.Jobs.ReminderEnabled {
		reminderJob = jobs.NewReminderJob(reservationCache, mailClient, log)
		if err := reminderJob.Start(cfg.Jobs.ReminderSpec); err != nil {
			log.Fatal("Failed to start reminder job: %v", err)
		}
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	if reminderJob != nil {
		reminderJob.Stop()
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
