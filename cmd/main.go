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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/sportshunt/turf-booking-service/internal/api/handlers/create_booking"
	createOfflineBookingHandler "github.com/sportshunt/turf-booking-service/internal/api/handlers/create_offline_booking"
	createTurfHandler "github.com/sportshunt/turf-booking-service/internal/api/handlers/create_turf"
	createVenueHandler "github.com/sportshunt/turf-booking-service/internal/api/handlers/create_venue"
	featuredVenuesHandler "github.com/sportshunt/turf-booking-service/internal/api/handlers/featured_venues"
	getMyBookingsHandler "github.com/sportshunt/turf-booking-service/internal/api/handlers/get_my_bookings"
	getTurfBookingsHandler "github.com/sportshunt/turf-booking-service/internal/api/handlers/get_turf_bookings"
	getVenueHandler "github.com/sportshunt/turf-booking-service/internal/api/handlers/get_venue"
	listVenuesHandler "github.com/sportshunt/turf-booking-service/internal/api/handlers/list_venues"
	paymentCallbackHandler "github.com/sportshunt/turf-booking-service/internal/api/handlers/payment_callback"
	"github.com/sportshunt/turf-booking-service/internal/api/middleware"
	"github.com/sportshunt/turf-booking-service/internal/config"
	bookingRepo "github.com/sportshunt/turf-booking-service/internal/infra/storage/booking"
	orderRepo "github.com/sportshunt/turf-booking-service/internal/infra/storage/order"
	turfRepo "github.com/sportshunt/turf-booking-service/internal/infra/storage/turf"
	venueRepo "github.com/sportshunt/turf-booking-service/internal/infra/storage/venue"
	paymentGatewayClient "github.com/sportshunt/turf-booking-service/internal/integrations/paymentgateway"
	bookingsService "github.com/sportshunt/turf-booking-service/internal/service/bookings"
	venuesService "github.com/sportshunt/turf-booking-service/internal/service/venues"
	confirmPaymentUC "github.com/sportshunt/turf-booking-service/internal/usecase/confirm_payment"
	createBookingUC "github.com/sportshunt/turf-booking-service/internal/usecase/create_booking"
	createOfflineBookingUC "github.com/sportshunt/turf-booking-service/internal/usecase/create_offline_booking"
	"github.com/sportshunt/turf-booking-service/pkg/dbmetrics"
	"github.com/sportshunt/turf-booking-service/pkg/logger"
	"github.com/sportshunt/turf-booking-service/pkg/metrics"
	"github.com/sportshunt/turf-booking-service/pkg/simpletxmanager"
	"github.com/sportshunt/turf-booking-service/pkg/txmanager"
)

func main() {
	// Подхватываем секреты из .env (файл опционален)
	_ = godotenv.Load()

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

	log.Info("Starting turf-booking-service...")
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

	// Применяем миграции (если включено)
	if cfg.Database.RunMigrations {
		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatal("Failed to set goose dialect: %v", err)
		}
		if err := goose.Up(db, cfg.Database.MigrationsDir); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied from %s", cfg.Database.MigrationsDir)
	}

	// Инициализируем клиента платежного шлюза
	gatewayClient := paymentGatewayClient.NewClient(
		cfg.PaymentGateway.URL,
		cfg.PaymentGateway.KeyID,
		cfg.PaymentGateway.KeySecret,
		time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
		log,
	)
	log.Info("Payment gateway client initialized (url=%s, timeout=%ds)",
		cfg.PaymentGateway.URL, cfg.PaymentGateway.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		venueRepository   *venueRepo.Repository
		turfRepository    *turfRepo.Repository
		bookingRepository *bookingRepo.Repository
		orderRepository   *orderRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector,
			time.Duration(cfg.Metrics.CollectInterval)*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")

		venueRepository = venueRepo.NewRepository(wrappedDB)
		turfRepository = turfRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		orderRepository = orderRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		venueRepository = venueRepo.NewRepository(db)
		turfRepository = turfRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		orderRepository = orderRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	venuesSvc := venuesService.NewService(
		venueRepository,
		turfRepository,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		turfRepository,
		venueRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		turfRepository,
		bookingRepository,
		orderRepository,
		gatewayClient,
		txMgr,
		createBookingUC.Options{
			Currency:    cfg.PaymentGateway.Currency,
			CallbackURL: cfg.PaymentGateway.CallbackURL,
		},
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		orderRepository,
		bookingRepository,
		gatewayClient,
		txMgr,
		log,
	)
	createOfflineBookingUseCase := createOfflineBookingUC.NewUseCase(
		venueRepository,
		turfRepository,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	paymentCallback := paymentCallbackHandler.NewHandler(confirmPaymentUseCase, log)
	createOfflineBooking := createOfflineBookingHandler.NewHandler(createOfflineBookingUseCase, log)
	getTurfBookings := getTurfBookingsHandler.NewHandler(bookingsSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingsSvc, log)
	listVenues := listVenuesHandler.NewHandler(venuesSvc, log)
	featuredVenues := featuredVenuesHandler.NewHandler(venuesSvc, log)
	getVenue := getVenueHandler.NewHandler(venuesSvc, log)
	createVenue := createVenueHandler.NewHandler(venuesSvc, log)
	createTurf := createTurfHandler.NewHandler(venuesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Каталог площадок. Маршрут featured регистрируется раньше {venueId},
	// иначе gorilla/mux сматчит "featured" как идентификатор
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/featured", featuredVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)

	// Callback платежного шлюза (авторизация - подпись в теле)
	api.HandleFunc("/payments/callback", paymentCallback.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание онлайн-бронирования с платежным заказом
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История подтвержденных бронирований пользователя
	protected.HandleFunc("/my-bookings", getMyBookings.Handle).Methods(http.MethodGet)

	// --- Управление площадками (для хостов) ---
	host := protected.PathPrefix("").Subrouter()
	host.Use(middleware.HostOnly)

	// Создание площадки и турфа
	host.HandleFunc("/venues", createVenue.Handle).Methods(http.MethodPost)
	host.HandleFunc("/venues/{venueId}/turfs", createTurf.Handle).Methods(http.MethodPost)

	// Оффлайн-бронирование от имени хоста
	host.HandleFunc("/offline-bookings", createOfflineBooking.Handle).Methods(http.MethodPost)

	// Бронирования турфа хоста
	host.HandleFunc("/turfs/{turfId}/bookings", getTurfBookings.Handle).Methods(http.MethodGet)

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
