package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	changePasswordHandler "github.com/m04kA/SMC-WeddingBooking/internal/api/handlers/change_password"
	completeBookingHandler "github.com/m04kA/SMC-WeddingBooking/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/m04kA/SMC-WeddingBooking/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-WeddingBooking/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/SMC-WeddingBooking/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/m04kA/SMC-WeddingBooking/internal/api/handlers/get_bookings"
	getCalendarHandler "github.com/m04kA/SMC-WeddingBooking/internal/api/handlers/get_calendar"
	getDashboardHandler "github.com/m04kA/SMC-WeddingBooking/internal/api/handlers/get_dashboard"
	getLunarHandler "github.com/m04kA/SMC-WeddingBooking/internal/api/handlers/get_lunar"
	loginHandler "github.com/m04kA/SMC-WeddingBooking/internal/api/handlers/login"
	updateBookingHandler "github.com/m04kA/SMC-WeddingBooking/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-WeddingBooking/internal/api/middleware"
	"github.com/m04kA/SMC-WeddingBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-WeddingBooking/internal/infra/storage/booking"
	credentialsRepo "github.com/m04kA/SMC-WeddingBooking/internal/infra/storage/credentials"
	authService "github.com/m04kA/SMC-WeddingBooking/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-WeddingBooking/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-WeddingBooking/internal/usecase/create_booking"
	getCalendarUC "github.com/m04kA/SMC-WeddingBooking/internal/usecase/get_calendar"
	getDashboardUC "github.com/m04kA/SMC-WeddingBooking/internal/usecase/get_dashboard"
	"github.com/m04kA/SMC-WeddingBooking/migrations"
	"github.com/m04kA/SMC-WeddingBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-WeddingBooking/pkg/logger"
	"github.com/m04kA/SMC-WeddingBooking/pkg/metrics"
	"github.com/m04kA/SMC-WeddingBooking/pkg/txmanager"
)

func newServeCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve(autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "применить миграции перед запуском")
	return cmd
}

func serve(autoMigrate bool) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting wedding-booking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := openDB(cfg.Database)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return err
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if autoMigrate {
		changed, err := migrations.Up(db)
		if err != nil {
			log.Error("Failed to apply migrations: %v", err)
			return err
		}
		log.Info("Migrations applied (changed=%t)", changed)
	}

	// Без метрик обёртка работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	credentialsRepository := credentialsRepo.NewRepository(wrappedDB)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, metricsCollector, log)
	authSvc := authService.NewService(credentialsRepository, authService.Config{
		Username:          cfg.Auth.Username,
		DefaultPassword:   cfg.Auth.DefaultPassword,
		Secret:            []byte(cfg.Auth.JWTSecret),
		TokenTTL:          cfg.Auth.TokenTTL(),
		RememberTTL:       cfg.Auth.RememberTTL(),
		MinPasswordLength: cfg.Auth.MinPasswordLen,
		LoginRate:         rate.Limit(cfg.Auth.LoginRatePerMin / 60),
		LoginBurst:        cfg.Auth.LoginBurst,
	}, metricsCollector, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, txMgr, metricsCollector, log)
	getDashboardUseCase := getDashboardUC.NewUseCase(bookingRepository, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(bookingRepository, log)

	// Handlers
	login := loginHandler.NewHandler(authSvc, log)
	changePassword := changePasswordHandler.NewHandler(authSvc, log)
	getLunar := getLunarHandler.NewHandler(log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(getDashboardUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)

	// Настраиваем роутер
	httpLog := log.With("component", "http")
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recovery(httpLog), middleware.Logging(httpLog))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/lunar", getLunar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, httpLog))

	protected.HandleFunc("/auth/password", changePassword.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// --- Обзор ---
	protected.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed: %v", err)
		close(stopMetricsCh)
		return err
	}

	log.Info("Shutting down server...")
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
