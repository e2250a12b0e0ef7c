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

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkAvailabilityHandler "github.com/drufus/serenity/internal/api/handlers/check_availability"
	confirmBookingHandler "github.com/drufus/serenity/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/drufus/serenity/internal/api/handlers/create_booking"
	createContactHandler "github.com/drufus/serenity/internal/api/handlers/create_contact"
	getBookingHandler "github.com/drufus/serenity/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/drufus/serenity/internal/api/handlers/get_calendar"
	getPropertyHandler "github.com/drufus/serenity/internal/api/handlers/get_property"
	listAddonsHandler "github.com/drufus/serenity/internal/api/handlers/list_addons"
	listGalleryHandler "github.com/drufus/serenity/internal/api/handlers/list_gallery"
	listReviewsHandler "github.com/drufus/serenity/internal/api/handlers/list_reviews"
	quotePriceHandler "github.com/drufus/serenity/internal/api/handlers/quote_price"
	signAgreementHandler "github.com/drufus/serenity/internal/api/handlers/sign_agreement"
	submitReviewHandler "github.com/drufus/serenity/internal/api/handlers/submit_review"
	"github.com/drufus/serenity/internal/api/middleware"
	"github.com/drufus/serenity/internal/config"
	addonRepo "github.com/drufus/serenity/internal/infra/storage/addon"
	blockedDateRepo "github.com/drufus/serenity/internal/infra/storage/blockeddate"
	bookingRepo "github.com/drufus/serenity/internal/infra/storage/booking"
	contactRepo "github.com/drufus/serenity/internal/infra/storage/contact"
	galleryRepo "github.com/drufus/serenity/internal/infra/storage/gallery"
	reviewRepo "github.com/drufus/serenity/internal/infra/storage/review"
	seasonalRateRepo "github.com/drufus/serenity/internal/infra/storage/seasonalrate"
	settingsRepo "github.com/drufus/serenity/internal/infra/storage/settings"
	paymentsClient "github.com/drufus/serenity/internal/integrations/payments"
	bookingsService "github.com/drufus/serenity/internal/service/bookings"
	pricingService "github.com/drufus/serenity/internal/service/pricing"
	propertyService "github.com/drufus/serenity/internal/service/property"
	checkAvailabilityUC "github.com/drufus/serenity/internal/usecase/check_availability"
	createBookingUC "github.com/drufus/serenity/internal/usecase/create_booking"
	getCalendarUC "github.com/drufus/serenity/internal/usecase/get_calendar"
	quotePriceUC "github.com/drufus/serenity/internal/usecase/quote_price"
	"github.com/drufus/serenity/pkg/dbmetrics"
	"github.com/drufus/serenity/pkg/logger"
	"github.com/drufus/serenity/pkg/metrics"
	"github.com/drufus/serenity/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting serenity booking service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	payments := paymentsClient.NewClient(cfg.Payments.Provider, log)

	// Repositories share one executor so queries either all carry metrics
	// or none do.
	var executor bookingRepo.DBExecutor = db
	var txMgr *txmanager.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		txMgr = txmanager.NewTransactionManager(txmanager.FromDB(db))
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	blockedDateRepository := blockedDateRepo.NewRepository(executor)
	settingsRepository := settingsRepo.NewRepository(executor)
	seasonalRateRepository := seasonalRateRepo.NewRepository(executor)
	addonRepository := addonRepo.NewRepository(executor)
	reviewRepository := reviewRepo.NewRepository(executor)
	galleryRepository := galleryRepo.NewRepository(executor)
	contactRepository := contactRepo.NewRepository(executor)

	pricingSvc := pricingService.NewService(settingsRepository, seasonalRateRepository, addonRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	propertySvc := propertyService.NewService(
		settingsRepository,
		addonRepository,
		reviewRepository,
		galleryRepository,
		contactRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockedDateRepository,
		settingsRepository,
		pricingSvc,
		payments,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(blockedDateRepository, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(blockedDateRepository, log)
	quotePriceUseCase := quotePriceUC.NewUseCase(pricingSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingsSvc, log)
	signAgreement := signAgreementHandler.NewHandler(bookingsSvc, log)
	getProperty := getPropertyHandler.NewHandler(propertySvc, log)
	listAddons := listAddonsHandler.NewHandler(propertySvc, log)
	listReviews := listReviewsHandler.NewHandler(propertySvc, log)
	submitReview := submitReviewHandler.NewHandler(propertySvc, log)
	listGallery := listGalleryHandler.NewHandler(propertySvc, log)
	createContact := createContactHandler.NewHandler(propertySvc, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Booking engine
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quotes", quotePrice.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{code}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{code}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{code}/agreement", signAgreement.Handle).Methods(http.MethodPost)

	// Site content
	api.HandleFunc("/property", getProperty.Handle).Methods(http.MethodGet)
	api.HandleFunc("/addons", listAddons.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reviews", listReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reviews", submitReview.Handle).Methods(http.MethodPost)
	api.HandleFunc("/gallery", listGallery.Handle).Methods(http.MethodGet)
	api.HandleFunc("/contact", createContact.Handle).Methods(http.MethodPost)

	// The frontend is a browser SPA on another origin.
	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
	)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      cors(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
