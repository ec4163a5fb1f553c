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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addCartItemHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/add_cart_item"
	clearCartHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/clear_cart"
	createAppointmentHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/get_available_slots"
	getBarbershopHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/get_barbershop"
	getCartHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/get_cart"
	getRevenueSummaryHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/get_revenue_summary"
	listAppointmentsHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/list_appointments"
	listBarbershopsHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/list_barbershops"
	removeCartItemHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/remove_cart_item"
	submitContactHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/submit_contact"
	updateAppointmentStatusHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/update_appointment_status"
	updateCartItemHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/update_cart_item"
	validateCheckoutHandler "github.com/Darioantonio20/BarberPlatform/internal/api/handlers/validate_checkout"
	"github.com/Darioantonio20/BarberPlatform/internal/api/middleware"
	"github.com/Darioantonio20/BarberPlatform/internal/config"
	"github.com/Darioantonio20/BarberPlatform/internal/infra/catalog"
	appointmentRepo "github.com/Darioantonio20/BarberPlatform/internal/infra/storage/appointment"
	cartRepo "github.com/Darioantonio20/BarberPlatform/internal/infra/storage/cart"
	appointmentsService "github.com/Darioantonio20/BarberPlatform/internal/service/appointments"
	cartService "github.com/Darioantonio20/BarberPlatform/internal/service/cart"
	createAppointmentUC "github.com/Darioantonio20/BarberPlatform/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/Darioantonio20/BarberPlatform/internal/usecase/get_available_slots"
	submitContactUC "github.com/Darioantonio20/BarberPlatform/internal/usecase/submit_contact"
	"github.com/Darioantonio20/BarberPlatform/pkg/dbmetrics"
	"github.com/Darioantonio20/BarberPlatform/pkg/logger"
	"github.com/Darioantonio20/BarberPlatform/pkg/metrics"
	"github.com/Darioantonio20/BarberPlatform/pkg/txmanager"
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

	log.Info("Starting BarberPlatform...")
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

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// The catalog is static content shipped with the service.
	catalogProvider := catalog.New()
	log.Info("Catalog loaded (%d barbershops)", len(catalogProvider.Barbershops()))

	var (
		appointmentRepository *appointmentRepo.Repository
		txMgr                 *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(&dbmetrics.SqlDBWrapper{DB: db})
	}

	cartRepository := cartRepo.NewRepository(redisClient, time.Duration(cfg.Redis.CartTTL)*time.Second)

	cartSvc := cartService.NewService(cartRepository, catalogProvider, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogProvider,
		appointmentRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		cartSvc,
		catalogProvider,
		txMgr,
		log,
	)
	submitContactUseCase := submitContactUC.NewUseCase(log)

	listBarbershops := listBarbershopsHandler.NewHandler(catalogProvider, log)
	getBarbershop := getBarbershopHandler.NewHandler(catalogProvider, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getRevenueSummary := getRevenueSummaryHandler.NewHandler(appointmentsSvc, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	addCartItem := addCartItemHandler.NewHandler(cartSvc, log)
	updateCartItem := updateCartItemHandler.NewHandler(cartSvc, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	clearCart := clearCartHandler.NewHandler(cartSvc, log)
	validateCheckout := validateCheckoutHandler.NewHandler(cartSvc, log)
	submitContact := submitContactHandler.NewHandler(submitContactUseCase, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Session)

	// Catalog
	api.HandleFunc("/barbershops", listBarbershops.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbershops/{barbershopId}", getBarbershop.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbershops/{barbershopId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Cart
	api.HandleFunc("/cart", getCart.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cart", clearCart.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items", addCartItem.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{itemId}", updateCartItem.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/cart/items/{itemId}", removeCartItem.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/cart/access", validateCheckout.Handle).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/revenue", getRevenueSummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Contact
	api.HandleFunc("/contact", submitContact.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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
