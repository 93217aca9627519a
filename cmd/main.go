package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookSlotHandler "github.com/mentorgig/session-service/internal/api/handlers/book_slot"
	getMentorSlotsHandler "github.com/mentorgig/session-service/internal/api/handlers/get_mentor_slots"
	healthHandler "github.com/mentorgig/session-service/internal/api/handlers/health"
	"github.com/mentorgig/session-service/internal/api/middleware"
	"github.com/mentorgig/session-service/internal/config"
	"github.com/mentorgig/session-service/internal/infra/bookinglock"
	authServiceClient "github.com/mentorgig/session-service/internal/integrations/authservice"
	mailServiceClient "github.com/mentorgig/session-service/internal/integrations/mailservice"
	profileServiceClient "github.com/mentorgig/session-service/internal/integrations/profileservice"
	scheduleServiceClient "github.com/mentorgig/session-service/internal/integrations/scheduleservice"
	healthService "github.com/mentorgig/session-service/internal/service/health"
	bookSlotUC "github.com/mentorgig/session-service/internal/usecase/book_slot"
	getMentorSlotsUC "github.com/mentorgig/session-service/internal/usecase/get_mentor_slots"
	"github.com/mentorgig/session-service/pkg/logger"
	"github.com/mentorgig/session-service/pkg/metrics"
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

	log.Info("Starting mentorgig session-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к Redis — сторож "бронирование в процессе"
	guard, err := bookinglock.NewRedisLock(
		cfg.Redis.Addr,
		time.Duration(cfg.Redis.BookingLockTTLSec)*time.Second,
	)
	if err != nil {
		log.Fatal("Failed to connect to redis: %v", err)
	}
	defer guard.Close()
	log.Info("Successfully connected to redis (addr=%s, lock_ttl=%ds)",
		cfg.Redis.Addr, cfg.Redis.BookingLockTTLSec)

	// Инициализируем интеграционных клиентов
	scheduleClient := scheduleServiceClient.NewClient(
		cfg.ScheduleService.URL,
		time.Duration(cfg.ScheduleService.Timeout)*time.Second,
		log,
	)
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	mailClient := mailServiceClient.NewClient(
		cfg.Mail.SendGridAPIKey,
		cfg.Mail.FromEmail,
		cfg.Mail.FromName,
		log,
	)
	log.Info("Integration clients initialized (ScheduleService=%s, AuthService=%s, ProfileService=%s)",
		cfg.ScheduleService.URL, cfg.AuthService.URL, cfg.ProfileService.URL)

	// Оборачиваем исходящие вызовы метриками
	if cfg.Metrics.Enabled {
		scheduleClient.SetTransport(metrics.NewRoundTripper("scheduleservice", metricsCollector))
		authClient.SetTransport(metrics.NewRoundTripper("authservice", metricsCollector))
		profileClient.SetTransport(metrics.NewRoundTripper("profileservice", metricsCollector))
		log.Info("Integration metrics transport enabled")
	}

	// Инициализируем use cases
	getMentorSlotsUseCase := getMentorSlotsUC.NewUseCase(
		scheduleClient,
		log,
	)

	bookSlotUseCase := bookSlotUC.NewUseCase(
		authClient,
		scheduleClient,
		profileClient,
		mailClient,
		guard,
		log,
	)

	// Инициализируем health-сервис
	healthSvc := healthService.NewService(log)
	healthSvc.Register("redis", guard)

	// Инициализируем handlers
	getMentorSlots := getMentorSlotsHandler.NewHandler(getMentorSlotsUseCase, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	health := healthHandler.NewHandler(healthSvc)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health endpoint (публичный, без аутентификации)
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты ментора
	api.HandleFunc("/mentors/{mentorId}/slots", getMentorSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Бронирование слота
	protected.HandleFunc("/bookings", bookSlot.Handle).Methods(http.MethodPost)

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
