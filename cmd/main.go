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

	blockCourtHandler "github.com/elitetenis/court-booking-service/internal/api/handlers/block_court"
	cancelReservationHandler "github.com/elitetenis/court-booking-service/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/elitetenis/court-booking-service/internal/api/handlers/create_reservation"
	getDayScheduleHandler "github.com/elitetenis/court-booking-service/internal/api/handlers/get_day_schedule"
	getMemberQuotaHandler "github.com/elitetenis/court-booking-service/internal/api/handlers/get_member_quota"
	getMemberReservationsHandler "github.com/elitetenis/court-booking-service/internal/api/handlers/get_member_reservations"
	getNotificationsHandler "github.com/elitetenis/court-booking-service/internal/api/handlers/get_notifications"
	getReservationHandler "github.com/elitetenis/court-booking-service/internal/api/handlers/get_reservation"
	manageMembersHandler "github.com/elitetenis/court-booking-service/internal/api/handlers/manage_members"
	unblockCourtHandler "github.com/elitetenis/court-booking-service/internal/api/handlers/unblock_court"
	"github.com/elitetenis/court-booking-service/internal/api/middleware"
	"github.com/elitetenis/court-booking-service/internal/config"
	memberRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/member"
	notificationRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/notification"
	reservationRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/reservation"
	membersService "github.com/elitetenis/court-booking-service/internal/service/members"
	reservationsService "github.com/elitetenis/court-booking-service/internal/service/reservations"
	blockCourtUC "github.com/elitetenis/court-booking-service/internal/usecase/block_court"
	createReservationUC "github.com/elitetenis/court-booking-service/internal/usecase/create_reservation"
	getDayScheduleUC "github.com/elitetenis/court-booking-service/internal/usecase/get_day_schedule"
	getMemberQuotaUC "github.com/elitetenis/court-booking-service/internal/usecase/get_member_quota"
	unblockCourtUC "github.com/elitetenis/court-booking-service/internal/usecase/unblock_court"
	"github.com/elitetenis/court-booking-service/pkg/dbmetrics"
	"github.com/elitetenis/court-booking-service/pkg/logger"
	"github.com/elitetenis/court-booking-service/pkg/metrics"
	"github.com/elitetenis/court-booking-service/pkg/simpletxmanager"
	"github.com/elitetenis/court-booking-service/pkg/txmanager"
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

	log.Info("Starting court-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Политика правил клуба
	policy := cfg.Rules.RulePolicy()
	log.Info("Rule policy loaded (weekday release %s, weekend release %s)",
		policy.WeekdayReleaseTime, policy.WeekendReleaseTime)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository  *reservationRepo.Repository
		memberRepository       *memberRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		memberRepository = memberRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		memberRepository = memberRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		memberRepository,
		notificationRepository,
		log,
	)
	memberSvc := membersService.NewService(memberRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		memberRepository,
		txMgr,
		policy,
		log,
	)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		reservationRepository,
		memberRepository,
		policy,
		log,
	)
	getMemberQuotaUseCase := getMemberQuotaUC.NewUseCase(
		reservationRepository,
		memberRepository,
		policy,
		log,
	)
	blockCourtUseCase := blockCourtUC.NewUseCase(
		reservationRepository,
		memberRepository,
		txMgr,
		policy,
		log,
	)
	unblockCourtUseCase := unblockCourtUC.NewUseCase(
		reservationRepository,
		memberRepository,
		policy,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getMemberQuota := getMemberQuotaHandler.NewHandler(getMemberQuotaUseCase, log)
	blockCourt := blockCourtHandler.NewHandler(blockCourtUseCase, log)
	unblockCourt := unblockCourtHandler.NewHandler(unblockCourtUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getMemberReservations := getMemberReservationsHandler.NewHandler(reservationSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(reservationSvc, log)
	manageMembers := manageMembersHandler.NewHandler(memberSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расписание корта на день (без CPF видны только открытые недели)
	api.HandleFunc("/courts/{courtId}/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-CPF header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// --- Участники ---
	protected.HandleFunc("/members/{cpf}/quota", getMemberQuota.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/members/{cpf}/reservations", getMemberReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/members/{cpf}/notifications", getNotifications.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId}/read", getNotifications.HandleMarkRead).Methods(http.MethodPatch)

	// --- Администрирование ---
	protected.HandleFunc("/courts/{courtId}/block", blockCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courts/{courtId}/unblock", unblockCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/members", manageMembers.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/members", manageMembers.HandleRegister).Methods(http.MethodPost)
	protected.HandleFunc("/members/{cpf}", manageMembers.HandlePatch).Methods(http.MethodPatch)
	protected.HandleFunc("/members/{cpf}", manageMembers.HandleDeactivate).Methods(http.MethodDelete)

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
