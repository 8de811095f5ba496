package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"poultry-backend/internal/alert"
	"poultry-backend/internal/auth"
	"poultry-backend/internal/cache"
	"poultry-backend/internal/chat"
	"poultry-backend/internal/config"
	"poultry-backend/internal/database"
	"poultry-backend/internal/db"
	"poultry-backend/internal/handlers"
	"poultry-backend/internal/health"
	h "poultry-backend/internal/http"
	"poultry-backend/internal/middleware"
	"poultry-backend/internal/monitoring"
	"poultry-backend/internal/repositories"
	"poultry-backend/internal/scheduler"
	"poultry-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (summaries computed per request)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker and monitor
	healthChecker := health.NewHealthChecker(pool, cache.GetClient())
	monitor := monitoring.NewMonitor(pool)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	productionRepo := repositories.NewProductionRepository(pool)
	damageRepo := repositories.NewDamageRepository(pool)
	dispatchRepo := repositories.NewDispatchRepository(pool)
	dispatchEditLogRepo := repositories.NewDispatchEditLogRepository(pool)
	cashRepo := repositories.NewCashRepository(pool)
	materialRepo := repositories.NewMaterialRepository(pool)
	catalogRepo := repositories.NewCatalogRepository(pool)
	settingRepo := repositories.NewSystemSettingRepository(pool)
	notificationRepo := repositories.NewNotificationRepository(pool)
	chatRepo := repositories.NewChatRepository(pool)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	// Low-stock alerting: Telegram when a bot token is configured,
	// plus in-app notifications for every active user. The daily
	// de-dup marker lives in Redis when available.
	notificationService := services.NewNotificationService(notificationRepo)

	var channel alert.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		channel = alert.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		log.Println("[Alert] Telegram notifier configured")
	} else {
		channel = alert.NewMockNotifier()
		log.Println("[Alert] No Telegram credentials, alerts will be logged only")
	}
	notifier := alert.NewMultiNotifier(channel, notificationService)

	var markerStore alert.MarkerStore
	if client := cache.GetClient(); client != nil {
		markerStore = alert.NewRedisMarkerStore(client)
	} else {
		markerStore = alert.NewMemoryMarkerStore()
	}
	trigger := alert.NewTrigger(markerStore, notifier)

	// Initialize services
	userService := services.NewUserService(userRepo, jwtManager)
	productionService := services.NewProductionService(productionRepo)
	damageService := services.NewDamageService(damageRepo)
	dispatchService := services.NewDispatchService(dispatchRepo, dispatchEditLogRepo)
	cashbookService := services.NewCashbookService(cashRepo)
	materialService := services.NewMaterialService(materialRepo)
	settingsService := services.NewSettingsService(settingRepo, catalogRepo)
	dashboardService := services.NewDashboardService(
		productionRepo, dispatchRepo, damageRepo, settingRepo, trigger, cfg.Stock.LowThreshold)
	chatService := services.NewChatService(chatRepo, userRepo, chat.NewHub())
	reportService := services.NewReportService(dispatchRepo, cashRepo, productionRepo, damageRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	productionHandler := handlers.NewProductionHandler(productionService)
	damageHandler := handlers.NewDamageHandler(damageService)
	dispatchHandler := handlers.NewDispatchHandler(dispatchService, notificationService)
	cashHandler := handlers.NewCashHandler(cashbookService)
	materialHandler := handlers.NewMaterialHandler(materialService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, cashbookService, notificationService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	chatHandler := handlers.NewChatHandler(chatService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Build the router and middleware chain
	router := h.NewRouter(
		authHandler,
		userHandler,
		productionHandler,
		damageHandler,
		dispatchHandler,
		cashHandler,
		materialHandler,
		dashboardHandler,
		settingsHandler,
		notificationHandler,
		chatHandler,
		reportHandler,
		healthHandler,
		monitor,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			corsMiddleware(router)))

	// Start the periodic low-stock sweep
	sched := scheduler.New(catalogRepo, dashboardService, cfg.Stock.CheckSchedule)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
