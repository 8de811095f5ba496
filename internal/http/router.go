package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"poultry-backend/internal/handlers"
	"poultry-backend/internal/middleware"
	"poultry-backend/internal/monitoring"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	productionHandler *handlers.ProductionHandler,
	damageHandler *handlers.DamageHandler,
	dispatchHandler *handlers.DispatchHandler,
	cashHandler *handlers.CashHandler,
	materialHandler *handlers.MaterialHandler,
	dashboardHandler *handlers.DashboardHandler,
	settingsHandler *handlers.SettingsHandler,
	notificationHandler *handlers.NotificationHandler,
	chatHandler *handlers.ChatHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	monitor *monitoring.Monitor,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	authAPI := r.PathPrefix("/api/auth").Subrouter()
	authAPI.Use(authMiddleware.Authenticate)
	authAPI.HandleFunc("/me", authHandler.Me).Methods("GET")

	// Protected API routes - Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("", userHandler.List).Methods("GET")
	usersAPI.HandleFunc("", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.Create)).ServeHTTP).Methods("POST")
	usersAPI.HandleFunc("/{id}", userHandler.Get).Methods("GET")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.Update)).ServeHTTP).Methods("PUT")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Production entries
	productionAPI := r.PathPrefix("/api/production").Subrouter()
	productionAPI.Use(authMiddleware.Authenticate)
	productionAPI.HandleFunc("", productionHandler.List).Methods("GET")
	productionAPI.HandleFunc("", productionHandler.Create).Methods("POST")
	productionAPI.HandleFunc("/{id}", productionHandler.Get).Methods("GET")
	productionAPI.HandleFunc("/{id}", productionHandler.Update).Methods("PUT")
	productionAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(productionHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Damage entries
	damageAPI := r.PathPrefix("/api/damage").Subrouter()
	damageAPI.Use(authMiddleware.Authenticate)
	damageAPI.HandleFunc("", damageHandler.List).Methods("GET")
	damageAPI.HandleFunc("", damageHandler.Create).Methods("POST")
	damageAPI.HandleFunc("/{id}", damageHandler.Get).Methods("GET")
	damageAPI.HandleFunc("/{id}", damageHandler.Update).Methods("PUT")
	damageAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(damageHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Dispatch batches
	dispatchAPI := r.PathPrefix("/api/dispatch").Subrouter()
	dispatchAPI.Use(authMiddleware.Authenticate)
	dispatchAPI.HandleFunc("", dispatchHandler.List).Methods("GET")
	dispatchAPI.HandleFunc("", dispatchHandler.Create).Methods("POST")
	dispatchAPI.HandleFunc("/{id}", dispatchHandler.Get).Methods("GET")
	dispatchAPI.HandleFunc("/{id}", dispatchHandler.Update).Methods("PUT")
	dispatchAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(dispatchHandler.Delete)).ServeHTTP).Methods("DELETE")
	dispatchAPI.HandleFunc("/{id}/history", dispatchHandler.EditHistory).Methods("GET")

	// Protected API routes - Cashbook
	cashAPI := r.PathPrefix("/api/cash").Subrouter()
	cashAPI.Use(authMiddleware.Authenticate)
	cashAPI.HandleFunc("", cashHandler.List).Methods("GET")
	cashAPI.HandleFunc("", cashHandler.Create).Methods("POST")
	cashAPI.HandleFunc("/summary", cashHandler.Summary).Methods("GET")
	cashAPI.HandleFunc("/{id}", cashHandler.Update).Methods("PUT")
	cashAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(cashHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Materials
	materialsAPI := r.PathPrefix("/api/materials").Subrouter()
	materialsAPI.Use(authMiddleware.Authenticate)
	materialsAPI.HandleFunc("", materialHandler.List).Methods("GET")
	materialsAPI.HandleFunc("", materialHandler.Create).Methods("POST")
	materialsAPI.HandleFunc("/{id}", materialHandler.Update).Methods("PUT")
	materialsAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(materialHandler.Delete)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Dashboard
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("/stock", dashboardHandler.Stock).Methods("GET")
	dashboardAPI.HandleFunc("/summary", dashboardHandler.Summary).Methods("GET")
	dashboardAPI.HandleFunc("/activity", dashboardHandler.Activity).Methods("GET")

	// Protected API routes - Settings and catalogs (admin writes)
	settingsAPI := r.PathPrefix("/api/settings").Subrouter()
	settingsAPI.Use(authMiddleware.Authenticate)
	settingsAPI.HandleFunc("", settingsHandler.List).Methods("GET")
	settingsAPI.HandleFunc("", authMiddleware.RequireRole("admin")(http.HandlerFunc(settingsHandler.Update)).ServeHTTP).Methods("PUT")
	settingsAPI.HandleFunc("/catalog/{kind}", settingsHandler.ListCatalog).Methods("GET")
	settingsAPI.HandleFunc("/catalog/{kind}", authMiddleware.RequireRole("admin")(http.HandlerFunc(settingsHandler.AddCatalogItem)).ServeHTTP).Methods("POST")
	settingsAPI.HandleFunc("/catalog/{kind}/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(settingsHandler.DeleteCatalogItem)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Notifications
	notificationsAPI := r.PathPrefix("/api/notifications").Subrouter()
	notificationsAPI.Use(authMiddleware.Authenticate)
	notificationsAPI.HandleFunc("", notificationHandler.List).Methods("GET")
	notificationsAPI.HandleFunc("/read-all", notificationHandler.MarkAllRead).Methods("POST")
	notificationsAPI.HandleFunc("/{id}/read", notificationHandler.MarkRead).Methods("POST")

	// Protected API routes - Chat
	chatAPI := r.PathPrefix("/api/chat").Subrouter()
	chatAPI.Use(authMiddleware.Authenticate)
	chatAPI.HandleFunc("", chatHandler.Send).Methods("POST")
	chatAPI.HandleFunc("", chatHandler.Conversation).Methods("GET")
	chatAPI.HandleFunc("/online", chatHandler.Online).Methods("GET")
	chatAPI.HandleFunc("/ws", chatHandler.Websocket)

	// Protected API routes - CSV reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.HandleFunc("/dispatch", reportHandler.DispatchRegister).Methods("GET")
	reportsAPI.HandleFunc("/cashbook", reportHandler.Cashbook).Methods("GET")
	reportsAPI.HandleFunc("/production", reportHandler.ProductionRegister).Methods("GET")
	reportsAPI.HandleFunc("/damage", reportHandler.DamageRegister).Methods("GET")

	// Protected API routes - System monitoring (admin only)
	monitoringAPI := r.PathPrefix("/api/monitoring").Subrouter()
	monitoringAPI.Use(authMiddleware.Authenticate)
	monitoringAPI.HandleFunc("/stats", authMiddleware.RequireRole("admin")(http.HandlerFunc(monitor.StatsHandler)).ServeHTTP).Methods("GET")
	monitoringAPI.HandleFunc("/ws", authMiddleware.RequireRole("admin")(http.HandlerFunc(monitor.WebsocketHandler)).ServeHTTP)

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
