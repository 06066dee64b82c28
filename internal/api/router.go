package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/ahams/appointment-register/docs"
	"github.com/ahams/appointment-register/internal/api/handler"
	"github.com/ahams/appointment-register/internal/api/middleware"
	"github.com/ahams/appointment-register/internal/core/service"
	"github.com/ahams/appointment-register/internal/infrastructure/config"
	mongorepo "github.com/ahams/appointment-register/internal/infrastructure/db/mongo"
	redisstore "github.com/ahams/appointment-register/internal/infrastructure/db/redis"
	"github.com/ahams/appointment-register/internal/infrastructure/realtime"
	"github.com/ahams/appointment-register/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, hub *realtime.Hub, broadcast *realtime.Broadcaster) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("register"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	appointmentRepo := mongorepo.NewAppointmentRepository(db)
	departmentRepo := mongorepo.NewDepartmentRepository(db)
	settingsRepo := mongorepo.NewSettingsRepository(db)
	auditRepo := mongorepo.NewAuditRepository(db)
	sessionStore := redisstore.NewSessionStore(rdb, cfg.SessionTTL)

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessionStore, cfg.SessionTTL, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, settingsRepo, userRepo, auditRepo, broadcast, log)
	userService := service.NewUserService(userRepo, broadcast, log)
	departmentService := service.NewDepartmentService(departmentRepo, broadcast, log)
	reportService := service.NewReportService(appointmentRepo, departmentRepo, userRepo, auditRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, cfg.CookieName)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	userHandler := handler.NewUserHandler(userService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	settingsHandler := handler.NewSettingsHandler(appointmentService)
	reportHandler := handler.NewReportHandler(reportService)

	// Every request resolves its cookie to a session before routing.
	e.Use(middleware.Session(authService, cfg.CookieName))

	staff := middleware.RequireStaffOrAdmin()
	admin := middleware.RequireAdmin()

	// --- Auth ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout)
	e.GET("/api/session", authHandler.Session)

	// --- Appointments ---
	e.GET("/api/appointments", appointmentHandler.List, staff)
	e.POST("/api/appointments", appointmentHandler.Create, staff)
	e.PUT("/api/appointments/toggle-status/:id", appointmentHandler.ToggleStatus, staff)
	e.PUT("/api/appointments/edit/:id", appointmentHandler.Edit, staff)
	e.PUT("/api/appointments/:id", appointmentHandler.UpdateStatus, staff)
	e.POST("/api/appointments/search", appointmentHandler.Search, staff)
	e.DELETE("/api/appointments", appointmentHandler.Delete, staff)

	// --- Departments ---
	e.GET("/api/departments", departmentHandler.List)
	e.POST("/api/departments", departmentHandler.Add, admin)
	e.DELETE("/api/departments", departmentHandler.Remove, admin)

	// --- Users and permissions ---
	e.GET("/api/users", userHandler.List, admin)
	e.POST("/api/users", userHandler.Create, admin)
	e.PUT("/api/users", userHandler.Update, admin)
	e.DELETE("/api/users", userHandler.Delete, admin)
	e.PUT("/api/users/permissions/historical", userHandler.SetHistoricalPermission, admin)

	// --- Settings ---
	e.GET("/api/settings/appointment-number", settingsHandler.Numbering, admin)
	e.PUT("/api/settings/appointment-number", settingsHandler.UpdateNumbering, admin)

	// --- Reports, logs, backup ---
	e.GET("/api/reports/daily", reportHandler.Daily, staff)
	e.GET("/api/reports/comprehensive", reportHandler.Comprehensive, staff)
	e.GET("/api/reports/interaction", reportHandler.Interaction, staff)
	e.GET("/api/logs", reportHandler.Logs, admin)
	e.GET("/api/backup", reportHandler.Backup, admin)

	// --- Realtime ---
	e.GET("/ws", hub.ServeWS)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
