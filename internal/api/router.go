package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"

	swagger "github.com/go-swagno/swagno-fiber/swagger"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/api/docs"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/api/handler"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/api/middleware"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/audit"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/auth"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/provider"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/query"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/repository"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/snapshot"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/stats"
)

type Dependencies struct {
	StaffRepo    repository.StaffUserRepositoryInterface
	SettingRepo  repository.SettingRepositoryInterface
	SnapshotRepo snapshot.Mirror
	Provider     provider.AccountProvider
	JWTService   *auth.JWTService
	SnapshotTTL  time.Duration
	SecureCookie bool
	DB           *pgxpool.Pool
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "Oriboard API",
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: false,
	}))

	// Swagger documentation (no auth required)
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Health check endpoints (no auth required)
	var db handler.Pinger
	if r.deps != nil && r.deps.DB != nil {
		db = r.deps.DB
	}
	healthHandler := handler.NewHealthHandler(db)
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	if r.deps == nil {
		return
	}

	v1 := r.app.Group("/v1")

	auditLog := audit.NewSlogLogger(r.logger)

	// Snapshot pipeline shared by accounts, stats and mutations
	store := snapshot.NewStore()
	refresher := snapshot.NewRefresher(store, r.deps.Provider, r.deps.SnapshotRepo, r.deps.SnapshotTTL, r.logger)
	engine := query.New(r.logger)
	aggregator := stats.New(r.logger)

	authService := auth.NewService(r.deps.StaffRepo, r.deps.JWTService, r.logger)
	authHandler := handler.NewAuthHandler(authService, auditLog, r.deps.SecureCookie, r.logger)
	accountsHandler := handler.NewAccountsHandler(refresher, engine, auditLog, r.logger)
	statsHandler := handler.NewStatsHandler(refresher, aggregator, r.logger)
	mutationsHandler := handler.NewMutationsHandler(r.deps.Provider, refresher, auditLog, r.logger)
	staffHandler := handler.NewStaffHandler(r.deps.StaffRepo, auditLog, r.logger)
	settingsHandler := handler.NewSettingsHandler(r.deps.SettingRepo, auditLog, r.logger)

	authDeps := middleware.AuthDependencies{
		JWTService: r.deps.JWTService,
		Logger:     r.logger,
	}
	viewer := middleware.RequireRole(domain.RoleViewer, authDeps)
	admin := middleware.RequireRole(domain.RoleAdmin, authDeps)
	super := middleware.RequireRole(domain.RoleSuperAdmin, authDeps)

	// Auth routes
	v1.Post("/auth/login", authHandler.Login)
	v1.Post("/auth/logout", authHandler.Logout)
	v1.Get("/auth/me", viewer, authHandler.Me)

	// Account listing and aggregations (read-only)
	v1.Get("/accounts", viewer, accountsHandler.List)
	v1.Get("/stats/summary", viewer, statsHandler.Summary)
	v1.Get("/stats/growth", viewer, statsHandler.Growth)
	v1.Get("/stats/yearly", viewer, statsHandler.CreationYearly)
	v1.Get("/stats/daily", viewer, statsHandler.DailyRegistration)
	v1.Get("/stats/status", viewer, statsHandler.StatusDonut)

	// Proxied mutations against the upstream console
	v1.Post("/accounts/sync", admin, accountsHandler.Sync)
	v1.Post("/accounts/extend", admin, mutationsHandler.Extend)
	v1.Post("/accounts/quota", admin, mutationsHandler.UpdateQuota)
	v1.Post("/accounts/remove", super, mutationsHandler.Remove)

	// Staff management (super admin only)
	staffGroup := v1.Group("/staff", super)
	staffGroup.Get("/", staffHandler.List)
	staffGroup.Post("/", staffHandler.Create)
	staffGroup.Put("/:id", staffHandler.Update)
	staffGroup.Delete("/:id", staffHandler.Delete)

	// Provider settings (super admin only)
	v1.Get("/settings", super, settingsHandler.Get)
	v1.Put("/settings", super, settingsHandler.Update)
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.app.ShutdownWithContext(ctx)
}
