package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/careerbridge/identity-system/internal/api/handler"
	"github.com/careerbridge/identity-system/internal/api/middleware"
	"github.com/careerbridge/identity-system/internal/core/domain"
	"github.com/careerbridge/identity-system/internal/core/service"
)

// Deps carries everything the router wires together.
type Deps struct {
	Coordinator *service.SessionCoordinator
	Toggle      *service.RoleToggle
	Admin       *service.AdminSession
	Mongo       *mongo.Database
	Redis       *redis.Client
	JWTSecret   string
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Coordinator)
	sessionHandler := handler.NewSessionHandler(deps.Coordinator)
	profileHandler := handler.NewProfileHandler(deps.Coordinator)
	toggleHandler := handler.NewToggleHandler(deps.Toggle)
	adminHandler := handler.NewAdminHandler(deps.Admin)
	dashboardHandler := handler.NewDashboardHandler(deps.Coordinator)

	authMiddleware := middleware.Auth(deps.JWTSecret)
	loginThrottle := middleware.LoginRateLimit(rate.Limit(5), 10)

	// --- Auth routes ---
	auth := e.Group("/v1/auth")
	auth.POST("/login", authHandler.Login, loginThrottle)
	auth.POST("/signup", authHandler.Signup, loginThrottle)
	auth.POST("/demo-login", authHandler.DemoLogin, loginThrottle)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/demo-credentials/:role", authHandler.DemoCredentials)

	// --- Session routes ---
	e.GET("/v1/session", sessionHandler.Current)
	e.GET("/v1/session/landing", sessionHandler.Landing,
		middleware.Guard(deps.Coordinator, ""))

	// --- Profile + facet routes (token-bound) ---
	e.PATCH("/v1/profile", profileHandler.Update, authMiddleware)
	e.GET("/v1/roles/active", toggleHandler.Active, authMiddleware)
	e.POST("/v1/roles/switch", toggleHandler.Switch, authMiddleware)

	// --- Admin routes: gated only by the privileged session, never by the
	// general one ---
	e.POST("/v1/admin/login", adminHandler.Login, loginThrottle)
	e.POST("/v1/admin/logout", adminHandler.Logout)
	e.GET("/v1/admin/session", adminHandler.Session)

	// --- Guarded role surfaces (canonical dashboard table) ---
	for _, role := range domain.AllRoles {
		role := role
		e.GET(domain.DashboardRoute(role), dashboardHandler.Screen(role),
			middleware.Guard(deps.Coordinator, "", role))
	}
	e.GET(domain.DashboardRoute(domain.RoleRecruiter)+"/:dashboard_id",
		dashboardHandler.Screen(domain.RoleRecruiter),
		middleware.Guard(deps.Coordinator, "/recruiter/login", domain.RoleRecruiter))
	e.GET(domain.RecruiterHRMSRoute, dashboardHandler.HRMS,
		middleware.Guard(deps.Coordinator, "/recruiter/login", domain.RoleRecruiter))
	e.GET("/admin/dashboard/home", adminHandler.Session,
		middleware.AdminGuard(deps.Admin, ""))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
