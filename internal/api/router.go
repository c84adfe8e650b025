package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/zoo-arcadia/arcadia-gateway/docs"
	"github.com/zoo-arcadia/arcadia-gateway/internal/api/handler"
	"github.com/zoo-arcadia/arcadia-gateway/internal/api/middleware"
	"github.com/zoo-arcadia/arcadia-gateway/internal/cache"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/domain"
	"github.com/zoo-arcadia/arcadia-gateway/internal/core/ports"
	"github.com/zoo-arcadia/arcadia-gateway/internal/upstream"
)

// RouterConfig carries the session cookie settings into the handlers.
type RouterConfig struct {
	CookieName string
	CookieTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when sessions are held in memory.
func NewRouter(
	cfg RouterConfig,
	sessions ports.SessionStore,
	auth ports.AuthService,
	zoo *upstream.Client,
	publicCache *cache.Public,
	rdb *redis.Client,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("arcadia"))
	// Session restore runs before every guard, so guard evaluation is a
	// synchronous context read.
	e.Use(middleware.Session(cfg.CookieName, sessions))

	// --- Handlers ---
	site := handler.NewSiteHandler()
	authHandler := handler.NewAuthHandler(auth, cfg.CookieName, cfg.CookieTTL)
	dashboards := handler.NewDashboardHandler()
	animals := handler.NewAnimalHandler(zoo, publicCache)
	habitats := handler.NewHabitatHandler(zoo, publicCache)
	services := handler.NewServiceHandler(zoo, publicCache)
	reports := handler.NewReportHandler(zoo)
	records := handler.NewRecordHandler(zoo)
	reviews := handler.NewReviewHandler(zoo, publicCache)
	contact := handler.NewContactHandler(zoo)

	// --- Public routes ---
	e.GET("/", site.Home)
	e.GET("/login", authHandler.LoginView)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/session", authHandler.Session)
	e.GET("/dashboard", dashboards.Entry)

	e.GET("/animals", animals.List)
	e.GET("/animals/:id", animals.Get)
	e.GET("/habitats", habitats.List)
	e.GET("/habitats/:id", habitats.Get)
	e.GET("/services", services.List)
	e.GET("/reviews", reviews.List)
	e.POST("/reviews", reviews.Create)
	e.POST("/contact", contact.Send)

	// --- Admin console ---
	admin := e.Group("/admin", middleware.Guard(domain.RoleAdmin))
	admin.GET("/dashboard", dashboards.Admin)
	admin.POST("/register/:role", authHandler.Register)
	admin.POST("/animals", animals.Create)
	admin.PUT("/animals/:id", animals.Update)
	admin.DELETE("/animals/:id", animals.Delete)
	admin.POST("/habitats", habitats.Create)
	admin.PUT("/habitats/:id", habitats.Update)
	admin.DELETE("/habitats/:id", habitats.Delete)
	admin.POST("/services", services.Create)
	admin.PUT("/services/:id", services.Update)
	admin.DELETE("/services/:id", services.Delete)

	// --- Veterinarian console ---
	vet := e.Group("/vet", middleware.Guard(domain.RoleVeterinarian))
	vet.GET("/dashboard", dashboards.Vet)
	vet.GET("/reports", reports.List)
	vet.GET("/animals/:animalID/reports", reports.ByAnimal)
	vet.POST("/animals/:animalID/reports", reports.Create)
	vet.PUT("/reports/:id", reports.Update)
	vet.DELETE("/reports/:id", reports.Delete)

	// --- Employee console ---
	employee := e.Group("/employee", middleware.Guard(domain.RoleEmployee))
	employee.GET("/dashboard", dashboards.Employee)
	employee.GET("/animals/:animalID/records", records.ByAnimal)
	employee.POST("/animals/:animalID/records", records.Create)
	employee.PUT("/records/:id", records.Update)
	employee.DELETE("/records/:id", records.Delete)
	employee.PATCH("/reviews/:id/toggle-visibility", reviews.ToggleVisibility)
	employee.PUT("/services/:id", services.Update)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(rdb, zoo)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
