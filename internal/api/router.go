package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/roadready/rental-api/docs"
	"github.com/roadready/rental-api/internal/api/handler"
	"github.com/roadready/rental-api/internal/api/middleware"
	"github.com/roadready/rental-api/internal/core/ports"
)

const defaultRequestTimeout = 15 * time.Second

// RouterConfig carries everything the HTTP layer needs.
type RouterConfig struct {
	Logger zerolog.Logger

	Auth         ports.AuthService
	Users        ports.UserService
	Cars         ports.CarService
	Reservations ports.ReservationService
	Reviews      ports.ReviewService
	Payments     ports.PaymentService

	Tokens   ports.TokenVerifier
	Denylist ports.TokenDenylist

	HealthChecks []handler.DependencyCheck

	RequestTimeout time.Duration
	AllowOrigins   []string

	// Registry receives the HTTP request metrics and backs /metrics.
	// Nil means the Prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if cfg.Registry != nil {
		registerer, gatherer = cfg.Registry, cfg.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(cfg.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: cfg.AllowOrigins}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "rental",
		Registerer: registerer,
	}))
	e.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{Timeout: timeout}))

	// --- Operational endpoints (no auth required) ---
	health := handler.NewHealthHandler(cfg.Logger, cfg.HealthChecks...)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authentication ---
	authHandler := handler.NewAuthHandler(cfg.Auth)
	e.POST("/api/authentication/login", authHandler.Login)
	e.POST("/api/authentication/register", authHandler.Register)

	// --- Protected routes ---
	api := e.Group("/api",
		middleware.Auth(cfg.Tokens, cfg.Denylist, cfg.Logger),
		middleware.Authorize(RoutePolicy()),
	)
	api.POST("/authentication/logout", authHandler.Logout)

	users := handler.NewUserHandler(cfg.Users)
	api.GET("/users", users.List)
	api.GET("/users/:id", users.Get)
	api.POST("/users", users.Create)
	api.PUT("/users", users.Update)
	api.PUT("/users/:id", users.Update)
	api.DELETE("/users/:id", users.Delete)

	cars := handler.NewCarHandler(cfg.Cars)
	api.GET("/car", cars.List)
	api.GET("/car/:id", cars.Get)
	api.POST("/car", cars.Create)
	api.PUT("/car", cars.Update)
	api.PUT("/car/:id", cars.Update)
	api.DELETE("/car/:id", cars.Delete)

	reservations := handler.NewReservationHandler(cfg.Reservations)
	api.GET("/reservation", reservations.List)
	api.GET("/reservation/:id", reservations.Get)
	api.GET("/reservation/car/:carId", reservations.ListByCar)
	api.POST("/reservation", reservations.Create)
	api.PUT("/reservation", reservations.Update)
	api.PUT("/reservation/:id", reservations.Update)
	api.DELETE("/reservation/:id", reservations.Delete)

	reviews := handler.NewReviewHandler(cfg.Reviews)
	api.GET("/review", reviews.List)
	api.GET("/review/:id", reviews.Get)
	api.GET("/review/car/:carId", reviews.ListByCar)
	api.POST("/review", reviews.Create)
	api.PUT("/review", reviews.Update)
	api.PUT("/review/:id", reviews.Update)
	api.DELETE("/review/:id", reviews.Delete)

	payments := handler.NewPaymentHandler(cfg.Payments)
	api.GET("/payment", payments.List)
	api.GET("/payment/:id", payments.Get)
	api.GET("/payment/user/:userId", payments.ListByUser)
	api.POST("/payment", payments.Create)
	api.PUT("/payment", payments.Update)
	api.PUT("/payment/:id", payments.Update)
	api.DELETE("/payment/:id", payments.Delete)

	return e
}
